package types

const MpsToKph = 3.6

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

type Wind struct {
	SpeedInMps        float64 `json:"speed_mps"`
	SpeedInKph        float64 `json:"speed_kph"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

// NewWindFromMps builds a Wind from a speed in meters per second and a
// meteorological direction in degrees (0 = from the north).
func NewWindFromMps(speedInMps, directionDegrees float64) Wind {
	direction := (directionDegrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}

	return Wind{
		SpeedInMps:        speedInMps,
		SpeedInKph:        speedInMps * MpsToKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: cardinalDirections[index],
	}
}
