package weather

// DefaultColor is used for any condition category without an entry
const DefaultColor = "skyblue"

// ColorMap maps provider condition categories to page background colors.
// It is immutable once constructed.
type ColorMap struct {
	colors   map[string]string
	fallback string
}

func NewColorMap(colors map[string]string, fallback string) ColorMap {
	copied := make(map[string]string, len(colors))
	for k, v := range colors {
		copied[k] = v
	}
	if fallback == "" {
		fallback = DefaultColor
	}
	return ColorMap{colors: copied, fallback: fallback}
}

// DefaultColorMap returns the standard category table
func DefaultColorMap() ColorMap {
	return NewColorMap(map[string]string{
		"Clear":        "skyblue",
		"Rain":         "grey",
		"Clouds":       "lightgray",
		"Snow":         "lightblue",
		"Thunderstorm": "darkgray",
	}, DefaultColor)
}

// Lookup returns the color for a condition category, or the fallback
func (m ColorMap) Lookup(category string) string {
	if color, ok := m.colors[category]; ok {
		return color
	}
	if m.fallback == "" {
		return DefaultColor
	}
	return m.fallback
}
