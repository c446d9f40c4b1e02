package main

// @title Weather App API
// @version 1.0
// @description Current weather lookup by city name, backed by OpenWeatherMap.
// @host localhost:5000
// @BasePath /
