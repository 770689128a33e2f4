package domain

import "math"

// Round rounds half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// ToFahrenheit converts Celsius to whole degrees Fahrenheit.
func ToFahrenheit(celsius float64) int {
	return Round(celsius*9/5 + 32)
}

// ToCelsius converts Fahrenheit to whole degrees Celsius.
//
// Both directions round, so ToFahrenheit(ToCelsius(f)) is within one degree of
// f for whole-degree inputs but is not guaranteed to equal it.
func ToCelsius(fahrenheit float64) int {
	return Round((fahrenheit - 32) * 5 / 9)
}

// ToMph converts km/h to whole miles per hour.
func ToMph(kmh float64) int {
	return Round(kmh * 0.621371)
}

// ToKmh converts miles per hour to km/h. The result is not rounded.
func ToKmh(mph float64) float64 {
	return mph * 1.609
}

// FahrenheitToCelsius converts without rounding. Ingest uses it so an imperial
// reading classifies into the same band as its whole-degree value.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}
