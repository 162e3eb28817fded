package utils

import (
	"math"
)

// Deg converts radians to degrees.
func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

// Rad converts degrees to radians.
func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}
