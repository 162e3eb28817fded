package math3d

import (
	"fmt"

	"github.com/craab/hexapod/utils"
)

// EulerAngles is an orientation, in radians. It's applied as yaw (about Z),
// then pitch (about Y), then roll (about X).
type EulerAngles struct {
	Yaw   float64 // z
	Pitch float64 // y
	Roll  float64 // x
}

// MakeEulerAngles returns the orientation for the given angles, in degrees.
func MakeEulerAngles(yaw float64, pitch float64, roll float64) EulerAngles {
	return EulerAngles{
		Yaw:   utils.Rad(yaw),
		Pitch: utils.Rad(pitch),
		Roll:  utils.Rad(roll),
	}
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{y=%+.2f° p=%+.2f° r=%+.2f°}", utils.Deg(ea.Yaw), utils.Deg(ea.Pitch), utils.Deg(ea.Roll))
}
