package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned when a sensor package carries a
	// type code outside the recognized set.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrBadParams is returned when a sensor package carries the wrong
	// number of parameters for its type code.
	ErrBadParams = errors.New("wrong parameter count")
)

// New creates a workout from a sensor package: a short type code and the
// raw parameters in the order the sensor sends them.
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, lengthPool, countPool
func New(code string, params []float64) (Workout, error) {
	switch code {
	case "RUN":
		if err := checkArity(code, params, 3); err != nil {
			return nil, err
		}
		return NewRunning(int(params[0]), params[1], params[2]), nil
	case "WLK":
		if err := checkArity(code, params, 4); err != nil {
			return nil, err
		}
		return NewSportsWalking(int(params[0]), params[1], params[2], params[3]), nil
	case "SWM":
		if err := checkArity(code, params, 5); err != nil {
			return nil, err
		}
		return NewSwimming(int(params[0]), params[1], params[2], int(params[3]), int(params[4])), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkoutType, code)
	}
}

func checkArity(code string, params []float64, want int) error {
	if len(params) != want {
		return fmt.Errorf("%w for %s: want %d, got %d", ErrBadParams, code, want, len(params))
	}
	return nil
}
