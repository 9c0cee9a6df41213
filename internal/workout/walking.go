package workout

import (
	"math"

	"github.com/sstent/ftracker-go/internal/models"
)

const (
	walkWeightMultiplier      = 0.035
	walkSpeedHeightMultiplier = 0.029
)

// SportsWalking is a step-counted race-walking session. Height feeds the
// calorie formula.
type SportsWalking struct {
	session
	height float64 // in cm
}

func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		session: session{action: action, duration: duration, weight: weight},
		height:  height,
	}
}

// Calories spent race-walking. The speed-squared-over-height term is
// truncated to an integer value; for any realistic walking speed it
// contributes nothing.
func (w SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	heightTerm := math.Floor(speed * speed / w.height)
	return (walkWeightMultiplier*w.weight + heightTerm*walkSpeedHeightMultiplier*w.weight) * (w.duration * minInHour)
}

func (w SportsWalking) Summary() models.Metrics {
	return w.summarize("SportsWalking", w)
}
