package workout

import "github.com/sstent/ftracker-go/internal/models"

const (
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

// Swimming is a stroke-counted pool session. Speed comes from the pool
// geometry rather than the stroke count.
type Swimming struct {
	session
	lengthPool int // pool length in meters
	countPool  int // laps swum
}

func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) Swimming {
	return Swimming{
		session:    session{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Distance converts the stroke count to kilometers using the stroke length.
func (s Swimming) Distance() float64 {
	return float64(s.action) * swimLenStepM / mInKm
}

// MeanSpeed is derived from pool length and lap count, not from strokes.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.lengthPool) * float64(s.countPool) / mInKm / s.duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.weight
}

func (s Swimming) Summary() models.Metrics {
	return s.summarize("Swimming", s)
}
