package workout

import "github.com/sstent/ftracker-go/internal/models"

const (
	runSpeedMultiplier = 18
	runSpeedShift      = 20
)

// Running is a step-counted running session.
type Running struct {
	session
}

func NewRunning(action int, duration, weight float64) Running {
	return Running{session{action: action, duration: duration, weight: weight}}
}

// Calories spent running, driven by mean speed and body weight.
func (r Running) Calories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() - runSpeedShift) * r.weight / mInKm * (r.duration * minInHour)
}

func (r Running) Summary() models.Metrics {
	return r.summarize("Running", r)
}
