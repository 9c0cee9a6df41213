package workout

import "github.com/sstent/ftracker-go/internal/models"

// Conversion constants shared by every workout type
const (
	mInKm     = 1000
	minInHour = 60

	lenStepM     = 0.65 // meters covered per step (running, walking)
	swimLenStepM = 1.38 // meters covered per stroke
)

// Workout computes the derived metrics for one recorded training session.
// Calories has no shared default: a workout type that does not bring its
// own formula does not satisfy the interface.
type Workout interface {
	Distance() float64
	MeanSpeed() float64
	Calories() float64
	Summary() models.Metrics
}

// session holds the raw sensor inputs common to all workout types.
// Duration must be positive; the tracker hardware never reports a
// zero-length session and the formulas divide by it.
type session struct {
	action   int     // steps or strokes counted by the sensor
	duration float64 // in hours
	weight   float64 // in kg
}

// Distance converts the step count to kilometers. Swimming replaces this
// with its stroke-based version.
func (s session) Distance() float64 {
	return float64(s.action) * lenStepM / mInKm
}

// MeanSpeed is the covered distance over the session duration, in km/h.
func (s session) MeanSpeed() float64 {
	return s.Distance() / s.duration
}

// summarize builds the Metrics for a workout. It takes the full Workout so
// the variant's own Distance/MeanSpeed/Calories are used, not the defaults.
func (s session) summarize(name string, w Workout) models.Metrics {
	return models.Metrics{
		TrainingType: name,
		Duration:     s.duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.Calories(),
	}
}
