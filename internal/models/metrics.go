package models

import "fmt"

// Metrics contains the computed results for a single workout
type Metrics struct {
	TrainingType string
	Duration     float64 // in hours
	Distance     float64 // in km
	Speed        float64 // mean speed in km/h
	Calories     float64 // in kcal
}

// Locale selects the output language of the summary line
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// Every float is rendered with exactly three decimals; the field order is
// the same in all locales so output stays comparable across languages.
var templates = map[Locale]string{
	LocaleRU: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
	LocaleEN: "Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
}

// Message renders the metrics into a single summary line, with a fallback
// to Russian for unknown locales.
func (m Metrics) Message(loc Locale) string {
	tmpl, ok := templates[loc]
	if !ok {
		tmpl = templates[LocaleRU]
	}
	return fmt.Sprintf(tmpl, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
