package workout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/ftracker-go/internal/workout"
)

func TestNewDispatch(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		w, err := workout.New("RUN", []float64{15000, 1, 75})
		require.NoError(t, err)
		assert.IsType(t, workout.Running{}, w)
		assert.Equal(t, "Running", w.Summary().TrainingType)
	})

	t.Run("walking", func(t *testing.T) {
		w, err := workout.New("WLK", []float64{9000, 1, 75, 180})
		require.NoError(t, err)
		assert.IsType(t, workout.SportsWalking{}, w)
		assert.Equal(t, "SportsWalking", w.Summary().TrainingType)
	})

	t.Run("swimming", func(t *testing.T) {
		w, err := workout.New("SWM", []float64{720, 1, 80, 25, 40})
		require.NoError(t, err)
		assert.IsType(t, workout.Swimming{}, w)
		assert.Equal(t, "Swimming", w.Summary().TrainingType)
	})
}

func TestNewUnknownType(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", "BIKE"} {
		w, err := workout.New(code, []float64{1000, 1, 70})
		assert.Nil(t, w)
		assert.ErrorIs(t, err, workout.ErrUnknownWorkoutType)
		assert.ErrorContains(t, err, code)
	}
}

func TestNewBadParams(t *testing.T) {
	cases := []struct {
		code   string
		params []float64
	}{
		{"RUN", []float64{15000, 1}},
		{"RUN", []float64{15000, 1, 75, 180}},
		{"WLK", []float64{9000, 1, 75}},
		{"SWM", []float64{720, 1, 80, 25}},
		{"SWM", nil},
	}

	for _, tc := range cases {
		w, err := workout.New(tc.code, tc.params)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, workout.ErrBadParams)
		assert.ErrorContains(t, err, tc.code)
	}
}

func TestFactoryResultMatchesDirectConstruction(t *testing.T) {
	fromFactory, err := workout.New("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	direct := workout.NewSwimming(720, 1, 80, 25, 40)
	assert.Equal(t, direct.Summary(), fromFactory.Summary())
}
