// internal/fitness/activity_test.go

package fitness

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateText(t *testing.T) {
	date, err := ParseDate("2026-02-03")
	require.NoError(t, err)
	require.Equal(t, Date{Year: 2026, Month: time.February, Day: 3}, date)
	require.Equal(t, "2026-02-03", date.String())

	_, err = ParseDate("2026-13-01")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestActivityJSON(t *testing.T) {
	a := Activity{Date: Date{Year: 2026, Month: time.October, Day: 14}, Steps: 10, Calories: 2, Workout: "run"}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"2026-10-14","steps":10,"calories":2,"workout":"run"}`, string(b))

	var back Activity
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, a, back)
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("steps", "0")
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = ParseCount("steps", "ten")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorContains(t, err, "steps")
}

func TestSeriesOf(t *testing.T) {
	_, err := SeriesOf(nil)
	require.ErrorIs(t, err, ErrNoData)

	s, err := SeriesOf([]Activity{
		{Date: Date{2026, time.October, 1}, Steps: 100, Calories: 10},
		{Date: Date{2026, time.October, 2}, Steps: 200, Calories: 20},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"2026-10-01", "2026-10-02"}, s.Dates)
	require.Equal(t, []int{100, 200}, s.Steps)
	require.Equal(t, []int{10, 20}, s.Calories)
}

func TestSummarize(t *testing.T) {
	require.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]Activity{{Steps: 100, Calories: 10}, {Steps: 301, Calories: 21}})
	require.Equal(t, 2, s.Entries)
	require.Equal(t, 401, s.TotalSteps)
	require.Equal(t, 31, s.TotalCalories)
	require.InDelta(t, 200.5, s.AvgSteps, 1e-9)
	require.InDelta(t, 15.5, s.AvgCalories, 1e-9)
}

func TestCode(t *testing.T) {
	require.Equal(t, CodeOK, Code(nil))
	require.Equal(t, CodeInvalidInput, Code(ErrInvalidInput))
	require.Equal(t, CodeNoData, Code(ErrNoData))
}
