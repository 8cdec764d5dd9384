package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The default entry date must be the local calendar day, not the UTC one.
// At 1am in a zone east of UTC those differ.
func TestDayOfUsesLocalCalendarDay(t *testing.T) {
	east := time.FixedZone("UTC+9", 9*60*60)
	earlyMorning := time.Date(2026, 8, 30, 1, 0, 0, 0, east)

	assert.Equal(t, "2026-08-30", DayOf(earlyMorning).Format(dateLayout))
}

func TestTodayMatchesLocalDate(t *testing.T) {
	assert.Equal(t, time.Now().Format(dateLayout), Today().Format(dateLayout))
}

func TestCalcBMI(t *testing.T) {
	assert.InDelta(t, 22.86, CalcBMI(70, 175), 0.01)
	assert.Equal(t, 0.0, CalcBMI(70, 0))
	assert.Equal(t, 0.0, CalcBMI(70, -10))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "unknown", BMICategory(0))
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal", BMICategory(18.5))
	assert.Equal(t, "Normal", BMICategory(22.86))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Overweight", BMICategory(29.9))
	assert.Equal(t, "Obese", BMICategory(30))
}

func TestDeriveBMI(t *testing.T) {
	weight, height := 70.0, 175.0
	e := &Entry{WeightKg: &weight, HeightCm: &height}
	e.DeriveBMI()

	if assert.NotNil(t, e.BMI) {
		assert.InDelta(t, 22.86, *e.BMI, 0.01)
	}
	assert.Equal(t, "Normal", e.BMICategory)
}

func TestDeriveBMISkippedWithoutMeasurements(t *testing.T) {
	weight := 70.0
	e := &Entry{WeightKg: &weight}
	e.DeriveBMI()

	assert.Nil(t, e.BMI)
	assert.Empty(t, e.BMICategory)
}
