package health

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFlagVitalsAllNormal(t *testing.T) {
	e := &Entry{
		TempC:        floatPtr(36.6),
		HeartRateBPM: intPtr(70),
		BPSystolic:   intPtr(120),
		BPDiastolic:  intPtr(80),
		BloodGlucose: floatPtr(90),
		BMICategory:  "Normal",
	}
	assert.Empty(t, FlagVitals(e))
}

func TestFlagVitalsSkipsUnsetFields(t *testing.T) {
	assert.Empty(t, FlagVitals(&Entry{}))
}

func TestFlagVitalsTemperature(t *testing.T) {
	fever := FlagVitals(&Entry{TempC: floatPtr(38.5)})
	if assert.Len(t, fever, 1) {
		assert.Contains(t, fever[0], "Fever")
	}

	low := FlagVitals(&Entry{TempC: floatPtr(34.2)})
	if assert.Len(t, low, 1) {
		assert.Contains(t, low[0], "Low temperature")
	}
}

func TestFlagVitalsHeartRate(t *testing.T) {
	low := FlagVitals(&Entry{HeartRateBPM: intPtr(45)})
	if assert.Len(t, low, 1) {
		assert.Contains(t, low[0], "Low resting HR")
	}

	high := FlagVitals(&Entry{HeartRateBPM: intPtr(130)})
	if assert.Len(t, high, 1) {
		assert.Contains(t, high[0], "High resting HR")
	}
}

func TestFlagVitalsBloodPressure(t *testing.T) {
	crisis := FlagVitals(&Entry{BPSystolic: intPtr(185), BPDiastolic: intPtr(80)})
	if assert.Len(t, crisis, 1) {
		assert.Contains(t, crisis[0], "Hypertensive crisis")
	}

	high := FlagVitals(&Entry{BPSystolic: intPtr(150), BPDiastolic: intPtr(95)})
	if assert.Len(t, high, 1) {
		assert.Contains(t, high[0], "hypertension")
	}

	low := FlagVitals(&Entry{BPSystolic: intPtr(85), BPDiastolic: intPtr(55)})
	if assert.Len(t, low, 1) {
		assert.Contains(t, low[0], "Low BP")
	}

	// one reading alone is not enough
	assert.Empty(t, FlagVitals(&Entry{BPSystolic: intPtr(185)}))
}

func TestFlagVitalsGlucose(t *testing.T) {
	veryHigh := FlagVitals(&Entry{BloodGlucose: floatPtr(210)})
	if assert.Len(t, veryHigh, 1) {
		assert.Contains(t, veryHigh[0], "Very high blood glucose")
	}

	high := FlagVitals(&Entry{BloodGlucose: floatPtr(130)})
	if assert.Len(t, high, 1) {
		assert.Contains(t, high[0], "High fasting blood glucose")
	}
}

func TestFlagVitalsBMICategory(t *testing.T) {
	for _, category := range []string{"Underweight", "Overweight", "Obese"} {
		warnings := FlagVitals(&Entry{BMICategory: category})
		if assert.Len(t, warnings, 1, category) {
			assert.True(t, strings.HasPrefix(warnings[0], category), warnings[0])
		}
	}
	assert.Empty(t, FlagVitals(&Entry{BMICategory: "Normal"}))
}

func TestFlagVitalsIndependentChecksAccumulate(t *testing.T) {
	e := &Entry{
		TempC:        floatPtr(39),
		HeartRateBPM: intPtr(130),
		BPSystolic:   intPtr(150),
		BPDiastolic:  intPtr(95),
		BloodGlucose: floatPtr(210),
		BMICategory:  "Obese",
	}
	assert.Len(t, FlagVitals(e), 5)
}
