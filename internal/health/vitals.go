package health

import "fmt"

// Fixed screening thresholds. These are simplified adult resting values,
// not clinical guidance.
const (
	feverTempC   = 38.0
	lowTempC     = 35.0
	lowHRBPM     = 50
	highHRBPM    = 120
	crisisSysBP  = 180
	crisisDiaBP  = 120
	highSysBP    = 140
	highDiaBP    = 90
	lowSysBP     = 90
	lowDiaBP     = 60
	veryHighGluc = 200.0
	highGluc     = 126.0
)

// FlagVitals runs each vital through its fixed thresholds and returns one
// human-readable warning per finding. Unset fields are skipped.
func FlagVitals(e *Entry) []string {
	var warnings []string

	if t := e.TempC; t != nil {
		if *t >= feverTempC {
			warnings = append(warnings, fmt.Sprintf("Fever (temp %g°C). Consider medical advice.", *t))
		} else if *t < lowTempC {
			warnings = append(warnings, fmt.Sprintf("Low temperature (%g°C).", *t))
		}
	}

	if hr := e.HeartRateBPM; hr != nil {
		if *hr < lowHRBPM {
			warnings = append(warnings, fmt.Sprintf("Low resting HR (%d bpm).", *hr))
		} else if *hr > highHRBPM {
			warnings = append(warnings, fmt.Sprintf("High resting HR (%d bpm).", *hr))
		}
	}

	if sys, dia := e.BPSystolic, e.BPDiastolic; sys != nil && dia != nil {
		switch {
		case *sys >= crisisSysBP || *dia >= crisisDiaBP:
			warnings = append(warnings, fmt.Sprintf("Hypertensive crisis (BP %d/%d). Seek urgent care.", *sys, *dia))
		case *sys >= highSysBP || *dia >= highDiaBP:
			warnings = append(warnings, fmt.Sprintf("High BP (hypertension) detected: %d/%d.", *sys, *dia))
		case *sys < lowSysBP || *dia < lowDiaBP:
			warnings = append(warnings, fmt.Sprintf("Low BP detected: %d/%d.", *sys, *dia))
		}
	}

	if bg := e.BloodGlucose; bg != nil {
		if *bg >= veryHighGluc {
			warnings = append(warnings, fmt.Sprintf("Very high blood glucose (%g mg/dL). Seek medical advice.", *bg))
		} else if *bg >= highGluc {
			warnings = append(warnings, fmt.Sprintf("High fasting blood glucose (%g mg/dL).", *bg))
		}
	}

	switch e.BMICategory {
	case "Underweight":
		warnings = append(warnings, "Underweight - consider nutrition evaluation.")
	case "Overweight":
		warnings = append(warnings, "Overweight - consider lifestyle changes.")
	case "Obese":
		warnings = append(warnings, "Obese - medical/lifestyle review recommended.")
	}

	return warnings
}
