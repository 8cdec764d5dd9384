package health

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day stored as YYYY-MM-DD in the CSV file.
type Date struct {
	time.Time
}

func (d Date) MarshalCSV() (string, error) {
	return d.Format(dateLayout), nil
}

func (d *Date) UnmarshalCSV(value string) error {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Today returns the current calendar day in local time.
func Today() Date {
	return DayOf(time.Now())
}

// DayOf returns the calendar day of the given instant, in its location.
func DayOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// Entry represents one health checkup row. Optional vitals are pointers;
// nil means the field was skipped and is stored as an empty CSV cell.
type Entry struct {
	Date         Date     `csv:"date"`
	Age          *int     `csv:"age,omitempty"`
	Sex          string   `csv:"sex"`
	WeightKg     *float64 `csv:"weight_kg,omitempty"`
	HeightCm     *float64 `csv:"height_cm,omitempty"`
	BMI          *float64 `csv:"bmi,omitempty"`
	BMICategory  string   `csv:"bmi_category"`
	TempC        *float64 `csv:"temp_c,omitempty"`
	HeartRateBPM *int     `csv:"hr_bpm,omitempty"`
	BPSystolic   *int     `csv:"bp_systolic,omitempty"`
	BPDiastolic  *int     `csv:"bp_diastolic,omitempty"`
	BloodGlucose *float64 `csv:"blood_glucose_mg_dl,omitempty"`
	Notes        string   `csv:"notes"`
}

// DeriveBMI fills in the BMI and category fields when both weight and
// height are present.
func (e *Entry) DeriveBMI() {
	if e.WeightKg == nil || e.HeightCm == nil {
		return
	}
	bmi := CalcBMI(*e.WeightKg, *e.HeightCm)
	e.BMI = &bmi
	e.BMICategory = BMICategory(bmi)
}

// CalcBMI computes Body Mass Index (kg/m²) rounded to two decimals.
// A non-positive height yields 0.
func CalcBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100.0
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100
}

// BMICategory maps a BMI value onto the standard category bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi == 0:
		return "unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
