package health

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var header = []string{
	"date", "age", "sex", "weight_kg", "height_cm", "bmi", "bmi_category",
	"temp_c", "hr_bpm", "bp_systolic", "bp_diastolic", "blood_glucose_mg_dl",
	"notes",
}

// ExportXLSX writes all entries to a spreadsheet file.
func ExportXLSX(entries []*Entry, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Health Log"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %v", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}

	for i, e := range entries {
		row := []interface{}{
			e.Date.Format(dateLayout),
			cell(e.Age),
			e.Sex,
			cell(e.WeightKg),
			cell(e.HeightCm),
			cell(e.BMI),
			e.BMICategory,
			cell(e.TempC),
			cell(e.HeartRateBPM),
			cell(e.BPSystolic),
			cell(e.BPDiastolic),
			cell(e.BloodGlucose),
			e.Notes,
		}
		axis := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %v", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %v", err)
	}
	return nil
}

// cell unwraps an optional value, mapping nil onto an empty cell.
func cell[T any](v *T) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
