package health

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"recordkeep/internal/menu"
)

// App wires the health log to the interactive menu.
type App struct {
	log        *Log
	exportPath string
	logger     *zap.Logger
}

func NewApp(log *Log, exportPath string, logger *zap.Logger) *App {
	return &App{
		log:        log,
		exportPath: exportPath,
		logger:     logger,
	}
}

// Menu returns the top-level health checkup menu.
func (a *App) Menu(p *menu.Prompter) *menu.Menu {
	return &menu.Menu{
		Title:        "=== Regular Health Checkup Tool ===",
		ExitKey:      "0",
		Farewell:     "Bye!",
		ChoicePrompt: "Choose an option",
		Options: []menu.Option{
			{Key: "1", Label: "Add new entry", Run: func() error { return a.addEntry(p) }},
			{Key: "2", Label: "Show last entry & summary", Run: func() error { return a.showSummary(p) }},
			{Key: "3", Label: "Show all entries", Run: func() error { return a.showAllEntries(p) }},
			{Key: "4", Label: "Plot trends", Run: func() error { return a.plotTrends(p) }},
			{Key: "5", Label: "Export to Excel", Run: func() error { return a.exportToExcel(p) }},
		},
	}
}

func (a *App) addEntry(p *menu.Prompter) error {
	out := p.Out()
	fmt.Fprintln(out, "\nEnter new health checkup data (press Enter to skip an optional field):")

	dateAnswer, err := p.ReadString("Date (YYYY-MM-DD) [default today]")
	if err != nil {
		return err
	}
	date := Today()
	if dateAnswer != "" {
		parsed, err := time.Parse(dateLayout, dateAnswer)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateAnswer)
		}
		date = Date{Time: parsed}
	}

	entry := &Entry{Date: date}
	if entry.Age, err = p.ReadOptionalInt("Age (years)"); err != nil {
		return err
	}
	if entry.Sex, err = p.ReadString("Sex (M/F/Other)"); err != nil {
		return err
	}
	if entry.WeightKg, err = p.ReadOptionalFloat("Weight (kg)"); err != nil {
		return err
	}
	if entry.HeightCm, err = p.ReadOptionalFloat("Height (cm)"); err != nil {
		return err
	}
	if entry.TempC, err = p.ReadOptionalFloat("Temperature (°C)"); err != nil {
		return err
	}
	if entry.HeartRateBPM, err = p.ReadOptionalInt("Resting heart rate (bpm)"); err != nil {
		return err
	}
	if entry.BPSystolic, err = p.ReadOptionalInt("BP systolic (mmHg)"); err != nil {
		return err
	}
	if entry.BPDiastolic, err = p.ReadOptionalInt("BP diastolic (mmHg)"); err != nil {
		return err
	}
	if entry.BloodGlucose, err = p.ReadOptionalFloat("Blood glucose (mg/dL) [optional]"); err != nil {
		return err
	}
	if entry.Notes, err = p.ReadString("Notes (medications, symptoms)"); err != nil {
		return err
	}

	entry.DeriveBMI()

	if err := a.log.Append(entry); err != nil {
		return err
	}

	a.logger.Info("health entry saved",
		zap.String("date", entry.Date.Format(dateLayout)),
		zap.String("bmi_category", entry.BMICategory))

	fmt.Fprintln(out, "\nSaved entry:")
	printEntry(p, entry)

	warnings := FlagVitals(entry)
	if len(warnings) == 0 {
		fmt.Fprintln(out, menu.OK("\nAll vitals look OK (based on simple thresholds)."))
		return nil
	}
	fmt.Fprintln(out, menu.Warn("\nWarnings / flags:"))
	for _, w := range warnings {
		fmt.Fprintln(out, menu.Warn("  - "+w))
	}
	return nil
}

func (a *App) showSummary(p *menu.Prompter) error {
	entries, err := a.log.Entries()
	if err != nil {
		return err
	}
	out := p.Out()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries yet. Add one first.")
		return nil
	}

	fmt.Fprintln(out, "\nLast entry summary:")
	printEntry(p, entries[len(entries)-1])

	fmt.Fprintln(out, "\nSimple trends (last 5 entries):")
	start := len(entries) - 5
	if start < 0 {
		start = 0
	}
	fmt.Fprintf(out, "%-12s %-10s %-7s %-7s %-6s %-6s\n",
		"date", "weight_kg", "bmi", "hr_bpm", "sys", "dia")
	for _, e := range entries[start:] {
		fmt.Fprintf(out, "%-12s %-10s %-7s %-7s %-6s %-6s\n",
			e.Date.Format(dateLayout),
			floatCell(e.WeightKg), floatCell(e.BMI),
			intCell(e.HeartRateBPM), intCell(e.BPSystolic), intCell(e.BPDiastolic))
	}
	return nil
}

func (a *App) showAllEntries(p *menu.Prompter) error {
	entries, err := a.log.Entries()
	if err != nil {
		return err
	}
	out := p.Out()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s | age %s | %s | weight %s kg | bmi %s (%s) | temp %s°C | hr %s | bp %s/%s | glucose %s | %s\n",
			e.Date.Format(dateLayout),
			intCell(e.Age), e.Sex,
			floatCell(e.WeightKg),
			floatCell(e.BMI), e.BMICategory,
			floatCell(e.TempC),
			intCell(e.HeartRateBPM),
			intCell(e.BPSystolic), intCell(e.BPDiastolic),
			floatCell(e.BloodGlucose),
			e.Notes)
	}
	return nil
}

func (a *App) plotTrends(p *menu.Prompter) error {
	entries, err := a.log.Entries()
	if err != nil {
		return err
	}
	out := p.Out()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No data to plot.")
		return nil
	}

	fmt.Fprintln(out, "Choose metric to plot: 1) weight 2) BMI 3) HR 4) BP (systolic & diastolic)")
	choice, err := p.ReadInt("Enter number")
	if err != nil {
		return err
	}

	switch Metric(choice) {
	case MetricWeight:
		fmt.Fprintln(out, PlotSeries(Series(entries, MetricWeight), "Weight (kg) over time"))
	case MetricBMI:
		fmt.Fprintln(out, PlotSeries(Series(entries, MetricBMI), "BMI over time"))
	case MetricHeartRate:
		fmt.Fprintln(out, PlotSeries(Series(entries, MetricHeartRate), "Resting Heart Rate (bpm) over time"))
	case MetricBloodPressure:
		systolic, diastolic := BPSeries(entries)
		fmt.Fprintln(out, PlotBP(systolic, diastolic))
	default:
		fmt.Fprintln(out, "Unknown choice.")
	}
	return nil
}

func (a *App) exportToExcel(p *menu.Prompter) error {
	entries, err := a.log.Entries()
	if err != nil {
		return err
	}
	out := p.Out()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No data to export.")
		return nil
	}

	if err := ExportXLSX(entries, a.exportPath); err != nil {
		return err
	}

	a.logger.Info("health log exported",
		zap.String("path", a.exportPath),
		zap.Int("rows", len(entries)))
	fmt.Fprintln(out, menu.OK(fmt.Sprintf("Exported to %s", a.exportPath)))
	return nil
}

func printEntry(p *menu.Prompter, e *Entry) {
	out := p.Out()
	fmt.Fprintf(out, "  date: %s\n", e.Date.Format(dateLayout))
	fmt.Fprintf(out, "  age: %s\n", intCell(e.Age))
	fmt.Fprintf(out, "  sex: %s\n", e.Sex)
	fmt.Fprintf(out, "  weight_kg: %s\n", floatCell(e.WeightKg))
	fmt.Fprintf(out, "  height_cm: %s\n", floatCell(e.HeightCm))
	fmt.Fprintf(out, "  bmi: %s\n", floatCell(e.BMI))
	fmt.Fprintf(out, "  bmi_category: %s\n", e.BMICategory)
	fmt.Fprintf(out, "  temp_c: %s\n", floatCell(e.TempC))
	fmt.Fprintf(out, "  hr_bpm: %s\n", intCell(e.HeartRateBPM))
	fmt.Fprintf(out, "  bp_systolic: %s\n", intCell(e.BPSystolic))
	fmt.Fprintf(out, "  bp_diastolic: %s\n", intCell(e.BPDiastolic))
	fmt.Fprintf(out, "  blood_glucose_mg_dl: %s\n", floatCell(e.BloodGlucose))
	fmt.Fprintf(out, "  notes: %s\n", e.Notes)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
