package health

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T, value string) Date {
	t.Helper()
	parsed, err := time.Parse(dateLayout, value)
	require.NoError(t, err)
	return Date{Time: parsed}
}

func TestEnsureWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_log.csv")
	log := NewLog(path)

	require.NoError(t, log.Ensure())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	header := strings.TrimSpace(string(data))
	assert.Equal(t,
		"date,age,sex,weight_kg,height_cm,bmi,bmi_category,temp_c,hr_bpm,bp_systolic,bp_diastolic,blood_glucose_mg_dl,notes",
		header)

	// a second Ensure must not truncate or duplicate the header
	require.NoError(t, log.Ensure())
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "health_log.csv"))

	weight, height := 70.0, 175.0
	hr := 72
	entry := &Entry{
		Date:         testDate(t, "2026-08-30"),
		Age:          intPtr(34),
		Sex:          "F",
		WeightKg:     &weight,
		HeightCm:     &height,
		HeartRateBPM: &hr,
		Notes:        "post workout, feeling fine",
	}
	entry.DeriveBMI()
	require.NoError(t, log.Append(entry))

	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, "2026-08-30", got.Date.Format(dateLayout))
	require.NotNil(t, got.Age)
	assert.Equal(t, 34, *got.Age)
	require.NotNil(t, got.WeightKg)
	assert.Equal(t, 70.0, *got.WeightKg)
	require.NotNil(t, got.BMI)
	assert.InDelta(t, 22.86, *got.BMI, 0.01)
	assert.Equal(t, "Normal", got.BMICategory)
	assert.Equal(t, "post workout, feeling fine", got.Notes)

	// skipped optionals stay unset after the round trip
	assert.Nil(t, got.TempC)
	assert.Nil(t, got.BPSystolic)
	assert.Nil(t, got.BloodGlucose)
}

func TestEntriesSortedByDate(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "health_log.csv"))

	require.NoError(t, log.Append(&Entry{Date: testDate(t, "2026-03-02")}))
	require.NoError(t, log.Append(&Entry{Date: testDate(t, "2026-01-15")}))
	require.NoError(t, log.Append(&Entry{Date: testDate(t, "2026-02-01")}))

	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2026-01-15", entries[0].Date.Format(dateLayout))
	assert.Equal(t, "2026-03-02", entries[2].Date.Format(dateLayout))

	last, err := log.Last()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "2026-03-02", last.Date.Format(dateLayout))
}

func TestLastOnEmptyLog(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "health_log.csv"))

	last, err := log.Last()
	require.NoError(t, err)
	assert.Nil(t, last)
}
