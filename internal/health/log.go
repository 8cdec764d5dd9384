package health

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// Log is an append-only CSV file of health checkup entries. Rows are
// immutable once written; the file is created with its header on first use.
type Log struct {
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Path() string {
	return l.path
}

// Ensure creates the CSV file with its header row if it does not exist yet.
func (l *Log) Ensure() error {
	if _, err := os.Stat(l.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check log file: %v", err)
	}

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %v", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&[]*Entry{}, f); err != nil {
		return fmt.Errorf("failed to write log header: %v", err)
	}
	return nil
}

// Append writes one entry to the end of the log.
func (l *Log) Append(entry *Entry) error {
	if err := l.Ensure(); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	defer f.Close()

	if err := gocsv.MarshalWithoutHeaders(&[]*Entry{entry}, f); err != nil {
		return fmt.Errorf("failed to append entry: %v", err)
	}
	return nil
}

// Entries loads every row, sorted by date ascending.
func (l *Log) Entries() ([]*Entry, error) {
	if err := l.Ensure(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}
	defer f.Close()

	var entries []*Entry
	if err := gocsv.UnmarshalFile(f, &entries); err != nil {
		return nil, fmt.Errorf("failed to read log file: %v", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date.Time)
	})
	return entries, nil
}

// Last returns the most recent entry by date, or nil when the log is empty.
func (l *Log) Last() (*Entry, error) {
	entries, err := l.Entries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[len(entries)-1], nil
}
