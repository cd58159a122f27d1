// Package events loads historical events to overlay on the axis.
package events

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"timeaxis/internal/period"
)

// Event is a dated entry with free-form columns.
type Event struct {
	At   time.Time
	Data map[string]string // Remaining columns keyed by lower-cased header
}

// Title returns the event's title column.
func (e Event) Title() string { return e.Data["title"] }

// Notes returns the event's notes column.
func (e Event) Notes() string { return e.Data["notes"] }

// Load reads events from a CSV file. See Parse.
func Load(filename, dateColumn string, now time.Time) ([]Event, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()
	return Parse(file, dateColumn, now)
}

// Parse reads CSV events. The header row names the columns, matched case-insensitively;
// dateColumn holds dates in the axis label formats ("15/3/44BCE", "3/1900", "1900").
// Events are returned in date order.
func Parse(r io.Reader, dateColumn string, now time.Time) ([]Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV has no header row")
		}
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	dateKey := strings.ToLower(dateColumn)
	dateCol, ok := columnMap[dateKey]
	if !ok {
		return nil, fmt.Errorf("date column '%s' not found in CSV. Available columns: %v", dateColumn, header)
	}

	var events []Event
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		if dateCol >= len(record) {
			return nil, fmt.Errorf("row %d: missing date column", row)
		}

		at, err := period.ParseDateText(record[dateCol], now)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		data := make(map[string]string, len(columnMap))
		for name, idx := range columnMap {
			if idx < len(record) && name != dateKey {
				data[name] = strings.TrimSpace(record[idx])
			}
		}
		events = append(events, Event{At: at, Data: data})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})
	return events, nil
}

// Within returns the events inside [start, end].
func Within(events []Event, start, end time.Time) []Event {
	var out []Event
	for _, e := range events {
		if !e.At.Before(start) && !e.At.After(end) {
			out = append(out, e)
		}
	}
	return out
}
