// Package export writes workout history to spreadsheet files.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/balkashynov/matwork/internal/models"
)

// Sheet names in the exported workbook
const (
	SheetHistory = "History"
	SheetSummary = "Summary"
)

var historyHeaders = []struct {
	title string
	width float64
}{
	{"Completed", 20},
	{"Session", 28},
	{"Duration (min)", 14},
	{"Duration", 12},
	{"Rating", 12},
	{"Session ID", 38},
}

var summaryHeaders = []struct {
	title string
	width float64
}{
	{"Session", 28},
	{"Workouts", 10},
	{"Total (min)", 12},
	{"Average (min)", 14},
	{"Last completed", 20},
	{"Too easy", 10},
	{"Perfect", 10},
	{"Too hard", 10},
}

// SessionSummary aggregates completed workouts of one session.
type SessionSummary struct {
	SessionName   string
	Count         int
	TotalSeconds  int
	LastCompleted time.Time
	Ratings       map[models.Rating]int
}

// AverageSeconds is the mean workout length.
func (s SessionSummary) AverageSeconds() int {
	if s.Count == 0 {
		return 0
	}
	return s.TotalSeconds / s.Count
}

// Summarize groups history by session name, most workouts first.
func Summarize(history []models.HistoryEntry) []SessionSummary {
	byName := map[string]*SessionSummary{}
	var order []string
	for _, h := range history {
		s, ok := byName[h.SessionName]
		if !ok {
			s = &SessionSummary{SessionName: h.SessionName, Ratings: map[models.Rating]int{}}
			byName[h.SessionName] = s
			order = append(order, h.SessionName)
		}
		s.Count++
		s.TotalSeconds += h.TotalDurationSeconds
		if t := h.CompletedAt.Time(); t.After(s.LastCompleted) {
			s.LastCompleted = t
		}
		if h.Rating != models.RatingNone {
			s.Ratings[h.Rating]++
		}
	}

	summaries := make([]SessionSummary, 0, len(order))
	for _, name := range order {
		summaries = append(summaries, *byName[name])
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Count > summaries[j].Count
	})
	return summaries
}

// WriteHistory saves history, newest first as stored, into an .xlsx workbook.
func WriteHistory(path string, history []models.HistoryEntry, loc *time.Location) error {
	f, err := Build(history, loc)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// Build renders the workbook in memory.
func Build(history []models.HistoryEntry, loc *time.Location) (*excelize.File, error) {
	if loc == nil {
		loc = time.Local
	}
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetHistory); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		f.Close()
		return nil, err
	}

	header, err := headerStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeHistorySheet(f, history, loc, header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing history sheet: %w", err)
	}
	if err := writeSummarySheet(f, Summarize(history), loc, header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing summary sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func writeHeaders(f *excelize.File, sheet string, titles []string, widths []float64, style int) error {
	for i, title := range titles {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(titles), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeHistorySheet(f *excelize.File, history []models.HistoryEntry, loc *time.Location, style int) error {
	titles := make([]string, len(historyHeaders))
	widths := make([]float64, len(historyHeaders))
	for i, h := range historyHeaders {
		titles[i], widths[i] = h.title, h.width
	}
	if err := writeHeaders(f, SheetHistory, titles, widths, style); err != nil {
		return err
	}

	for i, h := range history {
		row := []any{
			h.CompletedAt.Time().In(loc).Format("2006-01-02 15:04"),
			h.SessionName,
			minutes(h.TotalDurationSeconds),
			h.Duration().String(),
			h.Rating.Label(),
			h.SessionID,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetHistory, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summaries []SessionSummary, loc *time.Location, style int) error {
	titles := make([]string, len(summaryHeaders))
	widths := make([]float64, len(summaryHeaders))
	for i, h := range summaryHeaders {
		titles[i], widths[i] = h.title, h.width
	}
	if err := writeHeaders(f, SheetSummary, titles, widths, style); err != nil {
		return err
	}

	for i, s := range summaries {
		row := []any{
			s.SessionName,
			s.Count,
			minutes(s.TotalSeconds),
			minutes(s.AverageSeconds()),
			s.LastCompleted.In(loc).Format("2006-01-02 15:04"),
			s.Ratings[models.RatingTooEasy],
			s.Ratings[models.RatingPerfect],
			s.Ratings[models.RatingTooHard],
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// minutes truncates to one decimal place
func minutes(seconds int) float64 {
	return float64(seconds*10/60) / 10
}
