package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/balkashynov/matwork/internal/models"
)

func sampleHistory() []models.HistoryEntry {
	base := time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC)
	return []models.HistoryEntry{
		{ID: "h-3", SessionID: "s-1", SessionName: "Morning mat", CompletedAt: models.MillisOf(base.Add(48 * time.Hour)), TotalDurationSeconds: 1200, Rating: models.RatingPerfect},
		{ID: "h-2", SessionID: "preset-beginner", SessionName: "Beginner", CompletedAt: models.MillisOf(base.Add(24 * time.Hour)), TotalDurationSeconds: 900},
		{ID: "h-1", SessionID: "s-1", SessionName: "Morning mat", CompletedAt: models.MillisOf(base), TotalDurationSeconds: 600, Rating: models.RatingTooHard},
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleHistory())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	mat := got[0]
	if mat.SessionName != "Morning mat" || mat.Count != 2 || mat.TotalSeconds != 1800 {
		t.Fatalf("first summary = %+v", mat)
	}
	if mat.AverageSeconds() != 900 {
		t.Errorf("average = %d, want 900", mat.AverageSeconds())
	}
	if !mat.LastCompleted.Equal(time.Date(2025, 11, 12, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("last completed = %v", mat.LastCompleted)
	}
	if mat.Ratings[models.RatingPerfect] != 1 || mat.Ratings[models.RatingTooHard] != 1 {
		t.Errorf("ratings = %v", mat.Ratings)
	}
	if got[1].Ratings[models.RatingNone] != 0 {
		t.Error("unrated entries should not be counted")
	}
}

func TestWriteHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")
	if err := WriteHistory(path, sampleHistory(), time.UTC); err != nil {
		t.Fatalf("WriteHistory: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetHistory)
	if err != nil {
		t.Fatalf("GetRows(history): %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("history rows = %d, want header + 3", len(rows))
	}
	if rows[0][1] != "Session" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "2025-11-12 08:00" || rows[1][1] != "Morning mat" || rows[1][2] != "20" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[1][5] != "s-1" {
		t.Errorf("session id cell = %q", rows[1][5])
	}

	summary, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("GetRows(summary): %v", err)
	}
	if len(summary) != 3 {
		t.Fatalf("summary rows = %d, want header + 2", len(summary))
	}
	if summary[1][0] != "Morning mat" || summary[1][1] != "2" || summary[1][2] != "30" {
		t.Errorf("summary row = %v", summary[1])
	}
}

func TestWriteHistory_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteHistory(path, nil, nil); err != nil {
		t.Fatalf("WriteHistory: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 2 || sheets[0] != SheetHistory {
		t.Fatalf("sheets = %v", sheets)
	}
}
