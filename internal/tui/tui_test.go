package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/playback"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type memoryRecorder struct {
	entries []models.HistoryEntry
	ratings map[string]models.Rating
}

func (r *memoryRecorder) AddHistoryEntry(e models.HistoryEntry) (models.HistoryEntry, error) {
	e.ID = "h-1"
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *memoryRecorder) Rate(id string, rating models.Rating) error {
	if r.ratings == nil {
		r.ratings = map[string]models.Rating{}
	}
	r.ratings[id] = rating
	return nil
}

func twoExerciseSession() models.Session {
	return models.Session{
		ID:   "s-1",
		Name: "Quick mat",
		Exercises: []models.Exercise{
			{Name: "Hundred", DurationSeconds: 2, RestSeconds: 1},
			{Name: "Roll up", DurationSeconds: 1},
		},
	}
}

func newTestPlayer(t *testing.T, rec *memoryRecorder) (PlayerModel, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)}
	m, err := NewPlayerModel(twoExerciseSession(), PlayerOptions{
		Recorder:  rec,
		Rate:      rec.Rate,
		Autostart: true,
		Now:       clock.Now,
	})
	if err != nil {
		t.Fatalf("NewPlayerModel: %v", err)
	}
	return m, clock
}

// tick delivers one tick from the live arm, as the tea runtime would
func tick(m PlayerModel, clock *fakeClock) PlayerModel {
	clock.Advance(time.Second)
	msg := phaseTickMsg{armID: m.sched.active, token: m.engine.Token()}
	next, _ := m.Update(msg)
	return next.(PlayerModel)
}

func key(m PlayerModel, k string) PlayerModel {
	var msg tea.KeyMsg
	if k == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(PlayerModel)
}

func TestTeaScheduler_CancelDropsTicks(t *testing.T) {
	s := &teaScheduler{}
	cancel := s.Arm(1, time.Second)
	first := phaseTickMsg{armID: s.active, token: 1}
	if !s.live(first) {
		t.Fatal("tick of the active arm should be live")
	}
	if s.take() == nil {
		t.Fatal("fresh arm should yield a command")
	}
	if s.take() != nil {
		t.Fatal("take should yield the command once")
	}

	cancel()
	if s.live(first) {
		t.Fatal("tick after cancel should be dropped")
	}

	s.Arm(2, time.Second)
	cancel() // stale cancel must not disarm the new source
	if s.active == 0 {
		t.Fatal("cancel of an old arm disarmed the new one")
	}
	if s.live(first) {
		t.Fatal("tick from the old arm should be dropped")
	}
}

func TestPlayer_RunsToRatingAndRecords(t *testing.T) {
	rec := &memoryRecorder{}
	m, clock := newTestPlayer(t, rec)

	for i := 0; i < 4 && m.stage == stagePlaying; i++ {
		m = tick(m, clock)
	}
	if m.stage != stageRating {
		t.Fatalf("stage = %v, want rating prompt", m.stage)
	}
	if len(rec.entries) != 1 || rec.entries[0].TotalDurationSeconds != 4 {
		t.Fatalf("recorded = %+v", rec.entries)
	}

	m = key(m, "2")
	if m.stage != stageDone {
		t.Fatalf("stage = %v, want done", m.stage)
	}
	if rec.ratings["h-1"] != models.RatingPerfect {
		t.Fatalf("ratings = %v", rec.ratings)
	}
	if r := m.Result(); !r.Completed || r.Rating != models.RatingPerfect {
		t.Fatalf("result = %+v", r)
	}
}

func TestPlayer_PauseDropsInFlightTick(t *testing.T) {
	m, clock := newTestPlayer(t, &memoryRecorder{})
	inFlight := phaseTickMsg{armID: m.sched.active, token: m.engine.Token()}

	m = key(m, " ")
	if m.engine.Running() {
		t.Fatal("space should pause")
	}
	clock.Advance(5 * time.Second)
	next, _ := m.Update(inFlight)
	m = next.(PlayerModel)
	if got := m.engine.Remaining(); got != 2 {
		t.Fatalf("remaining = %d after paused tick, want 2", got)
	}

	m = key(m, " ")
	if !m.engine.Running() || m.sched.active == inFlight.armID {
		t.Fatal("resume should arm a fresh tick source")
	}
}

func TestPlayer_QuitRecordsNothing(t *testing.T) {
	rec := &memoryRecorder{}
	m, clock := newTestPlayer(t, rec)
	m = tick(m, clock)
	m = key(m, "q")

	if m.stage != stageDone || !m.engine.Abandoned() {
		t.Fatal("q should abandon playback")
	}
	if len(rec.entries) != 0 {
		t.Fatalf("history recorded on quit: %+v", rec.entries)
	}
	if m.Result().Completed {
		t.Fatal("quit run reported as completed")
	}
}

func TestPlayer_SkipAdvancesPhase(t *testing.T) {
	m, _ := newTestPlayer(t, &memoryRecorder{})
	m = key(m, "n")
	if got := m.engine.Phase(); got != playback.Rest(0) {
		t.Fatalf("phase = %v, want rest(0)", got)
	}
}

func TestPicker_ChoosesSelected(t *testing.T) {
	sessions := []models.Session{
		{ID: "preset-beginner", Name: "Beginner"},
		{ID: "s-1", Name: "Mine"},
	}
	m := NewPickerModel(sessions)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	s, ok := next.(PickerModel).Chosen()
	if !ok || s.ID != "s-1" {
		t.Fatalf("chosen = %v, %v", s.ID, ok)
	}
}

type failingRecorder struct{ err error }

func (r failingRecorder) AddHistoryEntry(models.HistoryEntry) (models.HistoryEntry, error) {
	return models.HistoryEntry{}, r.err
}

func TestPlayer_RecordingFailureReachesCaller(t *testing.T) {
	diskFull := errors.New("disk full")
	clock := &fakeClock{t: time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)}
	m, err := NewPlayerModel(twoExerciseSession(), PlayerOptions{
		Recorder:  failingRecorder{err: diskFull},
		Rate:      func(string, models.Rating) error { return nil },
		Autostart: true,
		Now:       clock.Now,
	})
	if err != nil {
		t.Fatalf("NewPlayerModel: %v", err)
	}

	for i := 0; i < 4 && m.stage == stagePlaying; i++ {
		m = tick(m, clock)
	}
	if m.stage != stageDone {
		t.Fatalf("stage = %v, want done without a rating prompt", m.stage)
	}

	var out bytes.Buffer
	err = reportPlayerResult(&out, m.Result())
	if !errors.Is(err, diskFull) {
		t.Fatalf("reportPlayerResult error = %v, want %v", err, diskFull)
	}
	if strings.Contains(out.String(), "✅") || !strings.Contains(out.String(), "not saved") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestReportPlayerResult_RatingFailure(t *testing.T) {
	rateErr := errors.New("locked")
	result := PlayerResult{
		Completed: true,
		Entry:     models.HistoryEntry{ID: "h-1", SessionName: "Quick mat", TotalDurationSeconds: 90},
		Err:       rateErr,
	}

	var out bytes.Buffer
	if err := reportPlayerResult(&out, result); !errors.Is(err, rateErr) {
		t.Fatalf("error = %v, want %v", err, rateErr)
	}
	if !strings.Contains(out.String(), "Completed \"Quick mat\"") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestReportPlayerResult_Stopped(t *testing.T) {
	var out bytes.Buffer
	if err := reportPlayerResult(&out, PlayerResult{}); err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out.String(), "Nothing was saved") {
		t.Fatalf("output = %q", out.String())
	}
}
