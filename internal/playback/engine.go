// Package playback drives a session through its exercise and rest phases and
// records the run when it completes.
package playback

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/balkashynov/matwork/internal/models"
)

// ErrNoExercises is returned by Start for a session without exercises, and is
// reported by Err if the engine ever finds no exercise at its index.
var ErrNoExercises = errors.New("playback: no exercises available")

// Recorder persists the history entry of a completed run.
type Recorder interface {
	AddHistoryEntry(entry models.HistoryEntry) (models.HistoryEntry, error)
}

// Events are optional callbacks fired synchronously from engine calls.
type Events struct {
	PhaseChange func(Phase)
	Tick        func(secondsRemaining int)
	Completed   func(models.HistoryEntry)
}

// Options configure an engine.
type Options struct {
	Scheduler Scheduler // required
	Recorder  Recorder  // nil skips persistence
	Events    Events
	Now       func() time.Time
	Interval  time.Duration // defaults to one second
	Logger    *slog.Logger
}

// Engine is the playback state machine for one run of a session. It is not
// safe for concurrent use; callers drive it from a single loop.
type Engine struct {
	sessionID   string
	sessionName string
	exercises   []models.Exercise

	opts Options
	log  *slog.Logger

	phase     Phase
	countdown countdown
	lastTick  int
	startedAt time.Time

	token  Token
	cancel CancelFunc

	finished bool
	quit     bool
	entry    models.HistoryEntry
	err      error
}

// Start begins playback at Exercise(0). The session is snapshotted, so later
// edits to it do not affect the run.
func Start(session models.Session, opts Options) (*Engine, error) {
	if len(session.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	if opts.Scheduler == nil {
		return nil, errors.New("playback: scheduler is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		sessionID:   session.ID,
		sessionName: session.Name,
		exercises:   append([]models.Exercise(nil), session.Exercises...),
		opts:        opts,
		log:         log.With("session", session.ID),
	}
	e.startedAt = opts.Now()
	e.log.Info("playback started", "exercises", len(e.exercises))
	e.enter(Exercise(0))
	return e, nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Token returns the token ticks must carry to be honored.
func (e *Engine) Token() Token { return e.token }

// Running reports whether the current phase is counting down.
func (e *Engine) Running() bool {
	return !e.finished && e.countdown.running
}

// Finished reports whether the engine reached Completed or was quit.
func (e *Engine) Finished() bool { return e.finished }

// Abandoned reports whether playback ended through Quit.
func (e *Engine) Abandoned() bool { return e.quit }

// Err returns the error state, if any.
func (e *Engine) Err() error { return e.err }

// SessionName returns the name captured at start.
func (e *Engine) SessionName() string { return e.sessionName }

// Remaining returns whole seconds left in the current phase.
func (e *Engine) Remaining() int {
	if e.phase.Kind == KindCompleted {
		return 0
	}
	return e.countdown.remaining(e.opts.Now())
}

// PhaseSeconds returns the configured length of the current phase.
func (e *Engine) PhaseSeconds() int {
	return int(e.countdown.total / time.Second)
}

// Elapsed returns the wall-clock time since Start, pauses included.
func (e *Engine) Elapsed() time.Duration {
	if e.phase.Kind == KindCompleted {
		return e.entry.CompletedAt.Time().Sub(e.startedAt)
	}
	return e.opts.Now().Sub(e.startedAt)
}

// Current returns the exercise of the current phase.
func (e *Engine) Current() (models.Exercise, bool) {
	if e.phase.Kind == KindCompleted {
		return models.Exercise{}, false
	}
	return e.exerciseAt(e.phase.Index)
}

// Next returns the exercise that follows the current one.
func (e *Engine) Next() (models.Exercise, bool) {
	if e.phase.Kind == KindCompleted {
		return models.Exercise{}, false
	}
	return e.exerciseAt(e.phase.Index + 1)
}

// Progress returns the 1-based number of the current exercise and the total.
func (e *Engine) Progress() (int, int) {
	if e.phase.Kind == KindCompleted {
		return len(e.exercises), len(e.exercises)
	}
	return e.phase.Index + 1, len(e.exercises)
}

// Entry returns the history entry produced on completion.
func (e *Engine) Entry() (models.HistoryEntry, bool) {
	return e.entry, e.phase.Kind == KindCompleted
}

// Tick advances the countdown. Ticks carrying a stale token, or arriving while
// paused or finished, are ignored.
func (e *Engine) Tick(token Token) {
	if e.finished || token != e.token || !e.countdown.running {
		return
	}

	now := e.opts.Now()
	remaining := e.countdown.remaining(now)
	if remaining != e.lastTick {
		e.emitTick(remaining)
	}
	if remaining == 0 && !e.countdown.fired {
		e.countdown.fired = true
		e.advance()
	}
}

// Pause suspends the countdown of the current phase.
func (e *Engine) Pause() {
	if e.finished || !e.countdown.running {
		return
	}
	e.countdown.pause(e.opts.Now())
	e.disarm()
	e.log.Debug("paused", "phase", e.phase.String())
}

// Resume continues a paused countdown.
func (e *Engine) Resume() {
	if e.finished || e.countdown.running {
		return
	}
	e.countdown.resume(e.opts.Now())
	e.arm()
	e.log.Debug("resumed", "phase", e.phase.String())
}

// TogglePause pauses a running phase or resumes a paused one.
func (e *Engine) TogglePause() {
	if e.countdown.running {
		e.Pause()
	} else {
		e.Resume()
	}
}

// ResetCurrentPhase rewinds the current phase to its full length, paused.
func (e *Engine) ResetCurrentPhase() {
	if e.finished {
		return
	}
	e.countdown.reset(e.opts.Now())
	e.disarm()
	e.emitTick(e.countdown.remaining(e.opts.Now()))
}

// Skip ends the current phase now, following the same transitions as a
// natural elapse.
func (e *Engine) Skip() {
	if e.finished {
		return
	}
	e.countdown.fired = true
	e.advance()
}

// Quit abandons playback. No history is recorded.
func (e *Engine) Quit() {
	if e.finished {
		return
	}
	e.disarm()
	e.token++
	e.finished = true
	e.quit = true
	e.log.Info("playback quit", "phase", e.phase.String())
}

// advance applies the transition out of the current phase.
func (e *Engine) advance() {
	i := e.phase.Index
	current, ok := e.exerciseAt(i)
	if !ok {
		e.fail()
		return
	}
	isLast := i == len(e.exercises)-1

	switch e.phase.Kind {
	case KindExercise:
		switch {
		case current.RestSeconds > 0:
			e.enter(Rest(i))
		case isLast:
			e.enter(Completed)
		default:
			e.enter(Exercise(i + 1))
		}
	case KindRest:
		if isLast {
			e.enter(Completed)
		} else {
			e.enter(Exercise(i + 1))
		}
	}
}

// enter switches to p. The previous tick source is cancelled before anything
// else so it cannot touch the new phase.
func (e *Engine) enter(p Phase) {
	e.disarm()
	e.token++

	if p.Kind == KindCompleted {
		e.complete()
		return
	}

	ex, ok := e.exerciseAt(p.Index)
	if !ok {
		e.fail()
		return
	}
	seconds := ex.DurationSeconds
	if p.Kind == KindRest {
		seconds = ex.RestSeconds
	}

	now := e.opts.Now()
	e.phase = p
	e.countdown = newCountdown(seconds, now)
	e.log.Debug("phase change", "phase", p.String(), "seconds", seconds)

	if fn := e.opts.Events.PhaseChange; fn != nil {
		fn(p)
	}
	e.emitTick(e.countdown.remaining(now))
	e.arm()
}

func (e *Engine) complete() {
	completedAt := e.opts.Now()
	total := completedAt.Sub(e.startedAt) / time.Second
	if total < 0 {
		total = 0
	}

	e.phase = Completed
	e.finished = true
	e.countdown = countdown{}
	e.entry = models.HistoryEntry{
		SessionID:            e.sessionID,
		SessionName:          e.sessionName,
		CompletedAt:          models.MillisOf(completedAt),
		TotalDurationSeconds: int(total),
	}

	if e.opts.Recorder != nil {
		saved, err := e.opts.Recorder.AddHistoryEntry(e.entry)
		if err != nil {
			e.err = fmt.Errorf("recording history: %w", err)
			e.log.Error("failed to record history", "error", err)
		} else {
			e.entry = saved
		}
	}
	e.log.Info("playback completed", "duration", e.entry.TotalDurationSeconds)

	if fn := e.opts.Events.PhaseChange; fn != nil {
		fn(Completed)
	}
	if fn := e.opts.Events.Completed; fn != nil {
		fn(e.entry)
	}
}

// fail puts the engine in its error state without transitioning.
func (e *Engine) fail() {
	e.disarm()
	e.finished = true
	e.err = ErrNoExercises
	e.log.Error("no exercise at index", "phase", e.phase.String())
}

func (e *Engine) exerciseAt(i int) (models.Exercise, bool) {
	if i < 0 || i >= len(e.exercises) {
		return models.Exercise{}, false
	}
	return e.exercises[i], true
}

func (e *Engine) emitTick(remaining int) {
	e.lastTick = remaining
	if fn := e.opts.Events.Tick; fn != nil {
		fn(remaining)
	}
}

func (e *Engine) arm() {
	if e.cancel != nil || !e.countdown.running {
		return
	}
	e.cancel = e.opts.Scheduler.Arm(e.token, e.opts.Interval)
}

func (e *Engine) disarm() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}
