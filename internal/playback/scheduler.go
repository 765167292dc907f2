package playback

import (
	"sync"
	"time"
)

// Token identifies the phase a tick was armed for. The engine ignores ticks
// whose token is not current.
type Token uint64

// CancelFunc stops an armed tick source. Calling it more than once is safe.
type CancelFunc func()

// Scheduler arms a recurring tick: roughly every interval the owner must call
// Engine.Tick with token, until the returned CancelFunc runs.
type Scheduler interface {
	Arm(token Token, interval time.Duration) CancelFunc
}

// TickerScheduler delivers armed ticks on a channel so a single loop can feed
// them to the engine.
type TickerScheduler struct {
	c chan Token
}

// NewTickerScheduler returns a scheduler backed by time.Ticker.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{c: make(chan Token, 1)}
}

// C returns the channel tokens are delivered on.
func (s *TickerScheduler) C() <-chan Token {
	return s.c
}

// Arm starts a ticker goroutine for token.
func (s *TickerScheduler) Arm(token Token, interval time.Duration) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case s.c <- token:
				case <-done:
					return
				default:
					// consumer busy, drop
				}
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
