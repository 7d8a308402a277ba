package tuiotime

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Session anchors relative time to an origin captured from its Source.
//
// Thread-safety: Session is safe for concurrent use. The origin is written
// under a mutex; callers are still expected to Init exactly once, before any
// Relative call.
type Session struct {
	src    Source
	logger *slog.Logger

	mu      sync.RWMutex
	origin  Time
	started bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for origin changes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates an uninitialised session reading from src.
// A nil src falls back to SystemSource.
func NewSession(src Source, opts ...Option) *Session {
	if src == nil {
		src = SystemSource{}
	}
	s := &Session{src: src}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Init captures the current clock reading as the session origin.
func (s *Session) Init() Time {
	origin := SnapshotNow(s.src)
	s.setOrigin(origin)
	s.logger.Debug("session origin captured",
		"seconds", origin.Seconds(),
		"microseconds", origin.Microseconds(),
	)
	return origin
}

// Resume installs a previously captured origin.
func (s *Session) Resume(origin Time) {
	s.setOrigin(origin)
	s.logger.Debug("session origin resumed",
		"seconds", origin.Seconds(),
		"microseconds", origin.Microseconds(),
	)
}

func (s *Session) setOrigin(origin Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.origin = origin
	s.started = true
}

// Origin returns the captured origin, or the zero Time before Init.
func (s *Session) Origin() Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.origin
}

// Started reports whether Init or Resume has been called.
func (s *Session) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Now returns the current absolute clock reading.
func (s *Session) Now() Time {
	return SnapshotNow(s.src)
}

// Relative returns the time elapsed since the origin.
//
// Before Init the origin is the zero Time and the result is the absolute
// clock reading.
func (s *Session) Relative() Time {
	return s.Now().Sub(s.Origin())
}

// RelativeChecked is Relative that fails with ErrCodeUninitialized instead of
// measuring against the zero origin.
func (s *Session) RelativeChecked() (Time, error) {
	s.mu.RLock()
	origin, started := s.origin, s.started
	s.mu.RUnlock()
	if !started {
		return Time{}, newUninitializedError()
	}
	return s.Now().Sub(origin), nil
}

var defaultSession atomic.Pointer[Session]

// Default returns the process-wide session, creating an uninitialised one
// on the system clock if none is installed.
func Default() *Session {
	if s := defaultSession.Load(); s != nil {
		return s
	}
	defaultSession.CompareAndSwap(nil, NewSession(SystemSource{}))
	return defaultSession.Load()
}

// SetDefault installs s as the process-wide session and returns the previous one.
func SetDefault(s *Session) *Session {
	return defaultSession.Swap(s)
}

// InitDefault captures the origin of the process-wide session.
func InitDefault() Time {
	return Default().Init()
}

// SystemTime returns the current host clock reading.
func SystemTime() Time {
	return SnapshotNow(SystemSource{})
}

// CurrentTime returns the time elapsed since the process-wide session origin.
func CurrentTime() Time {
	return Default().Relative()
}
