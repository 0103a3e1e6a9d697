package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Threshold above which a step is reported at warn level instead of debug.
var Threshold = 1 * time.Second

type Logger interface {
	Start(step string)
	Stop(step string) time.Duration
}

type slowLogger struct {
	log     *zerolog.Logger
	started map[string]time.Time
	mu      sync.Mutex
}

func (s *slowLogger) Start(step string) {
	s.mu.Lock()
	s.started[step] = time.Now()
	s.mu.Unlock()
}

// Stop returns the time elapsed since the matching Start. A step that was
// never started reports zero.
func (s *slowLogger) Stop(step string) time.Duration {
	s.mu.Lock()
	start, ok := s.started[step]
	delete(s.started, step)
	s.mu.Unlock()

	if !ok {
		return 0
	}

	elapsed := time.Since(start)

	event := s.log.Debug()
	if elapsed >= Threshold {
		event = s.log.Warn().Bool("slow", true)
	}

	event.
		Float64("duration", elapsed.Seconds()).
		Str("step", step).
		Msg("")

	return elapsed
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:     &logger,
		started: make(map[string]time.Time),
	}
}
