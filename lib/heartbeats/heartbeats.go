package heartbeats

import (
	"log/slog"
	"time"
)

const (
	DefaultInitialDelay = 10 * time.Second
	DefaultInterval     = 30 * time.Second
)

type Heartbeats struct {
	startTime time.Time
	// [initialDelay] - How long to wait before the first heartbeat.
	initialDelay time.Duration
	// [interval] - How often to log a heartbeat after that.
	interval time.Duration

	stage    string
	progress func() int64
}

// New returns heartbeats for [stage]. [progress] is called on every tick and must be safe to call from another goroutine.
func New(initialDelay, interval time.Duration, stage string, progress func() int64) *Heartbeats {
	return &Heartbeats{
		initialDelay: initialDelay,
		interval:     interval,
		stage:        stage,
		progress:     progress,
	}
}

// Start begins logging in the background, the returned func stops it.
func (h *Heartbeats) Start() func() {
	h.startTime = time.Now()
	done := make(chan struct{})
	go h.start(done)
	return func() {
		close(done)
	}
}

func (h *Heartbeats) start(done <-chan struct{}) {
	timer := time.NewTimer(h.initialDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-done:
		return
	}

	h.beat()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			h.beat()
		}
	}
}

func (h *Heartbeats) beat() {
	attrs := []any{slog.String("stage", h.stage), slog.Duration("duration", time.Since(h.startTime))}
	if h.progress != nil {
		attrs = append(attrs, slog.Int64("rows", h.progress()))
	}

	slog.Info("Heartbeat check", attrs...)
}
