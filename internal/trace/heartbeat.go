package trace

import (
	"strconv"
	"time"
)

// Heartbeat emits a liveness event every interval with the number of
// spans still open, so a hung file shows up as a count that never drops.
type Heartbeat struct {
	stop chan struct{}
	done chan struct{}
}

// StartHeartbeat starts the ticker goroutine; nil when disabled.
func StartHeartbeat(t Tracer, interval time.Duration) *Heartbeat {
	if t == nil || !t.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{stop: make(chan struct{}), done: make(chan struct{})}
	go h.loop(t, interval)
	return h
}

func (h *Heartbeat) loop(t Tracer, interval time.Duration) {
	defer close(h.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for beat := 1; ; beat++ {
		select {
		case now := <-ticker.C:
			t.Emit(&Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    goroutineID(),
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(beat),
				Extra:  map[string]string{"open": strconv.FormatInt(OpenSpans(), 10)},
			})
		case <-h.stop:
			return
		}
	}
}

// Stop ends the goroutine and waits for it. Nil-safe, idempotent.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	select {
	case <-h.stop:
	default:
		close(h.stop)
	}
	<-h.done
}
