package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentUpdated   = "appointment_updated"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionAppointmentCompleted = "appointment_completed"
	ActionAppointmentConflict  = "appointment_conflict"

	EntityAppointment = "appointment"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log *zap.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.String("entity_id", ev.EntityID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch enqueues ev without blocking. A full queue drops the event so
// auditing never stalls a request.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to
// expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
