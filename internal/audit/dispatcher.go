package audit

import (
	"context"
	"log"
)

type Event struct {
	ActorID   string
	ActorRole string
	Action    string
	Entity    string
	EntityID  string
}

// Dispatcher decouples audit writes from request handling: events are queued
// and persisted by a single worker goroutine.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			context.Background(),
			ev.ActorID,
			ev.ActorRole,
			ev.Action,
			ev.Entity,
			ev.EntityID,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks a request; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
