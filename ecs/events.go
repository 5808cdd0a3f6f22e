package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// MotionEventKind identifies movement state changes.
type MotionEventKind string

const (
	MotionGrounded  MotionEventKind = "grounded"
	MotionAirborne  MotionEventKind = "airborne"
	MotionJumped    MotionEventKind = "jumped"
	MotionDashed    MotionEventKind = "dashed"
	MotionDashEnded MotionEventKind = "dash_ended"
)

// MotionEvent is emitted when a character's movement state changes.
type MotionEvent struct {
	Entity Entity
	Kind   MotionEventKind
	Tick   uint64
}

// EventQueue is a simple FIFO queue. Events pushed during a tick stay
// available until the next tick starts.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
