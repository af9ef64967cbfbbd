package session

// EventKind identifies a state change of a Controller.
type EventKind int

const (
	EventStarted EventKind = iota
	EventFeedback
	EventAdvanced
	EventCompleted
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFeedback:
		return "feedback"
	case EventAdvanced:
		return "advanced"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after each transition.
type Event struct {
	Kind      EventKind
	SessionID string
	Phase     Phase
	Index     int

	// Feedback is set for EventFeedback.
	Feedback *Feedback
	// Summary is set for EventCompleted.
	Summary *Summary
	// Err is set for EventFailed.
	Err error
}

// Subscribe registers fn to receive events synchronously, in order, on the
// goroutine that drives the controller. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := c.nextSubID
	c.nextSubID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Controller) emit(ev Event) {
	ev.SessionID = c.id
	ev.Phase = c.phase
	ev.Index = c.index
	for id := 0; id < c.nextSubID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fn(ev)
		}
	}
}
