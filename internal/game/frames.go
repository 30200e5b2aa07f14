package game

// FrameID identifies a requested frame callback
type FrameID uint64

// FrameScheduler runs callbacks once on the next display frame
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameScheduler advanced explicitly by Step.
// The terminal loop steps it on every tick; tests step it by hand.
// It is not safe for concurrent use.
type FrameQueue struct {
	lastID  FrameID
	pending []frameRequest
	running []frameRequest
}

// NewFrameQueue creates an empty frame queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Step
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.lastID++
	q.pending = append(q.pending, frameRequest{id: q.lastID, fn: fn})
	return q.lastID
}

// CancelFrame invalidates a request. Cancelling a request that already ran,
// or one due later in the Step currently executing, is safe.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Step runs every callback that was due at the start of the call and
// returns how many ran. Callbacks requested during Step wait for the next one.
func (q *FrameQueue) Step() int {
	q.running, q.pending = q.pending, nil

	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	q.running = nil
	return ran
}

// Pending returns number of callbacks waiting for the next Step
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
