package state

// ExecutionQueue is the FIFO of confirmed script paths awaiting launch.
type ExecutionQueue struct {
	items []string
}

// Replace discards the queue and loads paths in order.
func (q *ExecutionQueue) Replace(paths []string) {
	q.items = append([]string(nil), paths...)
}

// Push appends path to the tail.
func (q *ExecutionQueue) Push(path string) {
	q.items = append(q.items, path)
}

// Pop removes and returns the head.
func (q *ExecutionQueue) Pop() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	head := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return head, true
}

// Len returns the number of queued paths.
func (q *ExecutionQueue) Len() int {
	return len(q.items)
}

// Items returns a copy of the queue, head first.
func (q *ExecutionQueue) Items() []string {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]string, len(q.items))
	copy(out, q.items)
	return out
}

// Clear drops every queued path.
func (q *ExecutionQueue) Clear() {
	q.items = nil
}
