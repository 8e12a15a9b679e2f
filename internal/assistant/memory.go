package assistant

import "time"

// maxMemoryTurns bounds the rolling turn log.
const maxMemoryTurns = 20

// Turn is one completed request/response cycle.
type Turn struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Topics    []string  `json:"topics,omitempty"`
	Entities  []string  `json:"entities,omitempty"`
	Intent    string    `json:"intent"`
	Subject   string    `json:"subject"` // primary subject at the time of the turn
}

// Memory is a bounded FIFO log of past turns. Every completed turn must be
// recorded, including fallback turns, so later turns can reason about the
// full history.
type Memory struct {
	turns []Turn
}

// Record appends a turn, evicting the oldest entry past the cap.
func (m *Memory) Record(t Turn) {
	m.turns = append(m.turns, t)
	if len(m.turns) > maxMemoryTurns {
		m.turns = m.turns[len(m.turns)-maxMemoryTurns:]
	}
}

// Recent returns the last n turns, most recent last. It returns the backing
// entries by value, so callers cannot mutate history.
func (m *Memory) Recent(n int) []Turn {
	if n <= 0 || len(m.turns) == 0 {
		return nil
	}
	if n > len(m.turns) {
		n = len(m.turns)
	}
	out := make([]Turn, n)
	copy(out, m.turns[len(m.turns)-n:])
	return out
}

// Len returns the number of retained turns.
func (m *Memory) Len() int { return len(m.turns) }
