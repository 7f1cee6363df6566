package index

// Sequencer tracks playback order: the currently playing id, the FIFO queue
// of explicitly queued ids and the LIFO history of previously played ids.
// It stores ids only and does no existence checks itself; the facade
// validates against the catalog.
type Sequencer struct {
	queue   []int
	history []int // most recent at the end
	current int   // 0 = idle
	// historyLimit caps the stack; 0 means unbounded.
	historyLimit int
}

// NewSequencer creates an idle sequencer.
func NewSequencer(historyLimit int) *Sequencer {
	return &Sequencer{historyLimit: historyLimit}
}

// Play makes the id current. The previous current id is pushed onto history
// only on a real transition, never when the same song is replayed.
func (s *Sequencer) Play(id int) {
	if s.current != 0 && s.current != id {
		s.push(s.current)
	}
	s.current = id
}

func (s *Sequencer) push(id int) {
	s.history = append(s.history, id)
	if s.historyLimit > 0 && len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}
}

// Enqueue appends the id to the back of the queue. Duplicates are allowed.
func (s *Sequencer) Enqueue(id int) {
	s.queue = append(s.queue, id)
}

// PopQueue removes and returns the front of the queue.
func (s *Sequencer) PopQueue() (int, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	id := s.queue[0]
	s.queue = s.queue[1:]
	return id, true
}

// PopHistory pops the most recent history entry for which exists returns
// true. Stale ids of deleted songs are silently discarded on the way; the
// stack is never rewritten on deletion.
func (s *Sequencer) PopHistory(exists func(id int) bool) (int, bool) {
	for len(s.history) > 0 {
		id := s.history[len(s.history)-1]
		s.history = s.history[:len(s.history)-1]
		if exists(id) {
			return id, true
		}
	}
	return 0, false
}

// Current returns the currently playing id, 0 when idle.
func (s *Sequencer) Current() int {
	return s.current
}

// SetCurrent replaces the current id without touching history. Used by
// Previous, where back-navigation must not re-push the replaced song.
func (s *Sequencer) SetCurrent(id int) {
	s.current = id
}

// ClearCurrent returns the sequencer to the idle state.
func (s *Sequencer) ClearCurrent() {
	s.current = 0
}

// PurgeQueue removes every queued occurrence of the id. Called when a song is
// deleted from the catalog; history is left to the lazy skip in PopHistory.
func (s *Sequencer) PurgeQueue(id int) {
	kept := s.queue[:0]
	for _, queued := range s.queue {
		if queued != id {
			kept = append(kept, queued)
		}
	}
	s.queue = kept
}

// QueueIDs returns the queue front-to-back.
func (s *Sequencer) QueueIDs() []int {
	out := make([]int, len(s.queue))
	copy(out, s.queue)
	return out
}

// HistoryIDs returns the history most-recent-first.
func (s *Sequencer) HistoryIDs() []int {
	out := make([]int, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// Reset drops queue, history and current.
func (s *Sequencer) Reset() {
	s.queue = nil
	s.history = nil
	s.current = 0
}
