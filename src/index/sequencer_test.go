package index

import (
	"reflect"
	"testing"
)

func always(int) bool { return true }

func TestSequencerPlayPushesOnTransitionOnly(t *testing.T) {
	s := NewSequencer(0)
	s.Play(1)
	if ids := s.HistoryIDs(); len(ids) != 0 {
		t.Errorf("first play must not touch history, got %v", ids)
	}
	s.Play(1) // replaying the same song is not a transition
	if ids := s.HistoryIDs(); len(ids) != 0 {
		t.Errorf("replay must not touch history, got %v", ids)
	}
	s.Play(2)
	if ids := s.HistoryIDs(); !reflect.DeepEqual(ids, []int{1}) {
		t.Errorf("expected [1] on history, got %v", ids)
	}
}

func TestSequencerQueueFIFOWithDuplicates(t *testing.T) {
	s := NewSequencer(0)
	s.Enqueue(1)
	s.Enqueue(2)
	s.Enqueue(1)
	want := []int{1, 2, 1}
	if ids := s.QueueIDs(); !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for _, expected := range want {
		id, ok := s.PopQueue()
		if !ok || id != expected {
			t.Errorf("expected pop %d, got %d (ok=%v)", expected, id, ok)
		}
	}
	if _, ok := s.PopQueue(); ok {
		t.Error("empty queue must report false")
	}
}

func TestSequencerPopHistorySkipsStaleIDs(t *testing.T) {
	s := NewSequencer(0)
	s.Play(1)
	s.Play(2)
	s.Play(3)
	// history bottom-to-top: 1, 2; pretend 2 was deleted
	id, ok := s.PopHistory(func(id int) bool { return id != 2 })
	if !ok || id != 1 {
		t.Errorf("expected stale 2 skipped and 1 returned, got %d (ok=%v)", id, ok)
	}
	if _, ok := s.PopHistory(always); ok {
		t.Error("history should be exhausted")
	}
}

func TestSequencerHistoryLimit(t *testing.T) {
	s := NewSequencer(2)
	for id := 1; id <= 5; id++ {
		s.Play(id)
	}
	// transitions pushed 1..4; cap keeps the two most recent
	if ids := s.HistoryIDs(); !reflect.DeepEqual(ids, []int{4, 3}) {
		t.Errorf("expected capped history [4 3], got %v", ids)
	}
}

func TestSequencerPurgeQueue(t *testing.T) {
	s := NewSequencer(0)
	s.Enqueue(1)
	s.Enqueue(2)
	s.Enqueue(1)
	s.PurgeQueue(1)
	if ids := s.QueueIDs(); !reflect.DeepEqual(ids, []int{2}) {
		t.Errorf("expected all occurrences purged, got %v", ids)
	}
}

func TestSequencerReset(t *testing.T) {
	s := NewSequencer(0)
	s.Play(1)
	s.Play(2)
	s.Enqueue(3)
	s.Reset()
	if s.Current() != 0 || len(s.QueueIDs()) != 0 || len(s.HistoryIDs()) != 0 {
		t.Error("reset must clear current, queue and history")
	}
}
