package input

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(4)

	if _, ok := q.Pop(); ok {
		t.Fatal("empty queue returned an event")
	}

	in := []Event{{true, KeyEnter}, {false, KeyEnter}, {true, KeyFire}}
	for _, e := range in {
		q.Push(e)
	}
	for i, want := range in {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Errorf("pop %d: got %v (%v), want %v", i, got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("drained queue returned an event")
	}
}

func TestQueueOverflow(t *testing.T) {
	q := NewQueue(DefaultQueueSize)

	// 17 events before any read, #1 must be lost
	for i := 1; i <= DefaultQueueSize+1; i++ {
		overwritten := q.Push(Event{Pressed: true, Key: Key(i)})
		if overwritten != (i == DefaultQueueSize+1) {
			t.Errorf("push %d: overwritten = %v", i, overwritten)
		}
	}

	if q.Len() != DefaultQueueSize {
		t.Errorf("len = %v, want %v", q.Len(), DefaultQueueSize)
	}
	if q.Dropped() != 1 {
		t.Errorf("dropped = %v, want 1", q.Dropped())
	}

	for i := 2; i <= DefaultQueueSize+1; i++ {
		e, ok := q.Pop()
		if !ok {
			t.Fatalf("event #%d is missing", i)
		}
		if e.Key != Key(i) {
			t.Errorf("got event #%d, want #%d", e.Key, i)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("extra event after overflow")
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := NewQueue(3)

	// indices go around the ring several times
	for round := 0; round < 10; round++ {
		q.Push(Event{Key: Key(round)})
		q.Push(Event{Key: Key(round + 100)})
		a, _ := q.Pop()
		b, _ := q.Pop()
		if a.Key != Key(round) || b.Key != Key(round+100) {
			t.Fatalf("round %d: got %v %v", round, a, b)
		}
	}
	if q.Len() != 0 {
		t.Errorf("len = %v, want 0", q.Len())
	}
}

func TestQueueDefaultSize(t *testing.T) {
	if c := NewQueue(0).Cap(); c != DefaultQueueSize {
		t.Errorf("cap = %v, want %v", c, DefaultQueueSize)
	}
}

func TestEventPack(t *testing.T) {
	tests := []struct {
		e    Event
		word uint16
	}{
		{e: Event{Pressed: true, Key: KeyEnter}, word: 0x010d},
		{e: Event{Pressed: false, Key: KeyFire}, word: 0x00a3},
		{e: Event{Pressed: true, Key: KeyF1}, word: 0x01bb},
	}
	for _, tt := range tests {
		if got := tt.e.Pack(); got != tt.word {
			t.Errorf("%v.Pack() = %#04x, want %#04x", tt.e, got, tt.word)
		}
		if got := Unpack(tt.word); got != tt.e {
			t.Errorf("Unpack(%#04x) = %v, want %v", tt.word, got, tt.e)
		}
	}
}
