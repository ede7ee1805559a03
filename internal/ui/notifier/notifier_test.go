package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(100 * time.Millisecond):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestNotifier_SubscribeCancel(t *testing.T) {
	n := New()

	ch, cancel := n.Subscribe()
	require.NotNil(t, ch)
	assert.Equal(t, 1, n.Len())

	cancel()
	assert.Equal(t, 0, n.Len())

	_, ok := <-ch
	assert.False(t, ok, "cancel closes the channel")

	assert.NotPanics(t, cancel, "cancel is idempotent")
}

func TestNotifier_Broadcast(t *testing.T) {
	n := New()

	ch1, cancel1 := n.Subscribe()
	ch2, cancel2 := n.Subscribe()
	defer cancel1()
	defer cancel2()

	delivered := n.Broadcast(Event{Path: "css/app.css"})
	assert.Equal(t, 2, delivered)

	assert.Equal(t, "css/app.css", receive(t, ch1).Path)
	assert.Equal(t, "css/app.css", receive(t, ch2).Path)
}

func TestNotifier_BroadcastSkipsFullListeners(t *testing.T) {
	n := New()
	ch, cancel := n.Subscribe()
	defer cancel()

	assert.Equal(t, 1, n.Broadcast(Event{Path: "first"}))

	done := make(chan int)
	go func() { done <- n.Broadcast(Event{Path: "second"}) }()

	select {
	case delivered := <-done:
		assert.Equal(t, 0, delivered)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Broadcast blocked on a full listener")
	}

	assert.Equal(t, "first", receive(t, ch).Path)
}

func TestNotifier_NoListeners(t *testing.T) {
	assert.Equal(t, 0, New().Broadcast(Event{}))
}

func TestNotifier_Close(t *testing.T) {
	n := New()
	ch, cancel := n.Subscribe()

	n.Close()
	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, n.Len())
	assert.NotPanics(t, cancel)
	assert.NotPanics(t, n.Close)

	late, _ := n.Subscribe()
	_, ok = <-late
	assert.False(t, ok, "subscriptions after Close are closed immediately")
}

func TestNotifier_Concurrent(t *testing.T) {
	n := New()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := n.Subscribe()
			defer cancel()
			n.Broadcast(Event{})
			select {
			case <-ch:
			case <-time.After(50 * time.Millisecond):
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, n.Len())
}
