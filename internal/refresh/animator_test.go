package refresh

import (
	"sync"
	"testing"
	"time"
)

func TestAnimator_AfterIsSuperseded(t *testing.T) {
	var mu sync.Mutex
	a := NewAnimator(&mu, time.Millisecond, nil)

	var ran []string
	mu.Lock()
	a.After(30*time.Millisecond, func() { ran = append(ran, "first") })
	a.After(10*time.Millisecond, func() { ran = append(ran, "second") })
	mu.Unlock()

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("Expected only the newest task to run, got %v", ran)
	}
}

func TestAnimator_AnimateReachesTarget(t *testing.T) {
	var mu sync.Mutex
	changed := make(chan struct{}, 100)
	a := NewAnimator(&mu, time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	var value float32
	done := make(chan struct{})
	mu.Lock()
	a.Animate(0, 40, 15*time.Millisecond, func(v float32) { value = v }, func() { close(done) })
	mu.Unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animation did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	if value != 40 {
		t.Errorf("Expected final value 40, got %v", value)
	}
	if len(changed) == 0 {
		t.Error("Expected change notifications")
	}
}

func TestAnimator_CancelStopsAnimation(t *testing.T) {
	var mu sync.Mutex
	a := NewAnimator(&mu, time.Millisecond, nil)

	var value float32
	finished := false
	mu.Lock()
	a.Animate(0, 100, 50*time.Millisecond, func(v float32) { value = v }, func() { finished = true })
	a.Cancel()
	mu.Unlock()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if finished || value != 0 {
		t.Errorf("Cancelled animation still ran: value=%v finished=%v", value, finished)
	}
}

func TestEaseOut(t *testing.T) {
	if easeOut(0) != 0 || easeOut(1) != 1 {
		t.Errorf("easeOut endpoints wrong: %v %v", easeOut(0), easeOut(1))
	}
	if easeOut(0.5) <= 0.5 {
		t.Errorf("easeOut should lead linear progress, got %v", easeOut(0.5))
	}
}
