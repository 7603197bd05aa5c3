package refresh

import (
	"sync"
	"time"
)

// Animator runs at most one scheduled task at a time. Starting a task
// supersedes the previous one; a superseded task never runs another step.
//
// All methods except the constructor must be called with lock held. Task
// callbacks run with lock held, and changed runs after it is released.
type Animator struct {
	lock    sync.Locker
	changed func()
	frame   time.Duration
	gen     uint64
}

// NewAnimator creates an animator whose callbacks are serialized by lock
func NewAnimator(lock sync.Locker, frame time.Duration, changed func()) *Animator {
	if changed == nil {
		changed = func() {}
	}
	return &Animator{lock: lock, frame: frame, changed: changed}
}

// Cancel supersedes the running task, if any
func (a *Animator) Cancel() {
	a.gen++
}

// Animate interpolates from -> to over d with an ease-out curve, calling step
// with each value. done runs after the final step.
func (a *Animator) Animate(from, to float32, d time.Duration, step func(float32), done func()) {
	a.gen++
	gen := a.gen

	go func() {
		start := time.Now()
		ticker := time.NewTicker(a.frame)
		defer ticker.Stop()

		for range ticker.C {
			t := float32(1)
			if d > 0 {
				t = float32(time.Since(start)) / float32(d)
			}
			finished := t >= 1
			v := to
			if !finished {
				v = from + (to-from)*easeOut(t)
			}

			a.lock.Lock()
			if gen != a.gen {
				a.lock.Unlock()
				return
			}
			step(v)
			if finished && done != nil {
				done()
			}
			a.lock.Unlock()
			a.changed()

			if finished {
				return
			}
		}
	}()
}

// After runs fn once d has elapsed
func (a *Animator) After(d time.Duration, fn func()) {
	a.gen++
	gen := a.gen

	time.AfterFunc(d, func() {
		a.lock.Lock()
		if gen != a.gen {
			a.lock.Unlock()
			return
		}
		fn()
		a.lock.Unlock()
		a.changed()
	})
}

func easeOut(t float32) float32 {
	inv := 1 - t
	return 1 - inv*inv*inv
}
