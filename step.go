// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

// Poll and Drain are the stepping boundary for external event loops: an
// embedder that owns its own loop polls Jobs one at a time (for example
// after a WithWake notification) instead of calling Run.

// Poll pops the next runnable Job without running it.
// Returns (zero, false) if nothing is queued.
//
// The caller owns the returned Job and must Run it.
func (e *Executor) Poll() (Job, bool) {
	if j, err := e.runq.Dequeue(); err == nil {
		return j, true
	}
	e.mu.Lock()
	if len(e.overflow) == 0 {
		e.mu.Unlock()
		return Job{}, false
	}
	j := e.overflow[0]
	e.overflow[0] = Job{}
	e.overflow = e.overflow[1:]
	if len(e.overflow) == 0 {
		e.overflow = nil
	}
	e.mu.Unlock()
	return j, true
}

// Drain runs queued Jobs until the queue is empty and returns how many ran.
// Jobs queued while draining, including by the tasks themselves, run in
// the same call.
func (e *Executor) Drain() int {
	n := 0
	for {
		j, ok := e.Poll()
		if !ok {
			return n
		}
		j.Run()
		n++
	}
}
