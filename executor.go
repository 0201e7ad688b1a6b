// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// defaultCapacity is the run queue ring size when WithCapacity is not given.
const defaultCapacity = 64

// Executor runs tasks on a single consumer, one Job at a time.
//
// Jobs are queued by Spawn and by resumed continuations, from any goroutine.
// Poll, Drain and Run pop and run them in FIFO order. They must not be
// called concurrently with each other; whichever goroutine calls them is
// where task code executes.
//
// The queue is a bounded lock-free SPSC ring. Producers serialize on a
// mutex, and when the ring is full further Jobs spill into an overflow list
// until the consumer catches up. Queuing never waits for the consumer, so a
// task may resume its own continuation without deadlocking.
type Executor struct {
	mu       sync.Mutex
	runq     lfq.SPSC[Job]
	slot     Job
	overflow []Job

	live     atomix.Uint32
	capacity int
	wake     func()
	violate  func(error)
}

// Option configures an Executor.
type Option func(*Executor)

// WithCapacity sets the run queue ring size. n is rounded up to a power of
// two, with a minimum of 2. Jobs beyond the ring spill into an unbounded
// overflow list, so capacity trades memory for fewer lock-held appends.
func WithCapacity(n int) Option {
	return func(e *Executor) {
		e.capacity = n
	}
}

// WithViolationHandler installs f to receive every [*ContractError] raised
// by checked continuations of tasks on this executor. f may be called from
// any goroutine, including the runtime's cleanup goroutine.
//
// The default handler panics.
func WithViolationHandler(f func(error)) Option {
	return func(e *Executor) {
		e.violate = f
	}
}

// WithWake installs f to be called after each Job is queued, outside any
// lock. An event loop uses it to learn that Drain has work. f must not
// block and must not call Poll, Drain or Run itself.
func WithWake(f func()) Option {
	return func(e *Executor) {
		e.wake = f
	}
}

// NewExecutor creates an Executor configured by opts.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{capacity: defaultCapacity, violate: panicViolation}
	for _, opt := range opts {
		opt(e)
	}
	if e.violate == nil {
		e.violate = panicViolation
	}
	e.runq.Init(roundCapacity(e.capacity))
	return e
}

func panicViolation(err error) {
	panic(err)
}

func roundCapacity(n int) int {
	c := 2
	for c < n {
		c <<= 1
	}
	return c
}

// enqueue appends j to the run queue. Safe for concurrent use.
func (e *Executor) enqueue(j Job) {
	e.mu.Lock()
	if len(e.overflow) != 0 {
		e.overflow = append(e.overflow, j)
	} else {
		e.slot = j
		if err := e.runq.Enqueue(&e.slot); err != nil {
			e.overflow = append(e.overflow, j)
		}
		e.slot = Job{}
	}
	e.mu.Unlock()

	if wake := e.wake; wake != nil {
		wake()
	}
}

// Live returns the number of tasks spawned on e that have not finished.
// Suspended tasks count as live.
func (e *Executor) Live() int {
	return int(e.live.Load())
}

// report delivers a contract violation to the violation handler.
func (e *Executor) report(err error) {
	e.violate(err)
}
