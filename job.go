// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// runner is implemented by tasks. run advances the task by one step:
// from its start on the first call, and from its pending suspension with
// v on every later call.
type runner interface {
	run(v kont.Resumed)
}

// jobRef is the executor-owned state behind a Job.
type jobRef struct {
	exec   *Executor
	task   runner
	value  kont.Resumed
	used   atomix.Uint32
	serial Serial
}

// Job is an opaque handle to one schedulable increment of a suspended task.
//
// The executor creates a fresh Job every time a task suspends and hands it
// to the continuation of that suspension. Resuming the continuation binds
// the resume value to the Job and queues it; the executor later calls Run.
// Ownership moves with the value: whoever holds a Job holds the only right
// to run it.
type Job struct {
	ref *jobRef
}

func newJob(e *Executor, t runner, s Serial) Job {
	return Job{ref: &jobRef{exec: e, task: t, serial: s}}
}

// Run transfers control into the task behind j and returns once the task
// has completed or suspended again.
//
// A Job must be run at most once. Running it again panics.
func (j Job) Run() {
	r := j.ref
	if r == nil {
		panic("await: run of zero Job")
	}
	if r.used.Add(1) != 1 {
		panic("await: job run twice")
	}
	v := r.value
	r.value = nil
	r.task.run(v)
}

// Serial returns the serial of the task behind j, or 0 for the zero Job.
func (j Job) Serial() Serial {
	if j.ref == nil {
		return 0
	}
	return j.ref.serial
}

// schedule binds v as the resume value of j and queues j on its executor.
// Safe to call from any goroutine.
func (j Job) schedule(v kont.Resumed) {
	r := j.ref
	if r == nil {
		panic("await: resume of zero Continuation")
	}
	r.value = v
	r.exec.enqueue(j)
}

// executor returns the executor that owns j.
func (j Job) executor() *Executor {
	return j.ref.exec
}
