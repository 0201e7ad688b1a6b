// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Task is a cooperative computation spawned on an [Executor].
//
// A task runs only inside the executor's Poll/Drain/Run caller. When it
// performs an [Await] it is parked as a kont suspension: no goroutine and
// no executor slot is held until its continuation is resumed.
type Task[R any] struct {
	exec    *Executor
	serial  Serial
	start   func() kont.Expr[R]
	susp    *kont.Suspension[kont.Erased]
	catches []catchFrame
	result  kont.Either[error, R]
	done    atomix.Uint32
}

// catchFrame is an active [Catch] of a task: the suspension waiting for the
// catch result, and the handler, cleared once it has started.
type catchFrame struct {
	outer   *kont.Suspension[kont.Erased]
	handler func(error) kont.Expr[kont.Erased]
}

// Spawn queues a Cont-world task body on e and returns its handle.
// The body is reified and first stepped by the executor, never inline.
// Safe for concurrent use.
func Spawn[R any](e *Executor, body kont.Eff[R]) *Task[R] {
	return spawn(e, func() kont.Expr[R] { return Reify(body) })
}

// SpawnExpr queues an Expr-world task body on e and returns its handle.
// The body is first stepped by the executor, never inline.
// Safe for concurrent use.
func SpawnExpr[R any](e *Executor, body kont.Expr[R]) *Task[R] {
	return spawn(e, func() kont.Expr[R] { return body })
}

func spawn[R any](e *Executor, start func() kont.Expr[R]) *Task[R] {
	t := &Task[R]{exec: e, serial: nextSerial(), start: start}
	e.live.Add(1)
	e.enqueue(newJob(e, t, t.serial))
	return t
}

// Serial returns the serial assigned to t.
func (t *Task[R]) Serial() Serial {
	return t.serial
}

// Done reports whether t has finished, with a value or an error.
// Safe for concurrent use.
func (t *Task[R]) Done() bool {
	return t.done.Load() != 0
}

// Result returns the outcome of t.
// Returns iox.ErrWouldBlock while t has not finished, the raised error if
// t finished by throwing, and the value otherwise.
// Safe for concurrent use.
func (t *Task[R]) Result() (R, error) {
	var zero R
	if t.done.Load() == 0 {
		return zero, iox.ErrWouldBlock
	}
	if err, ok := t.result.GetLeft(); ok {
		return zero, err
	}
	v, _ := t.result.GetRight()
	return v, nil
}

// run implements runner. The first call starts the body; every later call
// resumes the pending suspension with v.
func (t *Task[R]) run(v kont.Resumed) {
	var (
		result kont.Erased
		susp   *kont.Suspension[kont.Erased]
	)
	if s := t.susp; s != nil {
		t.susp = nil
		result, susp = s.Resume(v)
	} else {
		body := t.start()
		t.start = nil
		result, susp = kont.StepExpr(kont.ExprMap(body, boxRight[R]))
	}
	t.settle(result, susp)
}

// settle steps t until it parks on an Await or finishes.
//
// Await parks the task. A Catch pushes a frame and steps its body as a
// nested level; a finished level resumes the suspension of the frame below
// it. kont error operations are dispatched eagerly, and a throw unwinds to
// the innermost pending handler, or finishes the task with Left.
// A kont.CatchError body runs under kont's error-only handler, so it must
// not await; use Catch for that.
func (t *Task[R]) settle(result kont.Erased, susp *kont.Suspension[kont.Erased]) {
	for {
		if susp == nil {
			n := len(t.catches)
			if n == 0 {
				t.finish(result.(kont.Either[error, R]))
				return
			}
			outer := t.catches[n-1].outer
			t.catches[n-1] = catchFrame{}
			t.catches = t.catches[:n-1]
			result, susp = outer.Resume(result)
			continue
		}
		switch op := susp.Op().(type) {
		case suspender:
			t.susp = susp
			op.suspend(newJob(t.exec, t, t.serial))
			return
		case catcher:
			body, h := op.enter()
			t.catches = append(t.catches, catchFrame{outer: susp, handler: h})
			result, susp = kont.StepExpr(body)
		case errorDispatcher:
			v, err := dispatchError(op)
			if err == nil {
				result, susp = susp.Resume(v)
				continue
			}
			susp.Discard()
			var caught bool
			if result, susp, caught = t.unwind(err); !caught {
				t.finish(kont.Left[error, R](err))
				return
			}
		default:
			panic("await: unhandled effect in task")
		}
	}
}

// unwind hands err to the innermost catch frame whose handler has not run
// and starts that handler. Frames passed over are discarded. Reports false
// if no frame catches err.
func (t *Task[R]) unwind(err error) (kont.Erased, *kont.Suspension[kont.Erased], bool) {
	for n := len(t.catches); n > 0; n-- {
		f := &t.catches[n-1]
		if h := f.handler; h != nil {
			f.handler = nil
			result, susp := kont.StepExpr(h(err))
			return result, susp, true
		}
		f.outer.Discard()
		t.catches[n-1] = catchFrame{}
		t.catches = t.catches[:n-1]
	}
	return nil, nil, false
}

func (t *Task[R]) finish(result kont.Either[error, R]) {
	t.result = result
	t.catches = nil
	t.done.Add(1)
	t.exec.live.Add(^uint32(0))
}
