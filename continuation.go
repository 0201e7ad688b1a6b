// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Void is the result type of suspensions that carry no value.
type Void = struct{}

// resumption is the shared core of both continuation types: the Job of the
// suspended task plus, for checked continuations, the guard.
type resumption struct {
	job   Job
	guard *guard
}

func newResumption(j Job, checked bool) resumption {
	r := resumption{job: j}
	if checked {
		r.guard = newGuard(j)
	}
	return r
}

func (r resumption) resume(v kont.Resumed) {
	if g := r.guard; g != nil && !g.acquire() {
		return
	}
	r.job.schedule(v)
}

// Continuation resumes one suspended task that cannot fail.
//
// Exactly one Resume must be called on a Continuation over the lifetime of
// the program, from any goroutine. Resume returns as soon as the task is
// queued; the task runs when its executor next polls it.
//
// A checked Continuation (from [WithContinuation]) reports a second resume
// and a Continuation dropped without resume as a [*ContractError]. An
// unchecked one (from [WithUnsafeContinuation]) does no bookkeeping; breaking
// the contract is undefined behavior.
//
// Resume is the complete operation set: there is no ResumeWith, since a
// suspension that cannot fail has no error to pass. Use
// [ThrowingContinuation] when the callback can fail.
type Continuation[T any] struct {
	r resumption
}

// Resume resumes the task as if the suspension point produced v.
func (c Continuation[T]) Resume(v T) {
	c.r.resume(kont.Right[error, T](v))
}

// Checked reports whether c enforces the exactly-once contract.
func (c Continuation[T]) Checked() bool {
	return c.r.guard != nil
}

// Serial returns the serial of the suspended task.
func (c Continuation[T]) Serial() Serial {
	return c.r.job.Serial()
}

// ThrowingContinuation resumes one suspended task that may fail.
//
// It carries the same exactly-once contract as [Continuation]: one call to
// Resume, Throw, ResumeWith or ResumeResult in total.
type ThrowingContinuation[T any] struct {
	r resumption
}

// Resume resumes the task as if the suspension point produced v.
func (c ThrowingContinuation[T]) Resume(v T) {
	c.r.resume(kont.Right[error, T](v))
}

// Throw resumes the task as if the suspension point raised err.
// A nil err raises [ErrNilThrow].
func (c ThrowingContinuation[T]) Throw(err error) {
	if err == nil {
		err = ErrNilThrow
	}
	c.r.resume(kont.Left[error, T](err))
}

// ResumeWith resumes with the Right value of r, or throws its Left error.
func (c ThrowingContinuation[T]) ResumeWith(r kont.Either[error, T]) {
	if err, ok := r.GetLeft(); ok {
		c.Throw(err)
		return
	}
	v, _ := r.GetRight()
	c.Resume(v)
}

// ResumeResult throws err if it is non-nil and resumes with v otherwise.
// Its method value fits completion callbacks of the form func(T, error).
func (c ThrowingContinuation[T]) ResumeResult(v T, err error) {
	if err != nil {
		c.Throw(err)
		return
	}
	c.Resume(v)
}

// Checked reports whether c enforces the exactly-once contract.
func (c ThrowingContinuation[T]) Checked() bool {
	return c.r.guard != nil
}

// Serial returns the serial of the suspended task.
func (c ThrowingContinuation[T]) Serial() Serial {
	return c.r.job.Serial()
}

// ResumeVoid resumes a continuation whose result type is [Void].
// It is the same as c.Resume(Void{}).
func ResumeVoid[C interface{ Resume(Void) }](c C) {
	c.Resume(Void{})
}
