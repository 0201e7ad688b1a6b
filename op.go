// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// suspender is the structural interface for suspension operations.
// The executor calls suspend with the Job of the suspended task after the
// task's suspension has been stored, so suspend may resume synchronously.
type suspender interface {
	suspend(j Job)
}

// Await is the effect operation performed at a suspension point.
// Perform(Await[T]{...}) suspends the task until the continuation built
// for it is resumed; the task then continues with Right(v) or Left(err).
//
// Await values are built by the With*Continuation entry points.
// A stepper can recognise one through [kont.Suspension.Op].
type Await[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	checked  bool
	register func(Job, bool)
}

// Checked reports whether the continuation for this suspension enforces
// the exactly-once resume contract at run time.
func (o Await[T]) Checked() bool {
	return o.checked
}

func (o Await[T]) suspend(j Job) {
	o.register(j, o.checked)
}

func awaitOp[T any](f func(Continuation[T]), checked bool) Await[T] {
	return Await[T]{
		checked: checked,
		register: func(j Job, checked bool) {
			f(Continuation[T]{r: newResumption(j, checked)})
		},
	}
}

func awaitThrowingOp[T any](f func(ThrowingContinuation[T]), checked bool) Await[T] {
	return Await[T]{
		checked: checked,
		register: func(j Job, checked bool) {
			f(ThrowingContinuation[T]{r: newResumption(j, checked)})
		},
	}
}
