// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// catcher is the structural interface for task-level catch operations.
// The executor steps the body as a nested level of the task, so the body
// may suspend on [Await] like any other task code.
type catcher interface {
	enter() (body kont.Expr[kont.Erased], handler func(error) kont.Expr[kont.Erased])
}

// catchOp is the effect operation behind Catch and ExprCatch.
// The outer suspension is resumed with the boxed Right result of the body,
// or of the handler if the body threw.
type catchOp[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	body    func() kont.Expr[kont.Erased]
	handler func(error) kont.Expr[kont.Erased]
}

func (o catchOp[T]) enter() (kont.Expr[kont.Erased], func(error) kont.Expr[kont.Erased]) {
	return o.body(), o.handler
}

// boxRight is the completion value of every level a task steps.
// Boxing in Either keeps the erased value non-nil for interface T.
func boxRight[T any](v T) kont.Erased {
	return kont.Right[error, T](v)
}

// Catch runs body inside the task and, if it raises an error, continues
// with h(err) instead. Errors thrown by h propagate to the enclosing Catch,
// or finish the task.
//
// Unlike kont.CatchError, both body and h may suspend on the
// With*Continuation entry points: the catch frame survives suspension and
// resumption from any goroutine.
func Catch[T any](body kont.Eff[T], h func(error) kont.Eff[T]) kont.Eff[T] {
	op := catchOp[T]{
		body: func() kont.Expr[kont.Erased] {
			return kont.ExprMap(Reify(body), boxRight[T])
		},
		handler: func(err error) kont.Expr[kont.Erased] {
			return kont.ExprMap(Reify(h(err)), boxRight[T])
		},
	}
	return kont.Map[kont.Resumed, kont.Either[error, T], T](kont.Perform(op), right[T])
}

// ExprCatch is the Expr-world [Catch]. body is single-use.
func ExprCatch[T any](body kont.Expr[T], h func(error) kont.Expr[T]) kont.Expr[T] {
	op := catchOp[T]{
		body: func() kont.Expr[kont.Erased] {
			return kont.ExprMap(body, boxRight[T])
		},
		handler: func(err error) kont.Expr[kont.Erased] {
			return kont.ExprMap(h(err), boxRight[T])
		},
	}
	return kont.ExprMap(kont.ExprPerform(op), right[T])
}

// Try runs body and returns its outcome as a value: Right on success,
// Left with the raised error otherwise. body may suspend.
func Try[T any](body kont.Eff[T]) kont.Eff[kont.Either[error, T]] {
	return Catch(kont.Map[kont.Resumed, T, kont.Either[error, T]](body, kont.Right[error, T]),
		func(err error) kont.Eff[kont.Either[error, T]] {
			return kont.Pure(kont.Left[error, T](err))
		})
}

// ExprTry is the Expr-world [Try].
func ExprTry[T any](body kont.Expr[T]) kont.Expr[kont.Either[error, T]] {
	return ExprCatch(kont.ExprMap(body, kont.Right[error, T]),
		func(err error) kont.Expr[kont.Either[error, T]] {
			return kont.ExprReturn(kont.Left[error, T](err))
		})
}
