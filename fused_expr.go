// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Expr-world entry points build their frame chains from kont's frame
// pools. The resulting Expr is single-use: spawn it once.

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func exprRight[T any](current kont.Erased) kont.Expr[kont.Erased] {
	v := right(current.(kont.Either[error, T]))
	return kont.Expr[kont.Erased]{Value: kont.Erased(v), Frame: exprReturnFrame}
}

func exprRaise[T any](current kont.Erased) kont.Expr[kont.Erased] {
	r := current.(kont.Either[error, T])
	if err, ok := r.GetLeft(); ok {
		e := kont.ExprThrowError[error, T](err)
		return kont.Expr[kont.Erased]{Value: kont.Erased(e.Value), Frame: e.Frame}
	}
	v, _ := r.GetRight()
	return kont.Expr[kont.Erased]{Value: kont.Erased(v), Frame: exprReturnFrame}
}

// exprAwait fuses ExprPerform(op) + ExprBind(then) into one pooled
// effect frame and one pooled bind frame.
func exprAwait[T any](op Await[T], then func(kont.Erased) kont.Expr[kont.Erased]) kont.Expr[T] {
	bf := kont.AcquireBindFrame()
	bf.F = then
	bf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[T](ef)
}

// ExprWithContinuation is the Expr-world [WithContinuation].
func ExprWithContinuation[T any](f func(Continuation[T])) kont.Expr[T] {
	return exprAwait(awaitOp(f, true), exprRight[T])
}

// ExprWithUnsafeContinuation is the Expr-world [WithUnsafeContinuation].
func ExprWithUnsafeContinuation[T any](f func(Continuation[T])) kont.Expr[T] {
	return exprAwait(awaitOp(f, false), exprRight[T])
}

// ExprWithThrowingContinuation is the Expr-world [WithThrowingContinuation].
func ExprWithThrowingContinuation[T any](f func(ThrowingContinuation[T])) kont.Expr[T] {
	return exprAwait(awaitThrowingOp(f, true), exprRaise[T])
}

// ExprWithUnsafeThrowingContinuation is the Expr-world
// [WithUnsafeThrowingContinuation].
func ExprWithUnsafeThrowingContinuation[T any](f func(ThrowingContinuation[T])) kont.Expr[T] {
	return exprAwait(awaitThrowingOp(f, false), exprRaise[T])
}
