// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// WithContinuation suspends the task and calls f with a checked
// [Continuation] for the suspension point. The task continues with the
// value passed to Resume.
//
// f runs synchronously on the executor and must not block: it hands the
// continuation to some callback mechanism and returns. The continuation
// may be resumed before f returns, later, or from another goroutine.
func WithContinuation[T any](f func(Continuation[T])) kont.Eff[T] {
	return kont.Map[kont.Resumed, kont.Either[error, T], T](kont.Perform(awaitOp(f, true)), right[T])
}

// WithUnsafeContinuation is [WithContinuation] without run-time enforcement
// of the exactly-once contract. Resuming twice, or never, is undefined.
func WithUnsafeContinuation[T any](f func(Continuation[T])) kont.Eff[T] {
	return kont.Map[kont.Resumed, kont.Either[error, T], T](kont.Perform(awaitOp(f, false)), right[T])
}

// WithThrowingContinuation suspends the task and calls f with a checked
// [ThrowingContinuation]. The task continues with the value passed to
// Resume, or raises the error passed to Throw as a kont error effect.
//
// f has the same obligations as in [WithContinuation].
func WithThrowingContinuation[T any](f func(ThrowingContinuation[T])) kont.Eff[T] {
	return kont.Bind(kont.Perform(awaitThrowingOp(f, true)), raise[T])
}

// WithUnsafeThrowingContinuation is [WithThrowingContinuation] without
// run-time enforcement of the exactly-once contract.
func WithUnsafeThrowingContinuation[T any](f func(ThrowingContinuation[T])) kont.Eff[T] {
	return kont.Bind(kont.Perform(awaitThrowingOp(f, false)), raise[T])
}
