// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"time"

	"code.hybscloud.com/kont"
)

// Yield suspends the task and immediately queues it again behind every Job
// already queued, letting other tasks on the executor run first.
func Yield() kont.Eff[Void] {
	return WithUnsafeContinuation(ResumeVoid[Continuation[Void]])
}

// ExprYield is the Expr-world [Yield].
func ExprYield() kont.Expr[Void] {
	return ExprWithUnsafeContinuation(ResumeVoid[Continuation[Void]])
}

// Sleep suspends the task for at least d. The continuation is resumed from
// the timer's goroutine by time.AfterFunc.
func Sleep(d time.Duration) kont.Eff[Void] {
	return WithContinuation(func(c Continuation[Void]) {
		time.AfterFunc(d, func() { ResumeVoid(c) })
	})
}

// ExprSleep is the Expr-world [Sleep].
func ExprSleep(d time.Duration) kont.Expr[Void] {
	return ExprWithContinuation(func(c Continuation[Void]) {
		time.AfterFunc(d, func() { ResumeVoid(c) })
	})
}
