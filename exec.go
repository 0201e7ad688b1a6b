// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world task body to completion on a private executor and
// returns its outcome. The calling goroutine acts as the executor: it runs
// every step of the task and waits with adaptive backoff (iox.Backoff)
// while the task is suspended, without spawning goroutines or creating
// channels.
//
// Exec returns only after every continuation of the task has been resumed.
func Exec[R any](body kont.Eff[R], opts ...Option) (R, error) {
	return ExecExpr(Reify(body), opts...)
}

// ExecExpr is [Exec] for an Expr-world task body.
func ExecExpr[R any](body kont.Expr[R], opts ...Option) (R, error) {
	e := NewExecutor(opts...)
	t := SpawnExpr(e, body)
	e.Run()
	return t.Result()
}
