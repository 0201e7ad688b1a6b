// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive task body (Cont-world), typically one that awaits
// a callback per round.
// step returns Left(nextState) to go another round or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	var next func(kont.Either[S, A]) kont.Eff[A]
	next = func(e kont.Either[S, A]) kont.Eff[A] {
		if s, ok := e.GetLeft(); ok {
			return kont.Bind(step(s), next)
		}
		a, _ := e.GetRight()
		return kont.Pure(a)
	}
	return kont.Bind(step(initial), next)
}

// ExprLoop runs a recursive task body (Expr-world).
// step returns Left(nextState) to go another round or Right(result) to finish.
// Each round's Expr is built lazily, after the previous round resumed.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	return kont.ExprBind(step(initial), func(e kont.Either[S, A]) kont.Expr[A] {
		if s, ok := e.GetLeft(); ok {
			return ExprLoop(s, step)
		}
		a, _ := e.GetRight()
		return kont.ExprReturn(a)
	})
}
