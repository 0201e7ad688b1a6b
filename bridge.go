// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world task body to Expr-world.
// Spawn reifies every body it is given; suspensions on [Await] survive
// the conversion as effect frames.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world task body to Cont-world, so it can be
// composed with kont.Bind alongside WithContinuation and friends.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
