// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"testing"

	"code.hybscloud.com/await"
	"code.hybscloud.com/kont"
)

func TestSerialMonotonic(t *testing.T) {
	e := await.NewExecutor()
	t1 := await.Spawn(e, kont.Pure(1))
	t2 := await.Spawn(e, kont.Pure(2))
	t3 := await.Spawn(await.NewExecutor(), kont.Pure(3))

	if t1.Serial() >= t2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", t1.Serial(), t2.Serial())
	}
	if t2.Serial() >= t3.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", t2.Serial(), t3.Serial())
	}
	e.Drain()
}

func TestContinuationSerialMatchesTask(t *testing.T) {
	e := await.NewExecutor()
	var first, second await.Serial
	task := await.Spawn(e, kont.Then(
		await.WithContinuation(func(c await.Continuation[int]) {
			first = c.Serial()
			c.Resume(0)
		}),
		await.WithThrowingContinuation(func(c await.ThrowingContinuation[int]) {
			second = c.Serial()
			c.Resume(0)
		}),
	))
	e.Drain()
	if first != task.Serial() || second != task.Serial() {
		t.Fatalf("continuation serials %d, %d; task serial %d", first, second, task.Serial())
	}
}
