// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"testing"

	"code.hybscloud.com/await"
	"code.hybscloud.com/kont"
)

func resumeNow(c await.Continuation[int]) { c.Resume(1) }

// BenchmarkResumeChecked measures one suspend/resume round-trip through a
// checked continuation.
func BenchmarkResumeChecked(b *testing.B) {
	e := await.NewExecutor()
	b.ReportAllocs()
	for b.Loop() {
		await.Spawn(e, await.WithContinuation(resumeNow))
		e.Drain()
	}
}

// BenchmarkResumeUnchecked measures the same round-trip without the guard.
func BenchmarkResumeUnchecked(b *testing.B) {
	e := await.NewExecutor()
	b.ReportAllocs()
	for b.Loop() {
		await.Spawn(e, await.WithUnsafeContinuation(resumeNow))
		e.Drain()
	}
}

// BenchmarkExprResumeUnchecked measures the round-trip with pooled Expr frames.
func BenchmarkExprResumeUnchecked(b *testing.B) {
	e := await.NewExecutor()
	b.ReportAllocs()
	for b.Loop() {
		await.SpawnExpr(e, await.ExprWithUnsafeContinuation(resumeNow))
		e.Drain()
	}
}

// BenchmarkLoop10 measures ten awaits inside one task.
func BenchmarkLoop10(b *testing.B) {
	e := await.NewExecutor()
	b.ReportAllocs()
	for b.Loop() {
		await.Spawn(e, await.Loop(0, func(i int) kont.Eff[kont.Either[int, int]] {
			return kont.Map[kont.Resumed, int, kont.Either[int, int]](
				await.WithUnsafeContinuation(resumeNow),
				func(v int) kont.Either[int, int] {
					if i+v == 10 {
						return kont.Right[int, int](10)
					}
					return kont.Left[int, int](i + v)
				},
			)
		}))
		e.Drain()
	}
}

// BenchmarkForeignResume measures a resume from another goroutine.
func BenchmarkForeignResume(b *testing.B) {
	skipRace(b)
	e := await.NewExecutor()
	b.ReportAllocs()
	for b.Loop() {
		await.Spawn(e, await.WithUnsafeContinuation(func(c await.Continuation[int]) {
			go c.Resume(1)
		}))
		e.Run()
	}
}
