// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package await bridges cooperative tasks built on [code.hybscloud.com/kont]
// and callback-driven code (timers, I/O completions, delegate callbacks).
//
// A task suspends at a bridging entry point, hands a one-shot continuation
// to a callback, and resumes with whatever value or error the continuation
// is later resumed with, from any goroutine.
//
// # Architecture
//
//   - Tasks: kont computations ([Spawn], [SpawnExpr]) stepped by an [Executor] one effect at a time.
//   - Suspension: the [Await] effect parks a task as a kont suspension; no goroutine is held while it waits.
//   - Handles: every suspension gets a fresh [Job], the one-shot schedulable unit the continuation wraps.
//   - Transport: Jobs queue on a bounded lock-free SPSC ring via [code.hybscloud.com/lfq], spilling to an overflow list when full.
//   - Non-blocking: [Task.Result] returns [code.hybscloud.com/iox.ErrWouldBlock] while a task is pending.
//
// # API Topologies
//
//   - Entry points: [WithContinuation], [WithThrowingContinuation] (checked) and [WithUnsafeContinuation], [WithUnsafeThrowingContinuation] (unchecked).
//   - Expr-world: [ExprWithContinuation], [ExprWithThrowingContinuation] and their unsafe variants.
//   - Resumption: [Continuation.Resume], [ThrowingContinuation.Throw], [ThrowingContinuation.ResumeWith], [ThrowingContinuation.ResumeResult], [ResumeVoid].
//   - Recovery: [Catch], [ExprCatch], [Try], [ExprTry] handle errors raised at suspension points, including across further suspensions.
//   - Utilities: [Yield], [Sleep], [Loop], [ExprLoop], [Exec], [ExecExpr].
//
// # Exactly-Once Contract
//
// Each continuation must be resumed exactly once. Checked continuations
// enforce it: the first resume wins atomically, and a second resume or a
// continuation reclaimed without resume is delivered as a [*ContractError]
// to the executor's violation handler, which panics unless replaced with
// [WithViolationHandler]. Unchecked continuations skip the bookkeeping;
// violating the contract is undefined behavior.
//
// # Integration
//
//   - Blocking: [Executor.Run] and [Exec] drain the queue and wait past idle periods using adaptive backoff.
//   - Stepping: [Executor.Poll] and [Executor.Drain] run queued Jobs on demand, and [WithWake] signals new work, making it easy to drive from an existing event loop.
//
// # Example
//
//	n, err := await.Exec(await.WithThrowingContinuation(func(c await.ThrowingContinuation[int]) {
//		go func() { c.ResumeResult(strconv.Atoi("42")) }()
//	}))
package await
