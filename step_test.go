// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"testing"

	"code.hybscloud.com/await"
	"code.hybscloud.com/kont"
)

func TestPollRunsOneJobAtATime(t *testing.T) {
	e := await.NewExecutor()
	var saved await.Continuation[string]
	task := await.Spawn(e, await.WithContinuation(func(c await.Continuation[string]) { saved = c }))

	j, ok := e.Poll()
	if !ok {
		t.Fatal("Poll found no start job")
	}
	if j.Serial() != task.Serial() {
		t.Fatalf("job serial %d, task serial %d", j.Serial(), task.Serial())
	}
	j.Run()
	if task.Done() {
		t.Fatal("task finished before resume")
	}

	saved.Resume("ok")
	j, ok = e.Poll()
	if !ok {
		t.Fatal("Poll found no job after resume")
	}
	if j.Serial() != task.Serial() {
		t.Fatalf("resume job serial %d, task serial %d", j.Serial(), task.Serial())
	}
	if _, ok := e.Poll(); ok {
		t.Fatal("Poll returned a second job")
	}
	j.Run()
	if got, err := task.Result(); err != nil || got != "ok" {
		t.Fatalf("got (%q, %v), want (ok, nil)", got, err)
	}
}

func TestZeroJob(t *testing.T) {
	var j await.Job
	if j.Serial() != 0 {
		t.Fatalf("zero Job serial got %d, want 0", j.Serial())
	}
	defer func() {
		if r := recover(); r != "await: run of zero Job" {
			t.Fatalf("recover got %v, want run of zero Job", r)
		}
	}()
	j.Run()
}

func TestJobRunTwicePanics(t *testing.T) {
	e := await.NewExecutor()
	await.Spawn(e, kont.Pure(0))
	j, _ := e.Poll()
	j.Run()
	defer func() {
		if r := recover(); r != "await: job run twice" {
			t.Fatalf("recover got %v, want job run twice", r)
		}
	}()
	j.Run()
}

func TestAwaitOpVisibleToStepper(t *testing.T) {
	called := false
	_, susp := kont.StepExpr(await.ExprWithUnsafeContinuation(func(await.Continuation[int]) { called = true }))
	if susp == nil {
		t.Fatal("entry point did not suspend")
	}
	op, ok := susp.Op().(await.Await[int])
	if !ok {
		t.Fatalf("op got %T, want await.Await[int]", susp.Op())
	}
	if op.Checked() {
		t.Fatal("unsafe entry point produced a checked op")
	}
	susp.Discard()
	if called {
		t.Fatal("callback ran before the executor registered the suspension")
	}

	_, susp = kont.StepExpr(await.ExprWithThrowingContinuation(func(c await.ThrowingContinuation[int]) { c.Resume(0) }))
	if op, ok := susp.Op().(await.Await[int]); !ok || !op.Checked() {
		t.Fatalf("checked entry point op got %T", susp.Op())
	}
	susp.Discard()
}
