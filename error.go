// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

var (
	// ErrResumedTwice reports a checked continuation resumed more than once.
	// Only the first resume reached the task.
	ErrResumedTwice = errors.New("await: continuation resumed more than once")

	// ErrNeverResumed reports a checked continuation that was reclaimed
	// without being resumed. Its task stays suspended forever.
	ErrNeverResumed = errors.New("await: continuation dropped without resume")

	// ErrNilThrow is raised at a suspension point resumed with Throw(nil).
	ErrNilThrow = errors.New("await: Throw with nil error")
)

// ContractError is a violation of the exactly-once resume contract detected
// by a checked continuation. Err is [ErrResumedTwice] or [ErrNeverResumed].
type ContractError struct {
	Err    error
	Serial Serial
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%v (task %d)", e.Err, e.Serial)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// errorDispatcher is the structural interface of kont's error operations
// (Throw, Catch) specialised to Go errors.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// dispatchError runs an error operation eagerly.
// Returns (resumeValue, nil) to continue, or (nil, err) if it threw.
func dispatchError(op errorDispatcher) (kont.Resumed, error) {
	var ctx kont.ErrorContext[error]
	v, _ := op.DispatchError(&ctx)
	if ctx.HasErr {
		if ctx.Err == nil {
			return nil, ErrNilThrow
		}
		return nil, ctx.Err
	}
	return v, nil
}

// raise turns the resume value of a throwing suspension back into control
// flow: Right continues with the value, Left throws.
func raise[T any](r kont.Either[error, T]) kont.Eff[T] {
	if err, ok := r.GetLeft(); ok {
		return kont.ThrowError[error, T](err)
	}
	v, _ := r.GetRight()
	return kont.Pure(v)
}

// right extracts the value of a non-throwing suspension.
func right[T any](r kont.Either[error, T]) T {
	v, _ := r.GetRight()
	return v
}
