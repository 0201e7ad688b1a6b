// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"sync"

	"code.hybscloud.com/kont"
)

// violations collects contract errors reported to an executor's
// violation handler. Safe for concurrent use.
type violations struct {
	mu   sync.Mutex
	errs []error
}

func (v *violations) handle(err error) {
	v.mu.Lock()
	v.errs = append(v.errs, err)
	v.mu.Unlock()
}

func (v *violations) list() []error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]error(nil), v.errs...)
}

// record appends the awaited value to *log once the task resumes.
func record[T any](log *[]T, m kont.Eff[T]) kont.Eff[T] {
	return kont.Map[kont.Resumed, T, T](m, func(v T) T {
		*log = append(*log, v)
		return v
	})
}
