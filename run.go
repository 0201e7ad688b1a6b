// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/iox"
)

// Run drains the run queue until every task spawned on e has finished.
// While all live tasks are suspended waiting for external resumes, Run
// waits with adaptive backoff (iox.Backoff) instead of blocking a
// goroutine on a channel.
//
// A task whose continuation is never resumed keeps Run waiting forever.
// Run must not be called concurrently with Poll or Drain.
func (e *Executor) Run() {
	var bo iox.Backoff
	for {
		if e.Drain() != 0 {
			bo.Reset()
			continue
		}
		if e.live.Load() == 0 {
			return
		}
		bo.Wait()
	}
}
