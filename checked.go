// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"runtime"

	"code.hybscloud.com/atomix"
)

// guard enforces exactly-once resumption for a checked continuation.
// Every copy of the continuation shares one guard. The guard allocation is
// what the runtime tracks for the missing-resume report, so guardState
// must never point back at it.
type guard struct {
	state *guardState
}

type guardState struct {
	resumed atomix.Uint32
	serial  Serial
	report  func(error)
}

func newGuard(j Job) *guard {
	st := &guardState{serial: j.Serial(), report: j.executor().report}
	g := &guard{state: st}
	runtime.AddCleanup(g, reportUnresumed, st)
	return g
}

// reportUnresumed runs once g is unreachable.
func reportUnresumed(st *guardState) {
	if st.resumed.Load() == 0 {
		st.report(&ContractError{Err: ErrNeverResumed, Serial: st.serial})
	}
}

// acquire claims the single resume. Exactly one caller ever wins; every
// other caller, concurrent or later, is reported and must not reschedule.
func (g *guard) acquire() bool {
	st := g.state
	if st.resumed.Add(1) != 1 {
		st.report(&ContractError{Err: ErrResumedTwice, Serial: st.serial})
		return false
	}
	return true
}
