// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing task identifier.
// Each spawned task takes the next serial; its Jobs and continuations
// report the same value.
type Serial = uint32

// serials is the global monotonic counter for task serials.
var serials atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return serials.Add(1)
}
