// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cfifo

// RaceEnabled is true when the race detector is active.
// Used by tests to skip SpinLock contention tests: the detector cannot see
// the happens-before edges atomix operations establish and reports false
// positives on the data the lock protects.
const RaceEnabled = true
