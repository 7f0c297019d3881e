// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Push: the buffer is full, or no backing store is configured (an
// unconfigured instance has capacity 0 and is therefore trivially full).
// For Pop: the buffer is empty. The two push causes are intentionally not
// distinguished by the return value.
//
// ErrWouldBlock is a control flow signal, not a failure. All operations are
// non-blocking; the caller decides whether to spill into another buffer,
// retry later, or drop the byte.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := f.ChainPush(b)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if cfifo.IsWouldBlock(err) {
//	        backoff.Wait() // every reachable buffer is full
//	        continue
//	    }
//	    return err // unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
