// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cfifo provides a byte-oriented circular FIFO buffer with optional
// cascading, aimed at embedded and resource-constrained targets.
//
// A [FIFO] borrows a caller-supplied byte slice as its backing store and
// never allocates, frees or resizes it. Multiple FIFOs can be linked into a
// doubly-linked chain so that push, pop and status operations spill into the
// next buffer when the current one is full or empty.
//
// # Quick Start
//
// Hand-assembled over caller storage:
//
//	var f cfifo.FIFO
//	buf := make([]byte, 64)
//	f.Configure(buf, 64) // configured buffers start out full
//	f.Clear()            // drop the stale content, start empty
//
//	f.Push(0x41)
//	b, err := f.Pop()
//
// Or via the builder, which configures, links and clears in one expression:
//
//	head := cfifo.New(64).Spill(256).Build()
//
// # Basic Usage
//
// All operations are synchronous and non-blocking. Push and Pop signal
// "cannot proceed" with [ErrWouldBlock]:
//
//	if err := f.Push(b); cfifo.IsWouldBlock(err) {
//	    // Buffer full (or no storage configured) - spill or drop
//	}
//
//	b, err := f.Pop()
//	if cfifo.IsWouldBlock(err) {
//	    // Buffer empty - no data available
//	}
//
// # Cascading
//
// Link buffers to model overflow capacity. Writes spill downstream, reads
// drain the oldest upstream data first, and aggregate queries describe
// everything reachable forward of the starting buffer:
//
//	var a, b cfifo.FIFO
//	a.Configure(make([]byte, 16), 16)
//	b.Configure(make([]byte, 64), 64)
//	a.Clear()
//	b.Clear()
//	a.Link(&b)
//
//	a.ChainPush(0x11)      // lands in a; in b once a is full
//	v, err := a.ChainPop() // drains a before b
//	total := a.ChainSize() // 80
//
// ChainClear and ChainSetFull take an explicit [Direction], since those are
// administrative resets a caller may want to apply upstream or downstream of
// a given point. The other chain operations always walk forward.
//
// # Dummy-Byte Placeholders
//
// A FIFO configured with a nil store and a non-zero capacity stores nothing,
// but Configure's full-state contract gives it a drainable usage count. Pop
// then yields the configured dummy byte, once per counted slot:
//
//	var pad cfifo.FIFO
//	pad.SetDummyByte(0xFF)
//	pad.Configure(nil, 8) // full: eight dummy bytes to drain
//
// Linked downstream of real buffers, such placeholders emit fixed-length
// filler once the real data is exhausted - useful for framing and flash-page
// padding. Emptiness is governed purely by the usage count, never by the
// presence of storage.
//
// # Configure Starts Full
//
// Configure resets the indices and sets the usage count to the capacity, so
// a freshly configured buffer reads as full, not empty. A store that already
// holds valid bytes (DMA target, flash page, boot log) is thereby drainable
// without pushing byte by byte. Call Clear after Configure when the store
// holds nothing of value. SetFull restores the same state at any time
// without touching stored bytes.
//
// # Error Handling
//
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency. It is a control flow signal, not a failure:
//
//	cfifo.IsWouldBlock(err)  // true if buffer full/empty
//	cfifo.IsSemantic(err)    // true if control flow signal
//	cfifo.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Malformed usage is not validated and not recoverable: configuring a
// capacity larger than the real storage, or linking buffers into a cycle
// (every chain operation on a cyclic chain loops forever), are caller
// contract violations.
//
// # Thread Safety
//
// A bare FIFO performs no locking. Concurrent access to an instance, or to
// any two instances sharing a chain, requires caller-provided mutual
// exclusion around each public call - a cascading operation must be one
// atomic critical section, not a sequence of per-buffer sections.
//
// [Guard] wraps a FIFO with an injectable [sync.Locker] that does exactly
// that; [SpinLock] is a ready-made locker for short critical sections,
// built on [code.hybscloud.com/atomix] and [code.hybscloud.com/spin]:
//
//	q := cfifo.Guard(head, nil) // fresh SpinLock
//	q.ChainPush(0x41)           // traversal under the lock
//
// Buffers sharing a chain must share one Locker.
package cfifo
