// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo_test

import (
	"errors"
	"testing"

	"github.com/PurriKissa/m-cfifo"
)

// twoLinked returns two empty single-byte buffers linked a→b.
func twoLinked(t *testing.T) (*cfifo.FIFO, *cfifo.FIFO) {
	t.Helper()
	var a, b cfifo.FIFO
	a.Configure(make([]byte, 1), 1)
	b.Configure(make([]byte, 1), 1)
	a.Clear()
	b.Clear()
	a.Link(&b)
	return &a, &b
}

// =============================================================================
// Cascading Push / Pop
// =============================================================================

// TestChainPushSpill tests that pushes land upstream first and spill
// downstream once the upstream buffer is full.
func TestChainPushSpill(t *testing.T) {
	a, b := twoLinked(t)

	if err := a.ChainPush(0x11); err != nil {
		t.Fatalf("ChainPush(0x11): %v", err)
	}
	if a.Usage() != 1 || b.Usage() != 0 {
		t.Fatalf("after first push: usage a=%d b=%d, want 1 0", a.Usage(), b.Usage())
	}

	if err := a.ChainPush(0x22); err != nil {
		t.Fatalf("ChainPush(0x22): %v", err)
	}
	if a.Usage() != 1 || b.Usage() != 1 {
		t.Fatalf("after spill push: usage a=%d b=%d, want 1 1", a.Usage(), b.Usage())
	}

	if err := a.ChainPush(0x33); !errors.Is(err, cfifo.ErrWouldBlock) {
		t.Fatalf("ChainPush on full chain: got %v, want ErrWouldBlock", err)
	}
}

// TestChainPopOrder tests that pops drain the upstream buffer before
// touching downstream data.
func TestChainPopOrder(t *testing.T) {
	a, b := twoLinked(t)
	a.ChainPush(0x11) // lands in a
	a.ChainPush(0x22) // spills into b

	v, err := a.ChainPop()
	if err != nil {
		t.Fatalf("ChainPop: %v", err)
	}
	if v != 0x11 {
		t.Fatalf("ChainPop: got %#x, want 0x11", v)
	}
	if a.Usage() != 0 || b.Usage() != 1 {
		t.Fatalf("after pop: usage a=%d b=%d, want 0 1", a.Usage(), b.Usage())
	}

	v, err = a.ChainPop()
	if err != nil {
		t.Fatalf("ChainPop: %v", err)
	}
	if v != 0x22 {
		t.Fatalf("ChainPop: got %#x, want 0x22", v)
	}

	if _, err := a.ChainPop(); !errors.Is(err, cfifo.ErrWouldBlock) {
		t.Fatalf("ChainPop on empty chain: got %v, want ErrWouldBlock", err)
	}
}

// TestChainPushSingleMutation tests that a cascading push mutates at most
// one instance even when upstream rejections occur.
func TestChainPushSingleMutation(t *testing.T) {
	a, b := twoLinked(t)
	a.ChainPush(0x01) // a full

	before := a.Usage()
	if err := a.ChainPush(0x02); err != nil {
		t.Fatalf("ChainPush: %v", err)
	}
	if a.Usage() != before {
		t.Fatalf("upstream usage changed: got %d, want %d", a.Usage(), before)
	}
	if b.Usage() != 1 {
		t.Fatalf("downstream usage: got %d, want 1", b.Usage())
	}
}

// =============================================================================
// Aggregates
// =============================================================================

// TestChainAggregates tests summed size/usage and the all-empty/all-full
// conjunctions across a three-buffer chain.
func TestChainAggregates(t *testing.T) {
	var a, b, c cfifo.FIFO
	a.Configure(make([]byte, 2), 2)
	b.Configure(make([]byte, 3), 3)
	c.Configure(nil, 4) // dummy placeholder
	a.Clear()
	b.Clear()
	c.Clear()
	a.Link(&b)
	b.Link(&c)

	if got := a.ChainSize(); got != 9 {
		t.Fatalf("ChainSize: got %d, want 9", got)
	}
	if got := a.ChainUsage(); got != 0 {
		t.Fatalf("ChainUsage: got %d, want 0", got)
	}
	if !a.ChainEmpty() {
		t.Fatal("ChainEmpty: got false, want true")
	}
	if a.ChainFull() {
		t.Fatal("ChainFull: got true, want false")
	}

	a.ChainPush(0x01)
	if a.ChainEmpty() {
		t.Fatal("ChainEmpty after push: got true, want false")
	}
	if got := a.ChainUsage(); got != 1 {
		t.Fatalf("ChainUsage after push: got %d, want 1", got)
	}

	// Aggregates start at the given buffer, not at the chain head.
	if got := b.ChainSize(); got != 7 {
		t.Fatalf("ChainSize from b: got %d, want 7", got)
	}
	if !b.ChainEmpty() {
		t.Fatal("ChainEmpty from b: got false, want true")
	}

	a.ChainSetFull(cfifo.Forward)
	if !a.ChainFull() {
		t.Fatal("ChainFull after ChainSetFull: got false, want true")
	}
	if got := a.ChainUsage(); got != 9 {
		t.Fatalf("ChainUsage after ChainSetFull: got %d, want 9", got)
	}
}

// TestNilStart tests the vacuous results for an absent starting buffer.
func TestNilStart(t *testing.T) {
	var f *cfifo.FIFO

	if err := f.ChainPush(0x01); !errors.Is(err, cfifo.ErrWouldBlock) {
		t.Fatalf("ChainPush: got %v, want ErrWouldBlock", err)
	}
	if _, err := f.ChainPop(); !errors.Is(err, cfifo.ErrWouldBlock) {
		t.Fatalf("ChainPop: got %v, want ErrWouldBlock", err)
	}
	if got := f.ChainSize(); got != 0 {
		t.Fatalf("ChainSize: got %d, want 0", got)
	}
	if got := f.ChainUsage(); got != 0 {
		t.Fatalf("ChainUsage: got %d, want 0", got)
	}
	if !f.ChainEmpty() {
		t.Fatal("ChainEmpty: got false, want true")
	}
	if !f.ChainFull() {
		t.Fatal("ChainFull: got false, want true")
	}

	// Directional resets are no-ops, not panics.
	f.ChainClear(cfifo.Forward)
	f.ChainSetFull(cfifo.Backward)
}

// =============================================================================
// Directional Resets
// =============================================================================

// threeLinked returns three full two-byte buffers linked a→b→c.
func threeLinked(t *testing.T) (*cfifo.FIFO, *cfifo.FIFO, *cfifo.FIFO) {
	t.Helper()
	var a, b, c cfifo.FIFO
	a.Configure(make([]byte, 2), 2)
	b.Configure(make([]byte, 2), 2)
	c.Configure(make([]byte, 2), 2)
	a.Link(&b)
	b.Link(&c)
	return &a, &b, &c
}

// TestChainClearForward tests clearing from the middle toward downstream.
func TestChainClearForward(t *testing.T) {
	a, b, c := threeLinked(t)

	b.ChainClear(cfifo.Forward)

	if a.Usage() != 2 {
		t.Fatalf("upstream usage: got %d, want 2", a.Usage())
	}
	if b.Usage() != 0 || c.Usage() != 0 {
		t.Fatalf("cleared usage: b=%d c=%d, want 0 0", b.Usage(), c.Usage())
	}
}

// TestChainClearBackward tests clearing from the middle toward upstream.
func TestChainClearBackward(t *testing.T) {
	a, b, c := threeLinked(t)

	b.ChainClear(cfifo.Backward)

	if a.Usage() != 0 || b.Usage() != 0 {
		t.Fatalf("cleared usage: a=%d b=%d, want 0 0", a.Usage(), b.Usage())
	}
	if c.Usage() != 2 {
		t.Fatalf("downstream usage: got %d, want 2", c.Usage())
	}
}

// TestChainSetFullDirectional tests the directional full reset.
func TestChainSetFullDirectional(t *testing.T) {
	a, b, c := threeLinked(t)
	a.ChainClear(cfifo.Forward)

	b.ChainSetFull(cfifo.Backward)

	if a.Usage() != 2 || b.Usage() != 2 {
		t.Fatalf("set-full usage: a=%d b=%d, want 2 2", a.Usage(), b.Usage())
	}
	if c.Usage() != 0 {
		t.Fatalf("downstream usage: got %d, want 0", c.Usage())
	}
}

// =============================================================================
// Link Semantics
// =============================================================================

// TestLinkOverwrite tests that re-linking silently replaces prior links.
func TestLinkOverwrite(t *testing.T) {
	var a, b, c cfifo.FIFO
	a.Configure(make([]byte, 1), 1)
	b.Configure(make([]byte, 1), 1)
	c.Configure(make([]byte, 1), 1)

	a.Link(&b)
	a.Link(&c) // b is orphaned

	if got := a.ChainSize(); got != 2 {
		t.Fatalf("ChainSize after relink: got %d, want 2", got)
	}

	a.ChainClear(cfifo.Forward)
	if b.Usage() != 1 {
		t.Fatalf("orphan usage: got %d, want 1 (must be untouched)", b.Usage())
	}
	if c.Usage() != 0 {
		t.Fatalf("linked usage: got %d, want 0", c.Usage())
	}
}

// TestChainWithDummyTail tests real data draining ahead of a dummy
// placeholder tail.
func TestChainWithDummyTail(t *testing.T) {
	var data, pad cfifo.FIFO
	data.Configure(make([]byte, 2), 2)
	data.Clear()
	pad.SetDummyByte(0xFF)
	pad.Configure(nil, 2) // full of dummies
	data.Link(&pad)

	data.ChainPush(0x01)
	data.ChainPush(0x02)

	want := []byte{0x01, 0x02, 0xFF, 0xFF}
	for i, w := range want {
		b, err := data.ChainPop()
		if err != nil {
			t.Fatalf("ChainPop(%d): %v", i, err)
		}
		if b != w {
			t.Fatalf("ChainPop(%d): got %#x, want %#x", i, b, w)
		}
	}
	if _, err := data.ChainPop(); !errors.Is(err, cfifo.ErrWouldBlock) {
		t.Fatalf("ChainPop on drained chain: got %v, want ErrWouldBlock", err)
	}
}
