// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo

// Direction selects which adjacency link a directional chain operation
// follows.
type Direction int

const (
	// Forward follows next links, toward downstream spill buffers.
	Forward Direction = iota
	// Backward follows prev links, toward upstream buffers.
	Backward
)

// Link attaches next as the downstream neighbor of f, and f as the upstream
// neighbor of next, forming (or extending) a doubly-linked chain.
//
// Existing links on either side are silently overwritten; detached tails are
// the caller's problem. No cycle detection is performed; a cyclic chain
// makes every chain operation loop forever.
func (f *FIFO) Link(next *FIFO) {
	f.next = next
	next.prev = f
}

// adjacent returns the neighbor in the given direction, or nil.
func (f *FIFO) adjacent(d Direction) *FIFO {
	if f == nil {
		return nil
	}
	switch d {
	case Forward:
		return f.next
	case Backward:
		return f.prev
	}
	return nil
}

// ChainPush pushes one byte into the first non-full buffer reachable from f
// through next links, f included. At most one instance is mutated.
//
// Returns ErrWouldBlock when every reachable buffer rejects the byte, or when
// f is nil.
func (f *FIFO) ChainPush(b byte) error {
	for cur := f; cur != nil; cur = cur.next {
		if cur.Push(b) == nil {
			return nil
		}
	}
	return ErrWouldBlock
}

// ChainPop pops from the first non-empty buffer reachable from f through
// next links, f included, so the oldest upstream data drains first.
//
// Returns (0, ErrWouldBlock) when every reachable buffer is empty, or when
// f is nil.
func (f *FIFO) ChainPop() (byte, error) {
	for cur := f; cur != nil; cur = cur.next {
		if b, err := cur.Pop(); err == nil {
			return b, nil
		}
	}
	return 0, ErrWouldBlock
}

// ChainClear clears every buffer reachable from f in the given direction,
// f included. No-op on a nil receiver.
func (f *FIFO) ChainClear(d Direction) {
	for cur := f; cur != nil; cur = cur.adjacent(d) {
		cur.Clear()
	}
}

// ChainSetFull marks every buffer reachable from f in the given direction as
// full, f included. No-op on a nil receiver.
func (f *FIFO) ChainSetFull(d Direction) {
	for cur := f; cur != nil; cur = cur.adjacent(d) {
		cur.SetFull()
	}
}

// ChainSize returns the summed capacity of every buffer reachable from f
// through next links, f included. The accumulator is widened so chains of
// maximum-capacity buffers cannot overflow it.
func (f *FIFO) ChainSize() uint32 {
	var total uint32
	for cur := f; cur != nil; cur = cur.next {
		total += uint32(cur.size)
	}
	return total
}

// ChainUsage returns the summed usage count of every buffer reachable from f
// through next links, f included. Widened accumulator, as ChainSize.
func (f *FIFO) ChainUsage() uint32 {
	var total uint32
	for cur := f; cur != nil; cur = cur.next {
		total += uint32(cur.used)
	}
	return total
}

// ChainEmpty reports whether every buffer reachable from f through next
// links, f included, is empty. Vacuously true on a nil receiver.
func (f *FIFO) ChainEmpty() bool {
	for cur := f; cur != nil; cur = cur.next {
		if !cur.IsEmpty() {
			return false
		}
	}
	return true
}

// ChainFull reports whether every buffer reachable from f through next
// links, f included, is full. Vacuously true on a nil receiver.
func (f *FIFO) ChainFull() bool {
	for cur := f; cur != nil; cur = cur.next {
		if !cur.IsFull() {
			return false
		}
	}
	return true
}
