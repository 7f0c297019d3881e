// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo

// FIFO is a byte-oriented circular buffer over caller-supplied storage.
//
// A FIFO never allocates, frees or resizes its backing store; it borrows the
// slice handed to Configure for as long as it stays configured. All counters
// are 16-bit, bounding the capacity to 65535 bytes per instance.
//
// The zero value is an unconfigured FIFO with capacity 0 and dummy byte 0,
// ready for Configure or Link. Use Init to return a used instance to that
// state (Init additionally severs chain links).
//
// A FIFO without a backing store operates in dummy-byte mode: Push always
// fails, while Pop yields the configured dummy byte for as long as the usage
// count permits. Combined with Configure's full-state contract this makes
// storage-less instances usable as fixed-length placeholders in a chain.
//
// FIFO performs no internal locking. See Guarded for the injectable
// mutual-exclusion wrapper.
type FIFO struct {
	prev *FIFO
	next *FIFO

	buffer []byte
	size   uint16
	used   uint16
	rd     uint16
	wr     uint16

	dummy byte
}

// Init resets the FIFO to its default unconfigured state: no chain links,
// dummy byte 0, no backing store, capacity 0. Idempotent.
func (f *FIFO) Init() {
	f.prev = nil
	f.next = nil
	f.dummy = 0
	f.Configure(nil, 0)
}

// Configure assigns a backing store and capacity.
//
// A nil buf enables dummy-byte mode; size may still be non-zero to give the
// instance a logical length. As a side effect the FIFO enters the full state
// (usage count = size, indices reset), so a store that already holds valid
// data is immediately drainable without pushing byte by byte. Call Clear
// afterwards for an empty buffer.
//
// A size inconsistent with len(buf) is not validated; pushing past the real
// storage length is a caller contract violation.
func (f *FIFO) Configure(buf []byte, size uint16) {
	f.buffer = buf
	f.size = size
	f.SetFull()
}

// SetDummyByte sets the byte Pop yields when no backing store is configured.
func (f *FIFO) SetDummyByte(v byte) {
	f.dummy = v
}

// Push appends one byte.
// Returns ErrWouldBlock if the FIFO is full or has no backing store.
func (f *FIFO) Push(b byte) error {
	if f.buffer == nil {
		return ErrWouldBlock
	}
	if f.used >= f.size {
		return ErrWouldBlock
	}

	f.buffer[f.wr] = b
	f.wr = (f.wr + 1) % f.size
	f.used++
	return nil
}

// Pop removes and returns the oldest byte.
// Returns (0, ErrWouldBlock) if the FIFO is empty.
//
// In dummy-byte mode the dummy byte is yielded and no index moves; only the
// usage count decrements. Emptiness is governed purely by the usage count,
// never by the presence of storage.
func (f *FIFO) Pop() (byte, error) {
	if f.used == 0 {
		return 0, ErrWouldBlock
	}

	var b byte
	if f.buffer == nil {
		b = f.dummy
	} else {
		b = f.buffer[f.rd]
		f.rd = (f.rd + 1) % f.size
	}
	f.used--
	return b, nil
}

// Clear discards all stored data by resetting the indices and usage count.
// The backing store, capacity, dummy byte and chain links are untouched.
func (f *FIFO) Clear() {
	f.rd = 0
	f.wr = 0
	f.used = 0
}

// SetFull marks every slot as used without modifying stored bytes.
// Useful for stores prefilled outside the FIFO.
func (f *FIFO) SetFull() {
	f.rd = 0
	f.wr = 0
	f.used = f.size
}

// Size returns the configured capacity in bytes.
func (f *FIFO) Size() uint16 {
	return f.size
}

// Usage returns the number of stored bytes.
func (f *FIFO) Usage() uint16 {
	return f.used
}

// IsEmpty reports whether no data is stored.
func (f *FIFO) IsEmpty() bool {
	return f.used == 0
}

// IsFull reports whether no space remains. A capacity-0 instance is both
// empty and full.
func (f *FIFO) IsFull() bool {
	return f.used >= f.size
}
