// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo

// Pusher is the producer side of a byte FIFO.
//
// Push is non-blocking and returns ErrWouldBlock when the byte cannot be
// stored (buffer full or no backing store configured).
type Pusher interface {
	// Push appends one byte to the buffer.
	Push(b byte) error
}

// Popper is the consumer side of a byte FIFO.
//
// Pop is non-blocking and returns ErrWouldBlock when no byte is available.
// The returned byte may be the instance's dummy byte when the buffer has a
// usage count but no backing store.
type Popper interface {
	// Pop removes and returns the oldest byte in the buffer.
	Pop() (byte, error)
}

// Queue combines the producer and consumer sides with the status queries.
//
// Both [*FIFO] and [*Guarded] implement Queue, so callers that only push,
// pop and inspect can stay agnostic about whether a lock wraps the instance.
//
// Example:
//
//	func drain(q cfifo.Queue, dst []byte) int {
//	    n := 0
//	    for n < len(dst) {
//	        b, err := q.Pop()
//	        if err != nil {
//	            break
//	        }
//	        dst[n] = b
//	        n++
//	    }
//	    return n
//	}
type Queue interface {
	Pusher
	Popper

	// Size returns the configured capacity in bytes.
	Size() uint16
	// Usage returns the number of stored bytes.
	Usage() uint16
	// IsEmpty reports whether no data is stored.
	IsEmpty() bool
	// IsFull reports whether no space remains.
	IsFull() bool
}
