// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo

// segment is the build-time description of one FIFO in a spill chain.
type segment struct {
	capacity    uint16
	storage     []byte // nil: allocated at Build (or absent for placeholders)
	dummy       byte
	placeholder bool // no backing store, dummy-byte mode
	preloaded   bool // keep the post-Configure full state
}

// Builder assembles a configured, linked spill chain in one expression.
//
// Builder is a convenience layer over Configure, Link, SetDummyByte, Clear
// and SetFull; everything it produces can also be assembled by hand from
// zero-value FIFOs. Each Spill call opens a new downstream segment; the
// other methods refine the segment opened most recently.
//
// Example:
//
//	// 64-byte head spilling into a 256-byte overflow buffer, then into a
//	// 16-byte dummy placeholder that absorbs and replays 0xFF.
//	head := cfifo.New(64).
//	    Spill(256).
//	    Spill(16).Placeholder().DummyByte(0xFF).Preloaded().
//	    Build()
type Builder struct {
	segments []segment
}

// New starts a chain with a single segment of the given capacity.
// Storage for the segment is allocated at Build unless Storage or
// Placeholder overrides it. Capacity 0 yields an unconfigured segment.
func New(capacity uint16) *Builder {
	return &Builder{segments: []segment{{capacity: capacity}}}
}

// cur returns the segment opened most recently.
func (b *Builder) cur() *segment {
	return &b.segments[len(b.segments)-1]
}

// Storage supplies caller-owned backing storage for the current segment.
// The segment's capacity becomes len(buf); the chain borrows the slice and
// never reallocates it.
//
// Panics if len(buf) exceeds 65535, the widest capacity the 16-bit counters
// can account for.
func (b *Builder) Storage(buf []byte) *Builder {
	if len(buf) > 65535 {
		panic("cfifo: storage larger than 65535 bytes")
	}
	s := b.cur()
	s.storage = buf
	s.capacity = uint16(len(buf))
	s.placeholder = false
	return b
}

// DummyByte sets the byte the current segment yields on Pop when it has no
// backing store.
func (b *Builder) DummyByte(v byte) *Builder {
	b.cur().dummy = v
	return b
}

// Placeholder turns the current segment into a storage-less buffer that
// keeps its logical capacity. Pushes to it always fail; pops yield its
// dummy byte while the usage count lasts.
func (b *Builder) Placeholder() *Builder {
	s := b.cur()
	s.storage = nil
	s.placeholder = true
	return b
}

// Preloaded leaves the current segment in the post-Configure full state
// instead of clearing it, so its content (real bytes or dummy repetitions)
// is immediately drainable.
func (b *Builder) Preloaded() *Builder {
	b.cur().preloaded = true
	return b
}

// Spill appends a new downstream segment of the given capacity and makes it
// the current segment.
func (b *Builder) Spill(capacity uint16) *Builder {
	b.segments = append(b.segments, segment{capacity: capacity})
	return b
}

// Build configures and links every segment and returns the head of the
// chain. Segments are cleared (empty, ready for data) unless marked
// Preloaded.
func (b *Builder) Build() *FIFO {
	fifos := make([]*FIFO, len(b.segments))
	for i, s := range b.segments {
		f := new(FIFO)
		f.Init()
		f.SetDummyByte(s.dummy)

		buf := s.storage
		if buf == nil && !s.placeholder && s.capacity > 0 {
			buf = make([]byte, s.capacity)
		}
		f.Configure(buf, s.capacity)
		if !s.preloaded {
			f.Clear()
		}
		fifos[i] = f
	}

	for i := 0; i+1 < len(fifos); i++ {
		fifos[i].Link(fifos[i+1])
	}
	return fifos[0]
}
