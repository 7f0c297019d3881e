// ©PurriKissa 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cfifo

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinLock is a test-and-set spin lock implementing [sync.Locker].
//
// The zero value is an unlocked SpinLock. Suited to the short critical
// sections of FIFO operations, where parking a goroutine costs more than the
// handful of cycles the section runs; use a sync.Mutex instead when critical
// sections can be preempted for long.
//
// SpinLock is not reentrant.
type SpinLock struct {
	state atomix.Uint64
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for !l.state.CompareAndSwapAcqRel(0, 1) {
		// Spin on a plain load until the lock looks free, then retry the
		// CAS. Keeps the cache line shared while the owner works.
		for l.state.LoadRelaxed() != 0 {
			sw.Once()
		}
	}
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() {
	l.state.StoreRelease(0)
}

// Guarded wraps a FIFO with a caller-supplied lock, serializing every public
// operation. Chain operations hold the lock for the entire traversal, so a
// cascade across linked buffers is one atomic critical section.
//
// A bare FIFO has no internal synchronization; Guarded is the injectable
// mutual-exclusion collaborator for callers that share instances across
// goroutines or interrupt contexts. Instances that share a chain must share
// one Locker: guard each FIFO of a chain with the same lock, or guard only
// the head and route all access through it.
//
// Example:
//
//	head := cfifo.New(64).Spill(256).Build()
//	q := cfifo.Guard(head, nil) // fresh SpinLock
//
//	go func() { q.Push(0x41) }()
//	go func() { b, _ := q.ChainPop(); _ = b }()
type Guarded struct {
	mu sync.Locker
	f  *FIFO
}

// Guard wraps f with mu. A nil mu installs a fresh [SpinLock].
// f must not be nil.
func Guard(f *FIFO, mu sync.Locker) *Guarded {
	if mu == nil {
		mu = new(SpinLock)
	}
	return &Guarded{mu: mu, f: f}
}

// Locker returns the lock guarding this instance, so wrappers of chain
// neighbors can share it.
func (g *Guarded) Locker() sync.Locker {
	return g.mu
}

// Configure assigns a backing store and capacity. See [FIFO.Configure].
func (g *Guarded) Configure(buf []byte, size uint16) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.Configure(buf, size)
}

// SetDummyByte sets the byte Pop yields in dummy-byte mode.
func (g *Guarded) SetDummyByte(v byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.SetDummyByte(v)
}

// Link attaches next downstream of the wrapped FIFO. See [FIFO.Link].
func (g *Guarded) Link(next *FIFO) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.Link(next)
}

// Push appends one byte. See [FIFO.Push].
func (g *Guarded) Push(b byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Push(b)
}

// Pop removes and returns the oldest byte. See [FIFO.Pop].
func (g *Guarded) Pop() (byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Pop()
}

// Clear discards all stored data.
func (g *Guarded) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.Clear()
}

// SetFull marks every slot as used without modifying stored bytes.
func (g *Guarded) SetFull() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.SetFull()
}

// Size returns the configured capacity in bytes.
func (g *Guarded) Size() uint16 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Size()
}

// Usage returns the number of stored bytes.
func (g *Guarded) Usage() uint16 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Usage()
}

// IsEmpty reports whether no data is stored.
func (g *Guarded) IsEmpty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.IsEmpty()
}

// IsFull reports whether no space remains.
func (g *Guarded) IsFull() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.IsFull()
}

// ChainPush pushes into the first non-full buffer downstream of the wrapped
// FIFO, it included. The whole traversal runs under the lock.
func (g *Guarded) ChainPush(b byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.ChainPush(b)
}

// ChainPop pops from the first non-empty buffer downstream of the wrapped
// FIFO, it included. The whole traversal runs under the lock.
func (g *Guarded) ChainPop() (byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.ChainPop()
}

// ChainClear clears every reachable buffer in the given direction.
func (g *Guarded) ChainClear(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.ChainClear(d)
}

// ChainSetFull marks every reachable buffer in the given direction as full.
func (g *Guarded) ChainSetFull(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.ChainSetFull(d)
}

// ChainSize returns the summed capacity of the forward chain.
func (g *Guarded) ChainSize() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.ChainSize()
}

// ChainUsage returns the summed usage of the forward chain.
func (g *Guarded) ChainUsage() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.ChainUsage()
}

// ChainEmpty reports whether every buffer in the forward chain is empty.
func (g *Guarded) ChainEmpty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.ChainEmpty()
}

// ChainFull reports whether every buffer in the forward chain is full.
func (g *Guarded) ChainFull() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.ChainFull()
}
