// Package sim provides a simulated register file for host-side runs.
package sim

import (
	"sync"

	"boardcode-go/imxrt/ral"
)

// Access is one recorded register write.
type Access struct {
	Reg ral.Register
	Old uint32
	New uint32
}

// WriteHook runs after a write lands. It may Poke other registers to model
// hardware side effects (a PLL reporting lock, a FIFO draining).
type WriteHook func(f *File, v uint32)

// ReadHook supplies the value of a read. It replaces the stored value.
type ReadHook func(f *File) uint32

// File is an in-memory ral.File that records every write.
// Unwritten registers read as zero.
type File struct {
	mu     sync.Mutex
	regs   map[ral.Register]uint32
	trace  []Access
	onW    map[ral.Register]WriteHook
	onR    map[ral.Register]ReadHook
	reads  int
	ignore map[ral.Register]bool
}

var _ ral.File = (*File)(nil)

// New returns an empty register file.
func New() *File {
	return &File{
		regs:   make(map[ral.Register]uint32),
		onW:    make(map[ral.Register]WriteHook),
		onR:    make(map[ral.Register]ReadHook),
		ignore: make(map[ral.Register]bool),
	}
}

func (f *File) Read(r ral.Register) uint32 {
	f.mu.Lock()
	f.reads++
	h := f.onR[r]
	v := f.regs[r]
	f.mu.Unlock()
	if h != nil {
		return h(f)
	}
	return v
}

func (f *File) Write(r ral.Register, v uint32) {
	f.mu.Lock()
	old := f.regs[r]
	f.regs[r] = v
	if !f.ignore[r] {
		f.trace = append(f.trace, Access{Reg: r, Old: old, New: v})
	}
	h := f.onW[r]
	f.mu.Unlock()
	if h != nil {
		h(f, v)
	}
}

// Poke sets a register without recording it or running hooks.
func (f *File) Poke(r ral.Register, v uint32) {
	f.mu.Lock()
	f.regs[r] = v
	f.mu.Unlock()
}

// Peek returns a register's stored value without running hooks.
func (f *File) Peek(r ral.Register) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.regs[r]
}

// OnWrite installs h for writes to r, replacing any previous hook.
func (f *File) OnWrite(r ral.Register, h WriteHook) {
	f.mu.Lock()
	f.onW[r] = h
	f.mu.Unlock()
}

// OnRead installs h for reads of r, replacing any previous hook.
func (f *File) OnRead(r ral.Register, h ReadHook) {
	f.mu.Lock()
	f.onR[r] = h
	f.mu.Unlock()
}

// Untraced stops recording writes to r. Data registers written in bulk
// (FIFOs) would otherwise swamp the trace.
func (f *File) Untraced(r ral.Register) {
	f.mu.Lock()
	f.ignore[r] = true
	f.mu.Unlock()
}

// Trace returns a copy of the recorded writes, oldest first.
func (f *File) Trace() []Access {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Access(nil), f.trace...)
}

// ResetTrace discards the recorded writes.
func (f *File) ResetTrace() {
	f.mu.Lock()
	f.trace = nil
	f.mu.Unlock()
}

// Reads returns the number of reads served so far.
func (f *File) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}
