// Package ral is the register-access layer.
//
// Everything above this package talks to hardware through a File, so the
// clock tree, the gate engine and the peripheral drivers run unchanged against
// real MMIO on the target and against a simulated register file on a host.
package ral

import "boardcode-go/x/conv"

// Register is the bus address of a 32-bit device register.
type Register uint32

// Offset returns the register off bytes past r.
func (r Register) Offset(off uint32) Register { return r + Register(off) }

func (r Register) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return conv.Hex32(uint32(r))
}

// File reads and writes named registers. Accesses are synchronous and
// infallible; implementations perform no locking on behalf of callers.
type File interface {
	Read(r Register) uint32
	Write(r Register, v uint32)
}

// Modify performs a read-modify-write, clearing then setting bits.
// The write is skipped when the register already holds the result.
func Modify(f File, r Register, clear, set uint32) {
	old := f.Read(r)
	v := old&^clear | set
	if v != old {
		f.Write(r, v)
	}
}

// SetBits sets mask in r.
func SetBits(f File, r Register, mask uint32) { Modify(f, r, 0, mask) }

// ClearBits clears mask in r.
func ClearBits(f File, r Register, mask uint32) { Modify(f, r, mask, 0) }

// PollBudget bounds every status poll. Hardware that has not settled after
// this many reads is treated as failed.
const PollBudget = 1 << 20

// WaitSet polls r until all bits in mask are set. It reports false if the
// budget ran out first.
func WaitSet(f File, r Register, mask uint32) bool {
	for i := 0; i < PollBudget; i++ {
		if f.Read(r)&mask == mask {
			return true
		}
	}
	return false
}

// WaitClear polls r until all bits in mask are clear.
func WaitClear(f File, r Register, mask uint32) bool {
	for i := 0; i < PollBudget; i++ {
		if f.Read(r)&mask == 0 {
			return true
		}
	}
	return false
}
