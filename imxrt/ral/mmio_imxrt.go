//go:build imxrt1010

package ral

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO accesses the device registers directly.
type MMIO struct{}

func (MMIO) Read(r Register) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(r))).Get()
}

func (MMIO) Write(r Register, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(r))).Set(v)
}
