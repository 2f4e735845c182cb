// Package lpuart drives an LPUART as a transmit-only console.
package lpuart

import (
	"boardcode-go/errcode"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/ral"
	"boardcode-go/x/mathx"
)

// Register offsets from the instance base.
const (
	BAUD = 0x10
	STAT = 0x14
	CTRL = 0x18
	DATA = 0x1C
)

// STAT bits.
const (
	StatTDRE = 1 << 23
	StatTC   = 1 << 22
)

// CTRL bits.
const (
	CtrlTE = 1 << 19
	CtrlRE = 1 << 18
)

const (
	baudBothEdge = 1 << 17
	baudSBNS     = 1 << 13
	sbrMax       = 1<<13 - 1
	osrMin       = 4
	osrMax       = 32
)

var (
	baudSBR = ral.Field{Shift: 0, Width: 13}
	baudOSR = ral.Field{Shift: 24, Width: 5}
)

// Divisors is a BAUD register setting.
type Divisors struct {
	OSR uint32 // oversampling ratio, 4..32
	SBR uint32 // baud modulo divisor, 1..8191
}

// Hz returns the baud rate the divisors give from srcHz.
func (d Divisors) Hz(srcHz uint32) uint32 { return srcHz / (d.OSR * d.SBR) }

// word encodes d as a BAUD value with one stop bit.
func (d Divisors) word() uint32 {
	w := baudOSR.Insert(0, d.OSR-1) | baudSBR.Insert(0, d.SBR)
	if d.OSR < 8 {
		w |= baudBothEdge
	}
	return w &^ baudSBNS
}

// maxErrorPermille is the largest baud error accepted.
const maxErrorPermille = 30

// ComputeDivisors picks the OSR/SBR pair whose rate is closest to baud.
// On a tie the larger oversampling ratio wins.
func ComputeDivisors(srcHz, baud uint32) (Divisors, error) {
	if baud == 0 || srcHz/osrMin < baud {
		return Divisors{}, errcode.Wrap(errcode.InvalidParams, "lpuart.ComputeDivisors", "baud out of range")
	}
	var best Divisors
	bestErr := ^uint32(0)
	for osr := uint32(osrMin); osr <= osrMax; osr++ {
		sbr := mathx.Clamp(mathx.RoundDiv(srcHz, baud*osr), 1, sbrMax)
		d := Divisors{OSR: osr, SBR: sbr}
		if e := mathx.AbsDiff(d.Hz(srcHz), baud); e <= bestErr {
			best, bestErr = d, e
		}
	}
	if uint64(bestErr)*1000 > uint64(baud)*maxErrorPermille {
		return Divisors{}, errcode.Wrap(errcode.InvalidParams, "lpuart.ComputeDivisors", "baud error above 3%")
	}
	return best, nil
}

// Console writes bytes out of one LPUART, polling for room in the
// transmit buffer.
type Console struct {
	f    ral.File
	inst *periph.Instance
	baud uint32
}

// NewConsole binds the claimed instance to f. Nothing is written until
// Configure.
func NewConsole(f ral.File, inst *periph.Instance) *Console {
	return &Console{f: f, inst: inst}
}

func (c *Console) reg(off uint32) ral.Register { return c.inst.Base().Offset(off) }

// Configure sets the baud rate from the LPUART root frequency srcHz and
// enables the transmitter.
func (c *Console) Configure(srcHz, baud uint32) error {
	if !c.inst.Clocked(c.f) {
		return errcode.Wrap(errcode.ClockGated, "lpuart.Configure", c.inst.ID().String())
	}
	d, err := ComputeDivisors(srcHz, baud)
	if err != nil {
		return err
	}
	// BAUD may only change with the transmitter and receiver off.
	ral.ClearBits(c.f, c.reg(CTRL), CtrlTE|CtrlRE)
	c.f.Write(c.reg(BAUD), d.word())
	ral.SetBits(c.f, c.reg(CTRL), CtrlTE)
	c.baud = d.Hz(srcHz)
	return nil
}

// Baud returns the achieved rate, or 0 before Configure.
func (c *Console) Baud() uint32 { return c.baud }

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	if c.baud == 0 {
		return 0, errcode.Wrap(errcode.InvalidParams, "lpuart.Write", "not configured")
	}
	for i, b := range p {
		if !ral.WaitSet(c.f, c.reg(STAT), StatTDRE) {
			return i, errcode.Wrap(errcode.Timeout, "lpuart.Write", "transmit buffer full")
		}
		c.f.Write(c.reg(DATA), uint32(b))
	}
	return len(p), nil
}

// Flush waits for the last byte to leave the shift register.
func (c *Console) Flush() error {
	if !ral.WaitSet(c.f, c.reg(STAT), StatTC) {
		return errcode.Wrap(errcode.Timeout, "lpuart.Flush", "transmit not complete")
	}
	return nil
}
