// Package ccm programs the clock controller module: root clock selections and
// dividers, the divider handshake, low-power mode and the per-peripheral clock
// gates.
//
// Functions here write exactly what they are told. Sequencing (what may be
// retuned while which gates are on) is the caller's job; see package clock.
package ccm

import (
	"boardcode-go/errcode"
	"boardcode-go/imxrt/ral"
	"boardcode-go/x/mathx"
)

// Fixed source frequencies (Hz).
const (
	XtalHz = 24_000_000
	PLL2Hz = 528_000_000
	PLL3Hz = 480_000_000
	PLL6Hz = 500_000_000
)

// Domain describes the mux and divider fields of one clock root together
// with the gates of every peripheral that root feeds.
type Domain struct {
	Name      string
	Selection ral.Field // zero Width when the root has no mux
	Divider   ral.Field
	Gates     []Locator
}

// DividerMax is the largest divider the domain's field can encode.
func (d Domain) DividerMax() uint32 { return d.Divider.Max() + 1 }

func (d Domain) setSelection(f ral.File, sel uint32) {
	if d.Selection.Width == 0 {
		panic("ccm: " + d.Name + " has no selection")
	}
	d.Selection.Set(f, sel)
}

// setDivider writes a 1-based divider into its 0-based field.
func (d Domain) setDivider(f ral.File, div uint32) {
	if !mathx.Between(div, 1, d.DividerMax()) {
		panic("ccm: " + d.Name + " divider out of range")
	}
	d.Divider.Set(f, div-1)
}

// LowPowerMode is the CLPCR.LPM setting applied on the next WFI.
type LowPowerMode uint32

const (
	RemainInRun LowPowerMode = 0
	Wait        LowPowerMode = 1
	Stop        LowPowerMode = 2
)

var clpcrLPM = ral.Field{Reg: ral.CCM_CLPCR, Shift: 0, Width: 2}

// SetLowPowerMode selects what the core does on WFI.
func SetLowPowerMode(f ral.File, m LowPowerMode) { clpcrLPM.Set(f, uint32(m)) }

// CDHIPR busy flags.
const (
	cdhiprAHBPodfBusy       = 1 << 1
	cdhiprPeriphClkSelBusy  = 1 << 5
	cdhiprPeriph2ClkSelBusy = 1 << 3
)

// WaitHandshake waits for the divider/mux handshake to finish.
func WaitHandshake(f ral.File) error {
	if !ral.WaitClear(f, ral.CCM_CDHIPR, cdhiprAHBPodfBusy|cdhiprPeriphClkSelBusy|cdhiprPeriph2ClkSelBusy) {
		return errcode.Wrap(errcode.Timeout, "ccm.WaitHandshake", "CDHIPR busy")
	}
	return nil
}

// Divider limits, 1-based, as encoded by each root's divider field.
const (
	AHBDividerMax    = 8
	IPGDividerMax    = 4
	PerclkDividerMax = 64
	UARTDividerMax   = 64
	LPI2CDividerMax  = 64
	LPSPIDividerMax  = 8
)

// Phase fractional divider outputs at their reset fractions (Hz).
const (
	PLL2PFD2Hz = PLL2Hz * 18 / 24
	PLL2PFD3Hz = PLL2Hz * 18 / 32
	PLL3PFD0Hz = PLL3Hz * 18 / 12
	PLL3PFD1Hz = PLL3Hz * 18 / 16
	PLL3PFD3Hz = PLL3Hz * 18 / 19
)
