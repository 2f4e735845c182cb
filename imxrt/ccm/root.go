package ccm

import "boardcode-go/imxrt/ral"

// AHBSelection picks the pre_periph clock feeding AHB.
type AHBSelection uint32

const (
	AHBPLL2     AHBSelection = 0
	AHBPLL3PFD3 AHBSelection = 1
	AHBPLL2PFD3 AHBSelection = 2
	AHBPLL6     AHBSelection = 3
)

var (
	// AHB is the primary system bus root.
	AHB = Domain{
		Name:      "ahb",
		Selection: ral.Field{Reg: ral.CCM_CBCMR, Shift: 18, Width: 2},
		Divider:   ral.Field{Reg: ral.CCM_CBCDR, Shift: 10, Width: 3},
	}
	// IPG is divided from AHB and has no mux of its own.
	IPG = Domain{
		Name:    "ipg",
		Divider: ral.Field{Reg: ral.CCM_CBCDR, Shift: 8, Width: 2},
	}
)

var (
	cbcdrPeriphClkSel  = ral.Field{Reg: ral.CCM_CBCDR, Shift: 25, Width: 1}
	cbcmrPeriphClk2Sel = ral.Field{Reg: ral.CCM_CBCMR, Shift: 12, Width: 2}
)

const periphClk2Oscillator = 1

// BypassToOscillator routes periph_clk through periph_clk2 driven by the
// crystal, so AHB keeps running while pre_periph and its PLL are changed.
func BypassToOscillator(f ral.File) error {
	cbcmrPeriphClk2Sel.Set(f, periphClk2Oscillator)
	cbcdrPeriphClkSel.Set(f, 1)
	return WaitHandshake(f)
}

// UsePrePeriph routes periph_clk back to the pre_periph mux.
func UsePrePeriph(f ral.File) error {
	cbcdrPeriphClkSel.Set(f, 0)
	return WaitHandshake(f)
}

// SetAHBSelection writes the pre_periph mux.
func SetAHBSelection(f ral.File, sel AHBSelection) { AHB.setSelection(f, uint32(sel)) }

// SetAHBDivider writes AHB_PODF. div is 1-based.
func SetAHBDivider(f ral.File, div uint32) { AHB.setDivider(f, div) }

// SetIPGDivider writes IPG_PODF. div is 1-based.
func SetIPGDivider(f ral.File, div uint32) { IPG.setDivider(f, div) }

func (s AHBSelection) String() string {
	switch s {
	case AHBPLL2:
		return "pll2"
	case AHBPLL3PFD3:
		return "pll3_pfd3"
	case AHBPLL2PFD3:
		return "pll2_pfd3"
	case AHBPLL6:
		return "pll6"
	}
	return "invalid"
}
