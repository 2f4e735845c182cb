// Package analog drives the CCM_ANALOG PLL block.
package analog

import (
	"boardcode-go/errcode"
	"boardcode-go/imxrt/ral"
)

// PLL_ENET bits.
const (
	PLL6PowerDown = 1 << 12
	PLL6Enable    = 1 << 13
	PLL6Bypass    = 1 << 16
	PLL6RefEn500M = 1 << 22
	PLL6Lock      = 1 << 31
)

// RestartPLL6 power-cycles the ENET PLL and brings its 500 MHz output back.
//
// The PLL is bypassed for the duration so downstream muxes see the reference
// clock rather than a PLL still acquiring lock. Nothing may be running from
// PLL6 when this is called.
func RestartPLL6(f ral.File) error {
	const r = ral.CCM_ANALOG_PLL_ENET

	ral.SetBits(f, r, PLL6Bypass)
	ral.SetBits(f, r, PLL6PowerDown)
	ral.ClearBits(f, r, PLL6PowerDown|PLL6Enable|PLL6RefEn500M)
	if !ral.WaitSet(f, r, PLL6Lock) {
		return errcode.Wrap(errcode.Timeout, "analog.RestartPLL6", "pll6 lock")
	}
	ral.SetBits(f, r, PLL6Enable|PLL6RefEn500M)
	ral.ClearBits(f, r, PLL6Bypass)
	return nil
}
