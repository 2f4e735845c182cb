package clock

import (
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/ccm/analog"
	"boardcode-go/imxrt/dcdc"
	"boardcode-go/imxrt/ral"
	"boardcode-go/imxrt/runmode"
)

// Configure programs the clock tree for the run mode and then enables the
// common gates plus boardGates.
//
// Every functional root is retuned with all of its consumers gated off, and
// those gates stay off until every root is stable. The only gates turned back
// on are the ones in CommonGates and boardGates.
func Configure(f ral.File, m runmode.RunMode, boardGates []ccm.Locator) error {
	ccm.SetLowPowerMode(f, ccm.RemainInRun)

	if err := dcdc.SetTargetPower(f, m); err != nil {
		return err
	}
	if err := configureAHBIPG(f, m); err != nil {
		return err
	}

	configurePerclk(f, m)
	configureUART(f, m)
	configureLPI2C(f, m)
	configureLPSPI(f, m)

	ccm.Apply(f, ccm.ON, ccm.Union(ccm.CommonGates, boardGates)...)
	return nil
}

// configureAHBIPG moves AHB onto the oscillator, sets the pre_periph mux and
// the AHB/IPG dividers, restarts PLL6, then moves AHB back.
func configureAHBIPG(f ral.File, m runmode.RunMode) error {
	if err := ccm.BypassToOscillator(f); err != nil {
		return err
	}
	ccm.SetAHBSelection(f, ahbSelection(m))
	ccm.SetAHBDivider(f, ahbDivider(m))
	ccm.SetIPGDivider(f, ipgDivider(m))
	if err := ccm.WaitHandshake(f); err != nil {
		return err
	}
	if err := analog.RestartPLL6(f); err != nil {
		return err
	}
	return ccm.UsePrePeriph(f)
}

// configurePerclk leaves the PIT and GPT gates off.
func configurePerclk(f ral.File, m runmode.RunMode) {
	ccm.Apply(f, ccm.OFF, ccm.PerclkGates...)
	ccm.SetPerclkSelection(f, perclkSelection(m))
	ccm.SetPerclkDivider(f, perclkDivider(m))
}

// configureUART leaves every LPUART gate off.
func configureUART(f ral.File, m runmode.RunMode) {
	ccm.Apply(f, ccm.OFF, ccm.UARTGates...)
	ccm.SetUARTSelection(f, uartSelection(m))
	ccm.SetUARTDivider(f, uartDivider(m))
}

// configureLPI2C leaves every LPI2C gate off.
func configureLPI2C(f ral.File, m runmode.RunMode) {
	ccm.Apply(f, ccm.OFF, ccm.LPI2CGates...)
	ccm.SetLPI2CSelection(f, lpi2cSelection(m))
	ccm.SetLPI2CDivider(f, lpi2cDivider(m))
}

// configureLPSPI leaves every LPSPI gate off.
func configureLPSPI(f ral.File, m runmode.RunMode) {
	ccm.Apply(f, ccm.OFF, ccm.LPSPIGates...)
	ccm.SetLPSPISelection(f, lpspiSelection(m))
	ccm.SetLPSPIDivider(f, lpspiDivider(m))
}
