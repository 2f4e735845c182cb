// Package clock holds the preset clock tree for each run mode.
//
// Use Configure to program the tree for a run mode. Afterwards the system
// clocks run at the frequencies the *Frequency functions report, each of
// which is at or below the hardware ceiling for its domain.
package clock

import (
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/runmode"
)

// Overdrive profile. Each root has its selection, the frequency that
// selection resolves to, and its divider side by side; the Hz constants are
// derived from those, so the ceiling checks in ceilings.go are evaluated by
// the compiler. TestOverdriveSourcesMatchSelections keeps each source
// constant in step with its selection.
const (
	overdriveAHBSelection = ccm.AHBPLL6
	overdriveAHBSourceHz  = ccm.PLL6Hz
	overdriveAHBDivider   = 1
	overdriveAHBHz        = overdriveAHBSourceHz / overdriveAHBDivider

	overdriveIPGSourceHz = overdriveAHBHz
	overdriveIPGDivider  = 4
	overdriveIPGHz       = overdriveIPGSourceHz / overdriveIPGDivider

	overdrivePerclkSelection = ccm.PerclkIPG
	overdrivePerclkSourceHz  = overdriveIPGHz
	overdrivePerclkDivider   = 2
	overdrivePerclkHz        = overdrivePerclkSourceHz / overdrivePerclkDivider

	overdriveUARTSelection = ccm.UARTPLL3Div6
	overdriveUARTSourceHz  = ccm.PLL3Hz / 6
	overdriveUARTDivider   = 1
	overdriveUARTHz        = overdriveUARTSourceHz / overdriveUARTDivider

	overdriveLPI2CSelection = ccm.LPI2CPLL3Div8
	overdriveLPI2CSourceHz  = ccm.PLL3Hz / 8
	overdriveLPI2CDivider   = 3
	overdriveLPI2CHz        = overdriveLPI2CSourceHz / overdriveLPI2CDivider

	overdriveLPSPISelection = ccm.LPSPIPLL2
	overdriveLPSPISourceHz  = ccm.PLL2Hz
	overdriveLPSPIDivider   = 8
	overdriveLPSPIHz        = overdriveLPSPISourceHz / overdriveLPSPIDivider
)

// AHBFrequency returns the target AHB frequency (Hz) for the run mode.
func AHBFrequency(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveAHBHz))
}

// IPGFrequency returns the target IPG frequency (Hz) for the run mode.
func IPGFrequency(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveIPGHz))
}

// PerclkFrequency returns the target PERCLK frequency (Hz) for the run mode.
func PerclkFrequency(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdrivePerclkHz))
}

// UARTFrequency returns the target LPUART root frequency (Hz) for the run mode.
func UARTFrequency(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveUARTHz))
}

// LPI2CFrequency returns the target LPI2C root frequency (Hz) for the run mode.
func LPI2CFrequency(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveLPI2CHz))
}

// LPSPIFrequency returns the target LPSPI root frequency (Hz) for the run mode.
func LPSPIFrequency(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveLPSPIHz))
}

func ahbSelection(m runmode.RunMode) ccm.AHBSelection {
	return runmode.Select(m, overdriveAHBSelection)
}

func ahbDivider(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveAHBDivider))
}

func ipgDivider(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveIPGDivider))
}

func perclkSelection(m runmode.RunMode) ccm.PerclkSelection {
	return runmode.Select(m, overdrivePerclkSelection)
}

func perclkDivider(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdrivePerclkDivider))
}

func uartSelection(m runmode.RunMode) ccm.UARTSelection {
	return runmode.Select(m, overdriveUARTSelection)
}

func uartDivider(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveUARTDivider))
}

func lpi2cSelection(m runmode.RunMode) ccm.LPI2CSelection {
	return runmode.Select(m, overdriveLPI2CSelection)
}

func lpi2cDivider(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveLPI2CDivider))
}

func lpspiSelection(m runmode.RunMode) ccm.LPSPISelection {
	return runmode.Select(m, overdriveLPSPISelection)
}

func lpspiDivider(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveLPSPIDivider))
}
