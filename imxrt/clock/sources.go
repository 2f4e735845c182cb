package clock

import (
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/runmode"
)

// Setting is the programmed state of one clock root.
type Setting struct {
	Domain    string `yaml:"domain"`
	Selection string `yaml:"selection"`
	SourceHz  uint32 `yaml:"source_hz"`
	Divider   uint32 `yaml:"divider"`
	Hz        uint32 `yaml:"hz"`
}

// Plan returns the selection and divider every root gets for m, with the
// source frequency each selection resolves to.
func Plan(m runmode.RunMode) []Setting {
	return []Setting{
		{"ahb", ahbSelection(m).String(), ahbSourceHz(ahbSelection(m)), ahbDivider(m), AHBFrequency(m)},
		{"ipg", "ahb", AHBFrequency(m), ipgDivider(m), IPGFrequency(m)},
		{"perclk", perclkSelection(m).String(), perclkSourceHz(m, perclkSelection(m)), perclkDivider(m), PerclkFrequency(m)},
		{"uart", uartSelection(m).String(), uartSourceHz(uartSelection(m)), uartDivider(m), UARTFrequency(m)},
		{"lpi2c", lpi2cSelection(m).String(), lpi2cSourceHz(lpi2cSelection(m)), lpi2cDivider(m), LPI2CFrequency(m)},
		{"lpspi", lpspiSelection(m).String(), lpspiSourceHz(lpspiSelection(m)), lpspiDivider(m), LPSPIFrequency(m)},
	}
}

func ahbSourceHz(sel ccm.AHBSelection) uint32 {
	switch sel {
	case ccm.AHBPLL2:
		return ccm.PLL2Hz
	case ccm.AHBPLL3PFD3:
		return ccm.PLL3PFD3Hz
	case ccm.AHBPLL2PFD3:
		return ccm.PLL2PFD3Hz
	case ccm.AHBPLL6:
		return ccm.PLL6Hz
	}
	panic("clock: invalid AHB selection")
}

func perclkSourceHz(m runmode.RunMode, sel ccm.PerclkSelection) uint32 {
	switch sel {
	case ccm.PerclkIPG:
		return IPGFrequency(m)
	case ccm.PerclkOscillator:
		return ccm.XtalHz
	}
	panic("clock: invalid PERCLK selection")
}

func uartSourceHz(sel ccm.UARTSelection) uint32 {
	switch sel {
	case ccm.UARTPLL3Div6:
		return ccm.PLL3Hz / 6
	case ccm.UARTOscillator:
		return ccm.XtalHz
	}
	panic("clock: invalid UART selection")
}

func lpi2cSourceHz(sel ccm.LPI2CSelection) uint32 {
	switch sel {
	case ccm.LPI2CPLL3Div8:
		return ccm.PLL3Hz / 8
	case ccm.LPI2COscillator:
		return ccm.XtalHz
	}
	panic("clock: invalid LPI2C selection")
}

func lpspiSourceHz(sel ccm.LPSPISelection) uint32 {
	switch sel {
	case ccm.LPSPIPLL3PFD1:
		return ccm.PLL3PFD1Hz
	case ccm.LPSPIPLL3PFD0:
		return ccm.PLL3PFD0Hz
	case ccm.LPSPIPLL2:
		return ccm.PLL2Hz
	case ccm.LPSPIPLL2PFD2:
		return ccm.PLL2PFD2Hz
	}
	panic("clock: invalid LPSPI selection")
}
