package ccm

import "boardcode-go/imxrt/ral"

// PerclkSelection feeds the PIT and GPT timers.
type PerclkSelection uint32

const (
	PerclkIPG        PerclkSelection = 0
	PerclkOscillator PerclkSelection = 1
)

// UARTSelection feeds every LPUART.
type UARTSelection uint32

const (
	UARTPLL3Div6   UARTSelection = 0
	UARTOscillator UARTSelection = 1
)

// LPI2CSelection feeds every LPI2C.
type LPI2CSelection uint32

const (
	LPI2CPLL3Div8   LPI2CSelection = 0
	LPI2COscillator LPI2CSelection = 1
)

// LPSPISelection feeds every LPSPI.
type LPSPISelection uint32

const (
	LPSPIPLL3PFD1 LPSPISelection = 0
	LPSPIPLL3PFD0 LPSPISelection = 1
	LPSPIPLL2     LPSPISelection = 2
	LPSPIPLL2PFD2 LPSPISelection = 3
)

var (
	Perclk = Domain{
		Name:      "perclk",
		Selection: ral.Field{Reg: ral.CCM_CSCMR1, Shift: 6, Width: 1},
		Divider:   ral.Field{Reg: ral.CCM_CSCMR1, Shift: 0, Width: 6},
		Gates:     PerclkGates,
	}
	UART = Domain{
		Name:      "uart",
		Selection: ral.Field{Reg: ral.CCM_CSCDR1, Shift: 6, Width: 1},
		Divider:   ral.Field{Reg: ral.CCM_CSCDR1, Shift: 0, Width: 6},
		Gates:     UARTGates,
	}
	LPI2C = Domain{
		Name:      "lpi2c",
		Selection: ral.Field{Reg: ral.CCM_CSCDR2, Shift: 18, Width: 1},
		Divider:   ral.Field{Reg: ral.CCM_CSCDR2, Shift: 19, Width: 6},
		Gates:     LPI2CGates,
	}
	LPSPI = Domain{
		Name:      "lpspi",
		Selection: ral.Field{Reg: ral.CCM_CBCMR, Shift: 4, Width: 2},
		Divider:   ral.Field{Reg: ral.CCM_CBCMR, Shift: 26, Width: 3},
		Gates:     LPSPIGates,
	}
)

// FunctionalDomains lists the gated roots retuned during bring-up.
func FunctionalDomains() []Domain { return []Domain{Perclk, UART, LPI2C, LPSPI} }

func SetPerclkSelection(f ral.File, sel PerclkSelection) { Perclk.setSelection(f, uint32(sel)) }
func SetPerclkDivider(f ral.File, div uint32)            { Perclk.setDivider(f, div) }

func SetUARTSelection(f ral.File, sel UARTSelection) { UART.setSelection(f, uint32(sel)) }
func SetUARTDivider(f ral.File, div uint32)          { UART.setDivider(f, div) }

func SetLPI2CSelection(f ral.File, sel LPI2CSelection) { LPI2C.setSelection(f, uint32(sel)) }
func SetLPI2CDivider(f ral.File, div uint32)           { LPI2C.setDivider(f, div) }

func SetLPSPISelection(f ral.File, sel LPSPISelection) { LPSPI.setSelection(f, uint32(sel)) }
func SetLPSPIDivider(f ral.File, div uint32)           { LPSPI.setDivider(f, div) }

func (s PerclkSelection) String() string {
	switch s {
	case PerclkIPG:
		return "ipg"
	case PerclkOscillator:
		return "oscillator"
	}
	return "invalid"
}

func (s UARTSelection) String() string {
	switch s {
	case UARTPLL3Div6:
		return "pll3_div6"
	case UARTOscillator:
		return "oscillator"
	}
	return "invalid"
}

func (s LPI2CSelection) String() string {
	switch s {
	case LPI2CPLL3Div8:
		return "pll3_div8"
	case LPI2COscillator:
		return "oscillator"
	}
	return "invalid"
}

func (s LPSPISelection) String() string {
	switch s {
	case LPSPIPLL3PFD1:
		return "pll3_pfd1"
	case LPSPIPLL3PFD0:
		return "pll3_pfd0"
	case LPSPIPLL2:
		return "pll2"
	case LPSPIPLL2PFD2:
		return "pll2_pfd2"
	}
	return "invalid"
}
