package clock

import (
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/runmode"
)

// Datasheet ceilings (Hz).
const (
	AHBMaxHz    = 500_000_000
	IPGMaxHz    = 150_000_000
	PerclkMaxHz = 75_000_000
	UARTMaxHz   = 80_000_000
	LPI2CMaxHz  = 66_000_000
	LPSPIMaxHz  = 132_000_000
)

// A profile frequency above its ceiling, or a divider its field cannot
// encode, makes one of these conversions negative and the build fails.
const (
	_ = uint32(AHBMaxHz - overdriveAHBHz)
	_ = uint32(IPGMaxHz - overdriveIPGHz)
	_ = uint32(PerclkMaxHz - overdrivePerclkHz)
	_ = uint32(UARTMaxHz - overdriveUARTHz)
	_ = uint32(LPI2CMaxHz - overdriveLPI2CHz)
	_ = uint32(LPSPIMaxHz - overdriveLPSPIHz)

	_ = uint8(overdriveAHBDivider - 1)
	_ = uint8(ccm.AHBDividerMax - overdriveAHBDivider)
	_ = uint8(overdriveIPGDivider - 1)
	_ = uint8(ccm.IPGDividerMax - overdriveIPGDivider)
	_ = uint8(overdrivePerclkDivider - 1)
	_ = uint8(ccm.PerclkDividerMax - overdrivePerclkDivider)
	_ = uint8(overdriveUARTDivider - 1)
	_ = uint8(ccm.UARTDividerMax - overdriveUARTDivider)
	_ = uint8(overdriveLPI2CDivider - 1)
	_ = uint8(ccm.LPI2CDividerMax - overdriveLPI2CDivider)
	_ = uint8(overdriveLPSPIDivider - 1)
	_ = uint8(ccm.LPSPIDividerMax - overdriveLPSPIDivider)
)

// Ceiling pairs a domain's target with its hardware limit.
type Ceiling struct {
	Domain string
	Hz     uint32
	MaxHz  uint32
}

// Ceilings lists every derived frequency for m next to its limit.
func Ceilings(m runmode.RunMode) []Ceiling {
	return []Ceiling{
		{"ahb", AHBFrequency(m), AHBMaxHz},
		{"ipg", IPGFrequency(m), IPGMaxHz},
		{"perclk", PerclkFrequency(m), PerclkMaxHz},
		{"uart", UARTFrequency(m), UARTMaxHz},
		{"lpi2c", LPI2CFrequency(m), LPI2CMaxHz},
		{"lpspi", LPSPIFrequency(m), LPSPIMaxHz},
	}
}
