package ccm

import (
	"golang.org/x/exp/slices"

	"boardcode-go/imxrt/ral"
	"boardcode-go/x/conv"
)

// Gate is the two-bit state of one clock gate.
type Gate uint32

const (
	OFF Gate = 0b00
	ON  Gate = 0b11
)

// Locator identifies one peripheral clock gate: CCGR register index in the
// high nibble, gate number in the low nibble.
type Locator uint8

// Field returns the CCGR bit range that holds this gate.
func (l Locator) Field() ral.Field {
	return ral.Field{
		Reg:   ral.CCM_CCGR0.Offset(4 * uint32(l>>4)),
		Shift: 2 * uint8(l&0xF),
		Width: 2,
	}
}

func (l Locator) String() string {
	if n, ok := gateNames[l]; ok {
		return n
	}
	return "CCGR" + conv.Utoa(uint64(l>>4)) + ".CG" + conv.Utoa(uint64(l&0xF))
}

const (
	GateLPUART3    Locator = 0<<4 | 6
	GateGPT2Bus    Locator = 0<<4 | 12
	GateGPT2Serial Locator = 0<<4 | 13
	GateLPUART2    Locator = 0<<4 | 14
	GateGPIO2      Locator = 0<<4 | 15
	GateLPSPI1     Locator = 1<<4 | 0
	GateLPSPI2     Locator = 1<<4 | 1
	GatePIT        Locator = 1<<4 | 6
	GateGPT1Bus    Locator = 1<<4 | 10
	GateGPT1Serial Locator = 1<<4 | 11
	GateLPUART4    Locator = 1<<4 | 12
	GateGPIO1      Locator = 1<<4 | 13
	GateLPI2C1     Locator = 2<<4 | 3
	GateLPI2C2     Locator = 2<<4 | 4
	GateDMA        Locator = 5<<4 | 3
	GateLPUART1    Locator = 5<<4 | 12
)

var gateNames = map[Locator]string{
	GateLPUART3: "lpuart3", GateGPT2Bus: "gpt2_bus", GateGPT2Serial: "gpt2_serial",
	GateLPUART2: "lpuart2", GateGPIO2: "gpio2", GateLPSPI1: "lpspi1", GateLPSPI2: "lpspi2",
	GatePIT: "pit", GateGPT1Bus: "gpt1_bus", GateGPT1Serial: "gpt1_serial",
	GateLPUART4: "lpuart4", GateGPIO1: "gpio1", GateLPI2C1: "lpi2c1", GateLPI2C2: "lpi2c2",
	GateDMA: "dma", GateLPUART1: "lpuart1",
}

// Domain-scoped gate sets: every consumer of one functional root.
var (
	PerclkGates = []Locator{GatePIT, GateGPT1Bus, GateGPT1Serial, GateGPT2Bus, GateGPT2Serial}
	UARTGates   = []Locator{GateLPUART1, GateLPUART2, GateLPUART3, GateLPUART4}
	LPI2CGates  = []Locator{GateLPI2C1, GateLPI2C2}
	LPSPIGates  = []Locator{GateLPSPI1, GateLPSPI2}
)

// CommonGates are enabled on every board.
var CommonGates = []Locator{GateDMA, GatePIT, GateGPT1Bus, GateGPT1Serial, GateGPT2Bus, GateGPT2Serial}

// Apply sets every locator to state. Locators are independent, so order
// carries no meaning, and a gate already in state is not written.
func Apply(f ral.File, state Gate, locs ...Locator) {
	for _, l := range locs {
		l.Field().Set(f, uint32(state))
	}
}

// IsOn reports whether the gate is fully on.
func IsOn(f ral.File, l Locator) bool {
	return Gate(l.Field().Get(f)) == ON
}

// Union merges locator sets, dropping duplicates. The result is sorted so a
// given union always produces the same write sequence.
func Union(sets ...[]Locator) []Locator {
	var out []Locator
	for _, s := range sets {
		out = append(out, s...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
