package board

import (
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/runmode"
)

// IMXRT1010EVK is the NXP i.MX RT1010 evaluation kit.
//
// LED: GPIO_11. Console: LPUART1 on GPIO_09/GPIO_10, routed to the debug
// probe. I²C: LPI2C1 on GPIO_01/GPIO_02. SPI: LPSPI1 on the Arduino header.
// Button: SW4 on GPIO_SD_05.
var IMXRT1010EVK = func() Descriptor {
	d := Descriptor{
		Name:    "imxrt1010evk",
		RunMode: runmode.Overdrive,
		Gates:   []ccm.Locator{ccm.GateGPIO1, ccm.GateGPIO2, ccm.GateLPUART1, ccm.GateLPI2C1, ccm.GateLPSPI1},
		SPI:     periph.LPSPI1,
	}
	d.LED.Port, d.LED.Pin = periph.GPIO1, 11
	d.Console.Instance, d.Console.Baud = periph.LPUART1, 115_200
	d.I2C.Instance, d.I2C.Baud = periph.LPI2C1, 100_000
	d.Interrupts = [NumInterrupts]periph.ID{
		IntConsole: periph.LPUART1,
		IntButton:  periph.GPIO2,
		IntDMAA:    periph.DMA,
		IntDMAB:    periph.DMA,
		IntPIT:     periph.PIT,
		IntGPT1:    periph.GPT1,
		IntGPT2:    periph.GPT2,
	}
	return d
}()

// Selected is the board New brings up.
var Selected = IMXRT1010EVK
