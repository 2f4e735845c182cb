// Package board brings the board up and hands out its peripherals.
//
// Call New once at the top of main. It configures the clock tree for the
// board's run mode and returns the only handles to the peripherals the board
// wires up.
package board

import (
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/lpi2c"
	"boardcode-go/imxrt/lpuart"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/ral"
	"boardcode-go/imxrt/runmode"
)

// Descriptor is everything bring-up needs to know about one board.
type Descriptor struct {
	Name    string
	RunMode runmode.RunMode

	// Gates enabled on top of ccm.CommonGates.
	Gates []ccm.Locator

	LED struct {
		Port periph.ID
		Pin  uint8
	}
	Console struct {
		Instance periph.ID
		Baud     uint32
	}
	I2C struct {
		Instance periph.ID
		Baud     uint32
	}
	SPI periph.ID

	// Interrupts maps each board interrupt to the peripheral raising it.
	Interrupts [NumInterrupts]periph.ID
}

// Common holds the peripherals every board gets, whatever its pinout.
type Common struct {
	DMA  *periph.Instance
	PIT  *periph.Instance
	GPT1 *periph.Instance
	GPT2 *periph.Instance
}

// LED is ownership of the pin driving the user LED.
type LED struct {
	Port *periph.Instance
	Pin  uint8
}

// Specifics holds the peripherals this board wires to something.
type Specifics struct {
	LED     LED
	Console *lpuart.Console
	I2C     *lpi2c.Master
	SPI     *periph.Instance
}

// Board is the result of bring-up.
type Board struct {
	Descriptor Descriptor
	Registers  ral.File
	Periph     *periph.Registry
	Vectors    *Vectors

	Common
	Specifics
}
