// Package platform supplies the register file the board runs against.
//
// Built with the imxrt1010 tag it is the device's own MMIO. Otherwise it is
// a simulated 1010 that settles the way the silicon does, so bring-up and the
// drivers run unchanged on a development host.
package platform

import "boardcode-go/imxrt/ral"

// Registers returns the process-wide register file.
func Registers() ral.File { return registers() }
