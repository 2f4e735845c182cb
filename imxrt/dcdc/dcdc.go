// Package dcdc sets the core voltage the on-chip DC-DC converter regulates to.
package dcdc

import (
	"boardcode-go/errcode"
	"boardcode-go/imxrt/ral"
	"boardcode-go/imxrt/runmode"
)

const (
	trgBaseMillivolts = 800
	trgStepMillivolts = 25

	overdriveMillivolts = 1250
	overdriveTRG        = (overdriveMillivolts - trgBaseMillivolts) / trgStepMillivolts
)

// The TRG field is five bits wide and the table must land on a step.
const (
	_ = uint8(31 - overdriveTRG)
	_ = uint8(0 - (overdriveMillivolts-trgBaseMillivolts)%trgStepMillivolts)
)

var reg3TRG = ral.Field{Reg: ral.DCDC_REG3, Shift: 0, Width: 5}

// Reg0StsDcOK is set while the output is in regulation.
const Reg0StsDcOK = 1 << 31

// TargetMillivolts returns the VDD_SOC level the run mode needs.
func TargetMillivolts(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveMillivolts))
}

func targetTRG(m runmode.RunMode) uint32 {
	return runmode.Select(m, uint32(overdriveTRG))
}

// Millivolts returns the currently programmed target.
func Millivolts(f ral.File) uint32 {
	return trgBaseMillivolts + reg3TRG.Get(f)*trgStepMillivolts
}

// SetTargetPower raises the regulator to the level m needs and waits for it
// to report regulation.
//
// A higher target is left in place: lowering the voltage is only safe once
// every clock has been brought down, and bring-up only ever raises clocks.
func SetTargetPower(f ral.File, m runmode.RunMode) error {
	want := targetTRG(m)
	if reg3TRG.Get(f) >= want {
		return nil
	}
	reg3TRG.Set(f, want)
	if !ral.WaitSet(f, ral.DCDC_REG0, Reg0StsDcOK) {
		return errcode.Wrap(errcode.Timeout, "dcdc.SetTargetPower", "regulator not settled")
	}
	return nil
}
