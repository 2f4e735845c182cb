package main

import (
	"gopkg.in/yaml.v3"

	"github.com/spf13/cobra"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/clock"
	"boardcode-go/imxrt/dcdc"
	"boardcode-go/imxrt/runmode"
)

type domainReport struct {
	clock.Setting `yaml:",inline"`
	MaxHz         uint32 `yaml:"max_hz"`
}

type freqReport struct {
	Mode       string         `yaml:"mode"`
	Millivolts uint32         `yaml:"vdd_soc_mv"`
	Domains    []domainReport `yaml:"domains"`
}

func buildFreqReport(m runmode.RunMode) freqReport {
	r := freqReport{Mode: m.String(), Millivolts: dcdc.TargetMillivolts(m)}
	ceil := clock.Ceilings(m)
	for i, s := range clock.Plan(m) {
		r.Domains = append(r.Domains, domainReport{Setting: s, MaxHz: ceil[i].MaxHz})
	}
	return r
}

var freqOpts = struct {
	mode string
}{}

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Print root selections, dividers and frequencies for a run mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := runmode.Parse(freqOpts.mode)
		if !ok {
			return errcode.Wrap(errcode.InvalidParams, "freq", "unknown run mode "+freqOpts.mode)
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(buildFreqReport(m))
	},
}

func init() {
	freqCmd.Flags().StringVarP(&freqOpts.mode, "mode", "m", runmode.Overdrive.String(), "run mode")
}
