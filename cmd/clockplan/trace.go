package main

import (
	"gopkg.in/yaml.v3"

	"github.com/spf13/cobra"

	"boardcode-go/board"
	"boardcode-go/errcode"
	"boardcode-go/imxrt/clock"
	"boardcode-go/platform"
	"boardcode-go/x/conv"
)

type write struct {
	Reg string `yaml:"reg"`
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

var boards = map[string]board.Descriptor{
	board.IMXRT1010EVK.Name: board.IMXRT1010EVK,
}

// buildTrace runs the clock configuration for d against a simulated chip
// and returns every register write in order.
func buildTrace(d board.Descriptor) ([]write, error) {
	f := platform.NewSim(nil)
	if err := clock.Configure(f, d.RunMode, d.Gates); err != nil {
		return nil, err
	}
	var out []write
	for _, a := range f.Trace() {
		out = append(out, write{Reg: a.Reg.String(), Old: conv.Hex32(a.Old), New: conv.Hex32(a.New)})
	}
	return out, nil
}

var traceOpts = struct {
	board string
}{}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the register writes clock bring-up performs",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := boards[traceOpts.board]
		if !ok {
			return errcode.Wrap(errcode.InvalidParams, "trace", "unknown board "+traceOpts.board)
		}
		writes, err := buildTrace(d)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(map[string]any{"board": d.Name, "writes": writes})
	},
}

func init() {
	traceCmd.Flags().StringVarP(&traceOpts.board, "board", "b", board.Selected.Name, "board descriptor")
}
