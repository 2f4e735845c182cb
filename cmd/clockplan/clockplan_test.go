package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"boardcode-go/board"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFreqCommand(t *testing.T) {
	out, err := run(t, "freq", "--mode", "overdrive")
	if err != nil {
		t.Fatal(err)
	}
	var r freqReport
	if err := yaml.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if r.Mode != "overdrive" || r.Millivolts != 1250 || len(r.Domains) != 6 {
		t.Fatalf("report = %+v", r)
	}
	ahb := r.Domains[0]
	if ahb.Domain != "ahb" || ahb.Selection != "pll6" || ahb.Hz != 500_000_000 || ahb.MaxHz != 500_000_000 {
		t.Fatalf("ahb = %+v", ahb)
	}
	for _, d := range r.Domains {
		if d.Hz > d.MaxHz {
			t.Fatalf("%s above ceiling", d.Domain)
		}
	}
}

func TestFreqUnknownMode(t *testing.T) {
	if _, err := run(t, "freq", "--mode", "turbo"); err == nil {
		t.Fatal("unknown mode accepted")
	}
	// Reset the flag for later tests.
	freqOpts.mode = "overdrive"
}

func TestTraceCommand(t *testing.T) {
	out, err := run(t, "trace")
	if err != nil {
		t.Fatal(err)
	}
	var r struct {
		Board  string  `yaml:"board"`
		Writes []write `yaml:"writes"`
	}
	if err := yaml.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if r.Board != board.Selected.Name || len(r.Writes) == 0 {
		t.Fatalf("trace = %+v", r)
	}
	if r.Writes[0].Reg != "DCDC_REG3" {
		t.Fatalf("first write to %s, want the regulator", r.Writes[0].Reg)
	}
	for _, w := range r.Writes {
		if !strings.HasPrefix(w.New, "0x") || len(w.New) != 10 {
			t.Fatalf("bad value %q", w.New)
		}
	}
}
