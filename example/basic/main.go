package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Pietroro/ka3305p"
	ka3305p_serial "github.com/Pietroro/ka3305p/serial"
	"github.com/kellegous/poop"
)

func main() {
	if err := run(context.Background()); err != nil {
		poop.HitFan(err)
	}
}

func run(ctx context.Context) error {
	var volts, amps float64
	var output bool
	flag.Float64Var(
		&volts,
		"set-voltage",
		13.37,
		"voltage setpoint for channel 1",
	)
	flag.Float64Var(
		&amps,
		"set-current",
		1.5,
		"current setpoint for channel 1",
	)
	flag.BoolVar(
		&output,
		"output",
		false,
		"turn the output on",
	)
	flag.Parse()

	if flag.NArg() != 1 {
		return poop.Newf("expected 1 argument (the serial port), got %d", flag.NArg())
	}

	psu, err := ka3305p_serial.Connect(ctx, flag.Arg(0))
	if err != nil {
		return poop.Chain(err)
	}
	defer psu.Close()

	idn, err := psu.Identify(ctx)
	if err != nil {
		return poop.Chain(err)
	}
	fmt.Printf("instrument: %s\n", idn)

	if err := psu.SetVoltage(ctx, ka3305p.Channel1, volts); err != nil {
		return poop.Chain(err)
	}

	if err := psu.SetCurrent(ctx, ka3305p.Channel1, amps); err != nil {
		return poop.Chain(err)
	}

	if err := psu.SetOutput(ctx, output); err != nil {
		return poop.Chain(err)
	}

	v, err := psu.ReadVoltage(ctx, ka3305p.Channel1)
	if err != nil {
		return poop.Chain(err)
	}
	fmt.Printf("channel 1: %.2f V\n", v)

	status, err := psu.GetStatus(ctx)
	if err != nil {
		return poop.Chain(err)
	}
	fmt.Printf("status: %s\n", status)

	return nil
}
