// Command nes6502 loads an iNES cartridge and runs it against the CPU core,
// optionally emitting a nestest-format trace or launching the interactive
// single-step viewer.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/urfave/cli.v2"

	"nes6502/cartridge"
	"nes6502/cpu"
	"nes6502/debug"
	"nes6502/mem"
)

func main() {
	app := &cli.App{
		Name:  "nes6502",
		Usage: "cycle-accurate 6502 CPU core with a minimal NES bus",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "load a cartridge and execute it",
				ArgsUsage: "<cartridge.nes>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "start-pc",
						Usage: "override PC after reset, in hex (e.g. C000, for nestest/timingtest entry points)",
					},
					&cli.StringFlag{
						Name:  "trace",
						Usage: "write one nestest-format line per instruction to this file, or - for stdout",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "launch the interactive single-step viewer instead of free-running",
					},
					&cli.IntFlag{
						Name:  "max-instructions",
						Usage: "stop after N instructions (0 = run until BRK)",
					},
				},
				Action: runCartridge,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCartridge(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("nes6502 run: missing <cartridge.nes>", 1)
	}

	cart, err := cartridge.LoadFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	bus := mem.New(cart)
	proc := cpu.New(bus)
	proc.Reset()

	if s := c.String("start-pc"); s != "" {
		pc, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return cli.Exit(fmt.Sprintf("nes6502 run: invalid --start-pc %q: %v", s, err), 1)
		}
		proc.PC = uint16(pc)
	}

	// Reset enqueues its 7-cycle dummy wait directly, bypassing Clock, so
	// this Step call only drains that wait and fetches nothing: it must run
	// before the trace loop below, or the loop's first line would describe
	// a not-yet-fetched instruction at the wrong PC and cycle count.
	proc.Step()

	if c.Bool("debug") {
		return debug.Run(proc, bus)
	}

	var traceOut io.Writer
	if t := c.String("trace"); t != "" {
		if t == "-" {
			traceOut = os.Stdout
		} else {
			f, err := os.Create(t)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer f.Close()
			traceOut = f
		}
	}

	formatter := cpu.TraceFormatter{}
	maxInstructions := c.Int("max-instructions")
	for n := 0; maxInstructions == 0 || n < maxInstructions; n++ {
		proc.Step()
		if traceOut != nil {
			fmt.Fprintln(traceOut, formatter.Line(proc))
		}
		if proc.CurrentInstruction().Mnemonic == "BRK" {
			break
		}
	}
	return nil
}
