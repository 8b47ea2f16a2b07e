// main.go - Driver: wires the default machine map, an optional UART,
// and a CPU together, then runs until the core halts.
//
// Grounded on the host engine's flag-parsed config struct and step
// loop shape (its cmd/ie32to64 driver and CPU runner), adapted to a
// single 8086 core instead of a multi-CPU multi-machine harness.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zaynotley/xt8086emu/cpu86"
	"github.com/zaynotley/xt8086emu/iobus"
	"github.com/zaynotley/xt8086emu/peripherals"
)

type config struct {
	biosPath      string
	biosOffset    int
	uartPort      uint
	uartDisabled  bool
	trace         bool
	maxInstrs     uint64
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("xt8086", flag.ContinueOnError)
	cfg := config{}
	fs.StringVar(&cfg.biosPath, "bios", "", "path to a system ROM image (required)")
	fs.IntVar(&cfg.biosOffset, "bios-offset", 0, "byte offset of the image within the 40KiB system ROM region")
	fs.UintVar(&cfg.uartPort, "uart-port", 0x3F8, "base I/O port for the console UART")
	fs.BoolVar(&cfg.uartDisabled, "no-uart", false, "run without attaching a console UART")
	fs.BoolVar(&cfg.trace, "trace", false, "log a register dump before every instruction")
	fs.Uint64Var(&cfg.maxInstrs, "max-instructions", 0, "stop after this many instructions even if not halted (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.biosPath == "" {
		return config{}, fmt.Errorf("xt8086: -bios is required")
	}
	return cfg, nil
}

func run(cfg config, log iobus.Logger) error {
	bus, err := iobus.NewDefaultMachine(log, cfg.biosPath, cfg.biosOffset)
	if err != nil {
		return fmt.Errorf("xt8086: %w", err)
	}

	var uart *peripherals.UART
	if !cfg.uartDisabled {
		uart = peripherals.NewUART(os.Stdin, os.Stdout)
		uart.Attach(bus, uint16(cfg.uartPort))
		if err := uart.Start(); err != nil {
			return fmt.Errorf("xt8086: starting console UART: %w", err)
		}
		defer uart.Stop()
	}

	c := cpu86.New(bus, log)
	c.Reset()

	var executed uint64
	for !c.Halted {
		if cfg.trace {
			fmt.Fprintf(os.Stderr, "xt8086: %s\n", c)
		}
		c.Step()
		executed++
		if cfg.maxInstrs != 0 && executed >= cfg.maxInstrs {
			fmt.Fprintf(os.Stderr, "xt8086: stopped after %d instructions (max-instructions reached)\n", executed)
			break
		}
	}

	fmt.Fprintf(os.Stderr, "xt8086: halted after %d instructions\n", executed)
	fmt.Fprintf(os.Stderr, "xt8086: %s\n", c)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, iobus.StderrLogger{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
