// uart.go - A 16450-lite UART: THR/RBR and a line-status port,
// bridging the host terminal to the emulated machine's port space.
//
// Grounded on terminal_host.go's TerminalHost: a background goroutine
// puts the host terminal in raw mode and feeds a mutex-guarded byte
// queue that the synchronous port-read callback drains from, so a
// CPU.Step call is never blocked waiting on host I/O.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package peripherals

import (
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/zaynotley/xt8086emu/iobus"
)

const (
	lsrDataReady = 1 << 0
	lsrTHREmpty  = 1 << 5
)

// UART is a minimal serial port: writing to its data port sends a
// byte to the host's stdout, reading from it drains a byte queued by
// keystrokes from the host's stdin, and its status port reports
// whether a received byte is waiting.
type UART struct {
	mu sync.Mutex
	rx []byte

	stdin  *os.File
	stdout *os.File

	oldState *term.State
	stop     chan struct{}
	done     chan struct{}
}

// NewUART builds a UART wired to the given host streams. Passing
// os.Stdin/os.Stdout is the common case; tests substitute pipes.
func NewUART(stdin, stdout *os.File) *UART {
	return &UART{stdin: stdin, stdout: stdout}
}

// Attach registers the UART's two ports on bus: base is the data
// register (RBR on read, THR on write), base+1 is the line status
// register.
func (u *UART) Attach(bus *iobus.Bus, base uint16) {
	bus.AttachPort(iobus.PortRegistration{
		Port:  base,
		Read:  u.readRBR,
		Write: u.writeTHR,
	})
	bus.AttachPort(iobus.PortRegistration{
		Port: base + 1,
		Read: u.readLSR,
	})
}

// Start puts the host terminal into raw mode and begins reading
// keystrokes into the receive queue. It's a no-op error if stdin
// isn't a terminal (e.g. when running under a test harness or with
// input redirected from a file) — the UART then simply never
// receives anything.
func (u *UART) Start() error {
	fd := int(u.stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	u.oldState = state
	u.stop = make(chan struct{})
	u.done = make(chan struct{})
	go u.readLoop()
	return nil
}

// Stop restores the host terminal's original mode and halts the
// reader goroutine, if either was started.
func (u *UART) Stop() {
	if u.stop != nil {
		close(u.stop)
		<-u.done
	}
	if u.oldState != nil {
		term.Restore(int(u.stdin.Fd()), u.oldState)
	}
}

func (u *UART) readLoop() {
	defer close(u.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-u.stop:
			return
		default:
		}
		n, err := u.stdin.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			u.mu.Lock()
			u.rx = append(u.rx, buf[0])
			u.mu.Unlock()
		}
	}
}

func (u *UART) readRBR() byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.rx) == 0 {
		return 0
	}
	b := u.rx[0]
	u.rx = u.rx[1:]
	return b
}

func (u *UART) writeTHR(v byte) {
	u.stdout.Write([]byte{v})
}

func (u *UART) readLSR() byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	status := byte(lsrTHREmpty) // the host stream is always ready to accept a byte
	if len(u.rx) > 0 {
		status |= lsrDataReady
	}
	return status
}
