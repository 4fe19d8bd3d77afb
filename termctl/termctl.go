// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package termctl implements the headless keyboard control collaborator:
// a raw-mode stdin reader that feeds single keystrokes to a headless
// render loop (quit / save-frame), for running a cmd/ demo without an
// ebiten window.
package termctl

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Controller reads raw stdin in the background and routes single bytes
// to a caller-supplied handler, translating the usual raw-mode quirks
// (CR for Enter, DEL for Backspace) the way an interactive terminal
// session would.
type Controller struct {
	onKey func(byte)

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// New creates a controller that calls onKey for every byte read from
// stdin once Start is called.
func New(onKey func(byte)) *Controller {
	return &Controller{
		onKey:  onKey,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading in a
// background goroutine. Call Stop to restore stdin before the process
// exits.
func (c *Controller) Start() {
	c.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termctl: failed to set raw mode: %v\n", err)
		close(c.done)
		return
	}
	c.oldTermState = oldState

	if err := syscall.SetNonblock(c.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "termctl: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
		close(c.done)
		return
	}
	c.nonblockSet = true

	go func() {
		defer close(c.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-c.stopCh:
				return
			default:
			}

			n, err := syscall.Read(c.fd, buf)
			if n > 0 {
				b := buf[0]
				if b == '\r' {
					b = '\n'
				}
				if b == 0x7F {
					b = 0x08
				}
				if c.onKey != nil {
					c.onKey(b)
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop terminates the reading goroutine and restores stdin to its
// original mode. Safe to call multiple times.
func (c *Controller) Stop() {
	c.stopped.Do(func() {
		close(c.stopCh)
	})
	<-c.done
	if c.nonblockSet {
		_ = syscall.SetNonblock(c.fd, false)
		c.nonblockSet = false
	}
	if c.oldTermState != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
	}
}
