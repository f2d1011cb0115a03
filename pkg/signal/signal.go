// Package signal implements synchronous signal/slot notification.
//
// A Signal holds an ordered list of slots. Emit calls every connected slot in
// connection order on the emitting goroutine. A panicking slot is recovered
// and reported through the errors package; the remaining slots still run.
package signal

import (
	"github.com/go-fern/fern/pkg/errors"
)

// Signal is a list of parameterless slots. The zero value is ready to use.
// A Signal is not safe for concurrent use.
type Signal struct {
	name  string
	slots []*Connection
}

// Named returns a signal whose name prefixes recovered panic reports.
func Named(name string) Signal {
	return Signal{name: name}
}

// Connection is the handle returned by Connect.
type Connection struct {
	sig  *Signal
	slot func()
}

// Connect appends slot and returns its connection. A nil slot is ignored and
// yields a connection that is already disconnected.
func (s *Signal) Connect(slot func()) *Connection {
	c := &Connection{sig: s, slot: slot}
	if slot == nil {
		c.sig = nil
		return c
	}
	s.slots = append(s.slots, c)
	return c
}

// Disconnect removes the slot. Calling it more than once is a no-op.
func (c *Connection) Disconnect() {
	if c == nil || c.sig == nil {
		return
	}
	slots := c.sig.slots
	for i, other := range slots {
		if other == c {
			c.sig.slots = append(slots[:i:i], slots[i+1:]...)
			break
		}
	}
	c.sig = nil
}

// Connected reports whether the slot is still attached.
func (c *Connection) Connected() bool {
	return c != nil && c.sig != nil
}

// Len returns the number of connected slots.
func (s *Signal) Len() int {
	return len(s.slots)
}

// Emit calls every connected slot in connection order. Slots connected or
// disconnected during Emit take effect on the next emission.
func (s *Signal) Emit() {
	if len(s.slots) == 0 {
		return
	}
	slots := s.slots
	for _, c := range slots {
		s.call(c.slot)
	}
}

func (s *Signal) call(slot func()) {
	op := "signal.Emit"
	if s.name != "" {
		op = s.name + ".Emit"
	}
	defer errors.Recover(op)
	slot()
}
