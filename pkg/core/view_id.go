package core

import (
	"strconv"
	"sync/atomic"

	"github.com/go-drift/finestra/pkg/errors"
)

// ViewID is the identity of an interactive native widget within one view
// tree build. IDs are issued by an IDGenerator, never reused within a build
// and never change after issuance.
type ViewID uint32

const (
	// NoView is the zero ViewID; no widget ever carries it.
	NoView ViewID = 0

	// FirstViewID is the first identity an IDGenerator issues.
	FirstViewID ViewID = 1

	// MaxViewID is the largest identity an IDGenerator issues. Win32 reports
	// control notifications with the control identifier in the low word of
	// WPARAM, so every ViewID must fit into 16 bits to survive the round trip.
	MaxViewID ViewID = 0xFFFF
)

func (id ViewID) String() string {
	return "view#" + strconv.FormatUint(uint64(id), 10)
}

// IDGenerator issues monotonically increasing ViewIDs starting at
// FirstViewID. The zero value is ready to use and safe for concurrent use.
type IDGenerator struct {
	last atomic.Uint32
}

// Next returns the next unused identity. Running out of the 16-bit identity
// space is fatal.
func (g *IDGenerator) Next() ViewID {
	id := ViewID(g.last.Add(1))
	if id > MaxViewID {
		errors.Fatal("core.IDGenerator.Next", errors.KindExhausted,
			"more than %d views in one tree", MaxViewID)
	}
	return id
}

// Issued returns how many identities have been handed out.
func (g *IDGenerator) Issued() int {
	return int(min(g.last.Load(), uint32(MaxViewID)))
}
