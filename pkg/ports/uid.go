package ports

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"
)

// UIDGenerator defines how a fresh record identifier is obtained.
// Implementations must never return uuid.Nil.
type UIDGenerator interface {
	NewUID() uuid.UUID
}

// RandomUIDs generates random (version 4) identifiers.
type RandomUIDs struct{}

func (RandomUIDs) NewUID() uuid.UUID { return uuid.New() }

// SequentialUIDs hands out 00000000-0000-0000-0000-000000000001, ...002 and so on.
type SequentialUIDs struct {
	next atomic.Uint64
}

func (s *SequentialUIDs) NewUID() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], s.next.Add(1))
	return id
}
