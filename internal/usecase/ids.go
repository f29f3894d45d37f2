package usecase

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces transaction identifiers.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator produces identifiers of the form TXN-<uuid>.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return "TXN-" + uuid.NewString()
}

// SequenceGenerator produces TXN-0001, TXN-0002, ... in order.
type SequenceGenerator struct {
	n atomic.Int64
}

func (g *SequenceGenerator) NextID() string {
	return fmt.Sprintf("TXN-%04d", g.n.Add(1))
}
