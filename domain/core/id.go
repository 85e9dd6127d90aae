package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	OfficialID ID
	PromiseID  ID
	VoteID     ID
	FlagID     ID
	RunID      ID
)

// String conversions for domain IDs
func (id OfficialID) String() string { return ID(id).String() }
func (id PromiseID) String() string  { return ID(id).String() }
func (id VoteID) String() string     { return ID(id).String() }
func (id FlagID) String() string     { return ID(id).String() }
func (id RunID) String() string      { return ID(id).String() }

// ParseOfficialID parses a string into OfficialID
func ParseOfficialID(s string) (OfficialID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("official ID cannot be empty")
	}
	return OfficialID(s), nil
}

// NewFlagID creates a unique identifier for a red flag
func NewFlagID() FlagID {
	return FlagID(NewID())
}

// NewRunID creates a unique identifier for an analysis run
func NewRunID() RunID {
	return RunID(NewID())
}

// IDSource produces flag and run identifiers. The default source is
// random (UUID v7); a sequential source exists so idempotence tests can
// compare full pipeline output byte for byte.
type IDSource interface {
	FlagID() FlagID
	RunID() RunID
}

// RandomIDSource generates UUID-backed identifiers.
type RandomIDSource struct{}

func (RandomIDSource) FlagID() FlagID { return NewFlagID() }
func (RandomIDSource) RunID() RunID   { return NewRunID() }

// SequentialIDSource generates deterministic identifiers from a prefix
// and a counter. Not safe for concurrent use; intended for tests and
// reproducible runs.
type SequentialIDSource struct {
	Prefix string
	n      int
}

func (s *SequentialIDSource) FlagID() FlagID {
	s.n++
	return FlagID(fmt.Sprintf("%s-flag-%04d", s.Prefix, s.n))
}

func (s *SequentialIDSource) RunID() RunID {
	s.n++
	return RunID(fmt.Sprintf("%s-run-%04d", s.Prefix, s.n))
}
