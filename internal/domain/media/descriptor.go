package media

import (
	"fmt"

	"github.com/google/uuid"
)

// ResourceDescriptor is one batched request unit: a resource type, the set of
// entity ids to resolve media for, and optionally the tags wanted (nil or
// empty Tags means all tags).
type ResourceDescriptor struct {
	Type ResourceType
	IDs  []uuid.UUID
	Tags []Tag
}

// Validate rejects descriptors naming an unknown resource type or tag.
// Unknown values are a programmer error, not bad data.
func (d ResourceDescriptor) Validate() error {
	if !d.Type.Valid() {
		return fmt.Errorf("descriptor has unknown resource type %q", string(d.Type))
	}
	for _, t := range d.Tags {
		if !t.Valid() {
			return fmt.Errorf("descriptor has unknown media tag %q", string(t))
		}
	}
	return nil
}

// DedupedIDs returns the identifier set with duplicates and nil ids removed,
// so repeated ids never grow the store predicate.
func (d ResourceDescriptor) DedupedIDs() []uuid.UUID {
	if len(d.IDs) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(d.IDs))
	out := make([]uuid.UUID, 0, len(d.IDs))
	for _, id := range d.IDs {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
