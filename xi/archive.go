// This file contains the Archive type and the Record kind discriminator.
// Archive models a single decoded .DAT file: a homogeneous sequence of
// records of one kind, or a single sentinel Unknown record when the format
// could not be detected.

package xi

import "fmt"

// Kind identifies which of the four supported record kinds (or the Unknown
// sentinel) a Record holds.
type Kind byte

// Possible values of Kind.
const (
	KindNameId Kind = iota
	KindAbility
	KindSpell
	KindItem
	KindUnknown
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNameId:
		return "NameId"
	case KindAbility:
		return "Ability"
	case KindSpell:
		return "Spell"
	case KindItem:
		return "Item"
	case KindUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Record is a single decoded entry of an Archive. Exactly one of the
// pointer fields is non-nil, matching Kind; Unknown has no payload.
type Record struct {
	// Kind tags which payload field is populated.
	Kind Kind

	NameId  *NameId  `json:",omitempty"`
	Ability *Ability `json:",omitempty"`
	Spell   *Spell   `json:",omitempty"`
	Item    *Item    `json:",omitempty"`
}

// Archive is the decoded, in-memory catalog of one .DAT file: an ordered,
// append-only sequence of Records in the file's encounter order.
//
// An Archive returned by a loader is always internally consistent: its
// Records are either all of one Kind, or a single Record of KindUnknown.
type Archive struct {
	// Records holds the archive's records, in file encounter order.
	Records []Record
}

// Homogeneous reports whether the archive satisfies invariant I1: all
// records share the same Kind, or there is exactly one KindUnknown record.
func (a *Archive) Homogeneous() bool {
	if len(a.Records) == 0 {
		return true
	}
	kind := a.Records[0].Kind
	if kind == KindUnknown {
		return len(a.Records) == 1
	}
	for _, r := range a.Records[1:] {
		if r.Kind != kind {
			return false
		}
	}
	return true
}
