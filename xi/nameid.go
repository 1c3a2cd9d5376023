// This file contains the NameId record type: a flat name/numeric-id pair,
// used for zone and NPC/monster name tables.

package xi

// NameId models a single name/ID pair record.
//
// The conventional first entry of a NameId archive is the sentinel
// {Name: "none", Id: 0}; it is not an end marker, it is data like any other
// entry (see the Open Questions section of DESIGN.md).
type NameId struct {
	// Name is the zero-padded, fixed-width 28-byte name, trimmed of its
	// trailing zero padding.
	Name string

	// Id is the numeric identifier for Name.
	// High bits commonly encode a zone, low bits a monster/NPC index
	// (0x010nnmmm: nn == zone, mmm == monster/npc id), but this structure
	// is not enforced or interpreted here.
	Id uint32
}
