// This file contains the Spell record type: magic spells, stored in
// consecutive 0x400-byte frames, the same framing as Ability.

package xi

// SpellFrameSize is the fixed size, in bytes, of one spell record's frame,
// including its structured prefix and trailing pad.
const SpellFrameSize = 0x400

// SpellLevelTableSize is the number of per-job level entries in a spell's
// level table. Slot 0 belongs to the "none" job and is always 0xFF.
const SpellLevelTableSize = 24

// Spell models a magic spell.
type Spell struct {
	// Index of the spell.
	Index uint16

	// Type is the spell category (1-6 for White/Black/Summon/Ninja/Bard/Blue).
	Type uint16

	// Element of the spell.
	Element uint16

	// Targets is a xicore.TargetFlag bitmask of valid targets.
	Targets uint16

	// Skill is the magic skill used to cast the spell.
	Skill uint16

	// MPCost is the MP cost to cast the spell.
	MPCost uint16

	// CastingTime in quarters of a second.
	CastingTime uint8

	// RecastDelay in quarters of a second.
	RecastDelay uint8

	// Level is the per-job minimum level required to learn the spell.
	// 0xFF means the job cannot learn it; slot 0 (the "none" job) is
	// always 0xFF.
	Level [SpellLevelTableSize]uint8

	// Id of the spell; 0 for unused spells. Often, but not always, equal
	// to Index.
	Id uint16

	// Unknown is an unidentified field, preserved verbatim.
	Unknown uint8

	// JPName is the Japanese name of the spell.
	JPName string

	// ENName is the English name of the spell.
	ENName string

	// JPDescription is the Japanese description of the spell.
	JPDescription string

	// ENDescription is the English description of the spell.
	ENDescription string
}
