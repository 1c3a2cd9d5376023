// This file contains the Ability record type: job and weapon skill
// abilities, stored in consecutive 0x400-byte frames.

package xi

// AbilityFrameSize is the fixed size, in bytes, of one ability record's
// frame, including its structured prefix and trailing pad.
const AbilityFrameSize = 0x400

// Ability models a job or weapon skill ability.
type Ability struct {
	// Index of the ability.
	Index uint16

	// IconID identifies the ability's icon resource.
	IconID uint16

	// MPCost is the MP cost to use the ability, if any.
	MPCost uint16

	// Unknown is an unidentified field, preserved verbatim.
	Unknown uint16

	// Targets is a xicore.TargetFlag bitmask of valid targets.
	Targets uint16

	// Name of the ability.
	Name string

	// Description of the ability.
	Description string
}
