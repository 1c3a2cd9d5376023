// This file implements the four format probes used to classify an archive
// buffer without a magic number. Detectors never mutate the caller's bytes:
// each one that needs a decoded view works on a throwaway copy of the
// buffer's head. Probes run in the fixed order NameId, Ability, Spell, Item;
// the loader stops at the first match.

package xidecoder

import (
	"bytes"

	"github.com/ffxitools/xidat/xi/xicore"
)

// nameIdSentinel is the first 32 bytes of a NameId archive: the ASCII
// "none" followed by 28 zero bytes (the conventional sentinel entry,
// detected unencrypted).
var nameIdSentinel = append([]byte("none"), make([]byte, 28)...)

// DetectNameId reports whether data is a NameId archive.
func DetectNameId(data []byte) bool {
	return len(data) >= 32 && bytes.Equal(data[:32], nameIdSentinel)
}

// abilityPrefixSize is the byte size of an Ability record's structured
// prefix (5 uint16 fields, a 32-byte name, a 256-byte description),
// excluding the trailing pad that brings a frame to AbilityFrameSize.
const abilityPrefixSize = 2*5 + 32 + 256

// DetectAbility reports whether data is an Ability archive. It requires at
// least one full 0x400-byte frame to be present, but only trial-decodes and
// inspects the structured prefix.
func DetectAbility(data []byte) bool {
	const frameSize = 0x400
	if len(data) < frameSize {
		return false
	}

	head := make([]byte, abilityPrefixSize)
	copy(head, data[:abilityPrefixSize])
	Decode(head, VariableEncryptionSeed(head))

	index := le16(head[0:])
	iconID := le16(head[2:])
	mpCost := le16(head[4:])
	targets := le16(head[8:])
	name := head[10 : 10+32]
	description := head[10+32:]

	return index == 0 && iconID == 11776 && mpCost == 0 && targets == 1 &&
		name[0] == '.' && description[0] == '.'
}

// spellPrefixSize is the byte size of a Spell record's structured prefix,
// excluding the trailing pad that brings a frame to SpellFrameSize.
const spellPrefixSize = 2*6 + 1*2 + 24 + 2 + 1 + 20 + 20 + 128 + 128

// DetectSpell reports whether data is a Spell archive. Same trial-decode
// strategy as DetectAbility.
func DetectSpell(data []byte) bool {
	const frameSize = 0x400
	if len(data) < frameSize {
		return false
	}

	head := make([]byte, spellPrefixSize)
	copy(head, data[:spellPrefixSize])
	Decode(head, VariableEncryptionSeed(head))

	index := le16(head[0:])
	typ := le16(head[2:])
	element := le16(head[4:])
	targets := le16(head[6:])
	skill := le16(head[8:])
	mpCost := le16(head[10:])

	return index == 0 && typ == 0 && element == 6 && targets == 63 &&
		skill == 32 && mpCost == 0
}

// ItemHeaderSize is the byte size of an Item record's fixed header:
// id(u32), flags, stack, type, resource, targets (u16 x5).
const ItemHeaderSize = 4 + 2*5

// ItemFixedRotation is the whole-buffer rotation applied to Item archives;
// unlike Ability/Spell, Item uses a fixed (not content-derived) rotation.
const ItemFixedRotation = 5

// DetectItem reports whether data is an Item archive.
func DetectItem(data []byte) bool {
	if len(data) < ItemHeaderSize {
		return false
	}

	head := make([]byte, ItemHeaderSize)
	copy(head, data[:ItemHeaderSize])
	Decode(head, ItemFixedRotation)

	id := le32(head[0:])
	typ := le16(head[8:])
	return id > 0 && typ != xicore.ItemTypeNone.ID
}

func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
