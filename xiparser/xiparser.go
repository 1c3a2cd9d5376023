// Package xiparser loads a raw .DAT archive buffer into the data model
// defined by package xi. Parse is the single entry point: it detects the
// archive's format, decodes it, and dispatches to the matching record
// parser. File I/O is deliberately left to callers (see cmd/xidat): this
// package only ever sees bytes already in memory.
package xiparser

import (
	"fmt"

	"github.com/ffxitools/xidat/xi"
	"github.com/ffxitools/xidat/xi/xicore"
	"github.com/ffxitools/xidat/xiparser/xidecoder"
)

// ErrParsing wraps an unexpected failure recovered while parsing. Go has no
// analogue of a checked allocation failure; this is the closest equivalent,
// recovering a panic into a plain error the way a C caller would receive a
// NULL archive.
var ErrParsing = fmt.Errorf("xidat: parsing failed")

// Parse detects data's format and decodes it into an Archive. Detection
// tries NameId, Ability, Spell, then Item, in that fixed order, and stops at
// the first match (§4.2); if none match, Parse returns a single KindUnknown
// record rather than an error (I1).
//
// Parse takes ownership of a private copy of data before decoding: Item
// archives are decoded whole-buffer in place, and Parse must never mutate
// the caller's slice (§5).
func Parse(data []byte) (archive *xi.Archive, err error) {
	defer func() {
		if r := recover(); r != nil {
			archive = nil
			err = fmt.Errorf("%w: %v", ErrParsing, r)
		}
	}()

	buf := make([]byte, len(data))
	copy(buf, data)

	switch {
	case xidecoder.DetectNameId(buf):
		return &xi.Archive{Records: parseNameId(buf)}, nil

	case xidecoder.DetectAbility(buf):
		return &xi.Archive{Records: parseAbility(buf)}, nil

	case xidecoder.DetectSpell(buf):
		return &xi.Archive{Records: parseSpell(buf)}, nil

	case xidecoder.DetectItem(buf):
		xidecoder.Decode(buf, xidecoder.ItemFixedRotation)
		return &xi.Archive{Records: parseItem(buf)}, nil

	default:
		return &xi.Archive{Records: []xi.Record{{Kind: xi.KindUnknown}}}, nil
	}
}

// nameIdEntrySize is the byte size of one NameId record: a 28-byte
// zero-padded name followed by a 4-byte little-endian id.
const nameIdEntrySize = 28 + 4

// parseNameId reads consecutive, unencrypted name/id pairs until fewer than
// nameIdEntrySize bytes remain.
func parseNameId(data []byte) []xi.Record {
	sr := sliceReader{b: data}

	var records []xi.Record
	for {
		name, ok := sr.peekFull(28)
		if !ok {
			break
		}
		sr.seek(sr.pos + 28)

		id, ok := sr.getUint32()
		if !ok {
			break
		}

		records = append(records, xi.Record{
			Kind: xi.KindNameId,
			NameId: &xi.NameId{
				Name: cString(name),
				Id:   id,
			},
		})
	}
	return records
}

// parseAbility reads consecutive AbilityFrameSize frames, each decoded in
// place with the content-derived variable-encryption rotation, until fewer
// than a full frame remains.
func parseAbility(data []byte) []xi.Record {
	sr := sliceReader{b: data}

	var records []xi.Record
	for sr.remaining() >= xi.AbilityFrameSize {
		frame, ok := sr.peekFull(xi.AbilityFrameSize)
		if !ok {
			break
		}
		xidecoder.Decode(frame, xidecoder.VariableEncryptionSeed(frame))

		frameStart := sr.pos
		index, ok := sr.getUint16()
		if !ok {
			break
		}
		iconID, ok := sr.getUint16()
		if !ok {
			break
		}
		mpCost, ok := sr.getUint16()
		if !ok {
			break
		}
		unknown, ok := sr.getUint16()
		if !ok {
			break
		}
		targets, ok := sr.getUint16()
		if !ok {
			break
		}
		name := make([]byte, 32)
		if !sr.readFull(name) {
			break
		}
		description := make([]byte, 256)
		if !sr.readFull(description) {
			break
		}

		records = append(records, xi.Record{
			Kind: xi.KindAbility,
			Ability: &xi.Ability{
				Index:       index,
				IconID:      iconID,
				MPCost:      mpCost,
				Unknown:     unknown,
				Targets:     targets,
				Name:        cString(name),
				Description: cString(description),
			},
		})

		sr.seek(frameStart + xi.AbilityFrameSize)
	}
	return records
}

// parseSpell reads consecutive SpellFrameSize frames, the same framing as
// parseAbility.
func parseSpell(data []byte) []xi.Record {
	sr := sliceReader{b: data}

	var records []xi.Record
	for sr.remaining() >= xi.SpellFrameSize {
		frame, ok := sr.peekFull(xi.SpellFrameSize)
		if !ok {
			break
		}
		xidecoder.Decode(frame, xidecoder.VariableEncryptionSeed(frame))

		frameStart := sr.pos
		index, ok := sr.getUint16()
		if !ok {
			break
		}
		typ, ok := sr.getUint16()
		if !ok {
			break
		}
		element, ok := sr.getUint16()
		if !ok {
			break
		}
		targets, ok := sr.getUint16()
		if !ok {
			break
		}
		skill, ok := sr.getUint16()
		if !ok {
			break
		}
		mpCost, ok := sr.getUint16()
		if !ok {
			break
		}
		castingTime, ok := sr.getByte()
		if !ok {
			break
		}
		recastDelay, ok := sr.getByte()
		if !ok {
			break
		}
		var level [xi.SpellLevelTableSize]uint8
		levelBytes := make([]byte, xi.SpellLevelTableSize)
		if !sr.readFull(levelBytes) {
			break
		}
		copy(level[:], levelBytes)
		id, ok := sr.getUint16()
		if !ok {
			break
		}
		unknown, ok := sr.getByte()
		if !ok {
			break
		}
		jpName := make([]byte, 20)
		if !sr.readFull(jpName) {
			break
		}
		enName := make([]byte, 20)
		if !sr.readFull(enName) {
			break
		}
		jpDescription := make([]byte, 128)
		if !sr.readFull(jpDescription) {
			break
		}
		enDescription := make([]byte, 128)
		if !sr.readFull(enDescription) {
			break
		}

		records = append(records, xi.Record{
			Kind: xi.KindSpell,
			Spell: &xi.Spell{
				Index:         index,
				Type:          typ,
				Element:       element,
				Targets:       targets,
				Skill:         skill,
				MPCost:        mpCost,
				CastingTime:   castingTime,
				RecastDelay:   recastDelay,
				Level:         level,
				Id:            id,
				Unknown:       unknown,
				JPName:        jpString(jpName),
				ENName:        cString(enName),
				JPDescription: jpString(jpDescription),
				ENDescription: cString(enDescription),
			},
		})

		sr.seek(frameStart + xi.SpellFrameSize)
	}
	return records
}

// parseItem reads consecutive item slots from a whole-buffer-decoded
// buffer. Each slot's header selects a subtype payload per the
// discrimination rule (type first, the Usable flag only as a fallback),
// followed by a string subsection; the slot's fixed stride then advances
// the cursor to the next header.
func parseItem(data []byte) []xi.Record {
	sr := sliceReader{b: data}

	var records []xi.Record
	for {
		id, ok := sr.getUint32()
		if !ok {
			break
		}
		flags, ok := sr.getUint16()
		if !ok {
			break
		}
		stack, ok := sr.getUint16()
		if !ok {
			break
		}
		typ, ok := sr.getUint16()
		if !ok {
			break
		}
		resource, ok := sr.getUint16()
		if !ok {
			break
		}
		targets, ok := sr.getUint16()
		if !ok {
			break
		}
		cursorAfterHeader := sr.pos

		subtype, ok := parseItemSubtype(&sr, typ, flags)
		if !ok {
			break
		}

		strings := readStringSection(&sr)

		records = append(records, xi.Record{
			Kind: xi.KindItem,
			Item: &xi.Item{
				Id:       id,
				Flags:    flags,
				Stack:    stack,
				Type:     typ,
				Resource: resource,
				Targets:  targets,
				Subtype:  subtype,
				Strings:  strings,
			},
		})

		// next = cursor_after_header + 0x202 + 0xA00 - 16, preserved
		// verbatim from the source's slot-stride arithmetic (§4.4); it
		// runs 16 bytes past the ItemSlotSize the format description
		// gives for a slot measured from its own start.
		next := cursorAfterHeader + 0x202 + 0xA00 - 16
		sr.seek(next)
	}
	return records
}

// parseItemSubtype reads the subtype payload selected by typ/flags, if any,
// leaving sr positioned at the start of the string subsection. ok is false
// only when a required field could not be read (a short buffer mid-record),
// signaling the caller to abandon the whole loop per the recovery-point
// discipline (§7).
func parseItemSubtype(sr *sliceReader, typ uint16, flags uint16) (xi.ItemSubtype, bool) {
	switch typ {
	case xicore.ItemTypeWeapon.ID:
		level, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		slots, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		races, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		jobs, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		damage, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		delay, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		dps, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		skill, ok := sr.getByte()
		if !ok {
			return nil, false
		}
		jugSize, ok := sr.getByte()
		if !ok {
			return nil, false
		}
		unknown, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		maxCharges, ok := sr.getByte()
		if !ok {
			return nil, false
		}
		castingTime, ok := sr.getByte()
		if !ok {
			return nil, false
		}
		useDelay, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		reuseDelay, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		unknown2, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		return &xi.ItemWeapon{
			Level: level, Slots: slots, Races: races, Jobs: jobs,
			Damage: damage, Delay: delay, DPS: dps,
			Skill: skill, JugSize: jugSize, Unknown: unknown,
			MaxCharges: maxCharges, CastingTime: castingTime, UseDelay: useDelay,
			ReuseDelay: reuseDelay, Unknown2: unknown2,
		}, true

	case xicore.ItemTypeArmor.ID:
		level, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		slots, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		races, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		jobs, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		shieldSize, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		maxCharges, ok := sr.getByte()
		if !ok {
			return nil, false
		}
		castingTime, ok := sr.getByte()
		if !ok {
			return nil, false
		}
		useDelay, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		unknown, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		reuseDelay, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		unknown2, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		return &xi.ItemArmor{
			Level: level, Slots: slots, Races: races, Jobs: jobs,
			ShieldSize: shieldSize,
			MaxCharges: maxCharges, CastingTime: castingTime, UseDelay: useDelay,
			Unknown: unknown, ReuseDelay: reuseDelay, Unknown2: unknown2,
		}, true

	case xicore.ItemTypePuppet.ID:
		slot, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		elementCharge, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		unknown, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		return &xi.ItemPuppet{Slot: slot, ElementCharge: elementCharge, Unknown: unknown}, true

	case xicore.ItemTypeFurnishing.ID, xicore.ItemTypeMannequin.ID, xicore.ItemTypeFlowerpot.ID:
		element, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		storageSlots, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		return &xi.ItemGeneral{Element: element, StorageSlots: storageSlots}, true

	default:
		if !xicore.ItemFlagUsable.Has(flags) {
			return nil, true
		}
		activationTime, ok := sr.getUint16()
		if !ok {
			return nil, false
		}
		unknown, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		unknown2, ok := sr.getUint32()
		if !ok {
			return nil, false
		}
		return &xi.ItemUsable{ActivationTime: activationTime, Unknown: unknown, Unknown2: unknown2}, true
	}
}
