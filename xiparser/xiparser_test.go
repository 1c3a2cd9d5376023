package xiparser

import (
	"encoding/binary"
	"testing"

	"github.com/ffxitools/xidat/xi"
	"github.com/ffxitools/xidat/xi/xicore"
	"github.com/ffxitools/xidat/xiparser/xidecoder"
)

// encodeForDecodeRotation returns the encrypted form of plain assuming the
// loader will later apply Decode(buf, decodeRotation) to recover it.
func encodeForDecodeRotation(plain []byte, decodeRotation int) []byte {
	enc := make([]byte, len(plain))
	for i, b := range plain {
		enc[i] = xidecoder.RotateRightByte(b, (8-decodeRotation)%8)
	}
	return enc
}

func putU16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }

func TestParseNameIdArchive(t *testing.T) {
	buf := make([]byte, 32+28+4+28+4)
	copy(buf, "none") // sentinel, remaining 28 bytes already zero

	copy(buf[32:], padName("Fire Crystal"))
	putU32(buf, 32+28, 0x4090)

	copy(buf[32+28+4:], padName("Ice Crystal"))
	putU32(buf, 32+28+4+28, 0x4091)

	archive, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(archive.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(archive.Records))
	}
	for _, r := range archive.Records {
		if r.Kind != xi.KindNameId {
			t.Fatalf("expected all records to be NameId, got %v", r.Kind)
		}
	}
	if archive.Records[0].NameId.Name != "none" || archive.Records[0].NameId.Id != 0 {
		t.Errorf("unexpected sentinel record: %+v", archive.Records[0].NameId)
	}
	if archive.Records[1].NameId.Name != "Fire Crystal" || archive.Records[1].NameId.Id != 0x4090 {
		t.Errorf("unexpected record 1: %+v", archive.Records[1].NameId)
	}
	if archive.Records[2].NameId.Name != "Ice Crystal" || archive.Records[2].NameId.Id != 0x4091 {
		t.Errorf("unexpected record 2: %+v", archive.Records[2].NameId)
	}
}

func padName(name string) []byte {
	b := make([]byte, 28)
	copy(b, name)
	return b
}

func TestParseEmptyItem(t *testing.T) {
	plain := make([]byte, xi.ItemSlotSize)
	putU32(plain, 0, 0x1001)
	putU16(plain, 4, 0) // flags
	putU16(plain, 6, 99) // stack
	putU16(plain, 8, xicore.ItemTypeItem.ID) // type
	putU16(plain, 10, 0) // resource
	putU16(plain, 12, uint16(xicore.TargetSelf)) // targets
	// num_strings = 0 at offset 14, already zero.

	enc := encodeForDecodeRotation(plain, xidecoder.ItemFixedRotation)

	archive, err := Parse(enc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(archive.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(archive.Records))
	}
	item := archive.Records[0].Item
	if item == nil {
		t.Fatal("expected an Item record")
	}
	if item.Id != 0x1001 || item.Stack != 99 || item.Type != xicore.ItemTypeItem.ID {
		t.Errorf("unexpected item fields: %+v", item)
	}
	if item.Subtype != nil {
		t.Errorf("expected nil subtype, got %T", item.Subtype)
	}
	if len(item.Strings) != 0 {
		t.Errorf("expected no strings, got %d", len(item.Strings))
	}
}

func TestParseWeaponItemWithStrings(t *testing.T) {
	const headerSize = 14
	const weaponSize = 34

	body1 := []byte("Bronze Knife")   // 12 bytes, chunk-aligned with a trailing zero chunk
	body2 := []byte("A basic knife.") // 14 bytes, terminator mid-chunk

	entry1Region := 4 + 24 + 16 // indicator + padding + 4 chunks
	entry2Region := 4 + 24 + 16

	stringSection := make([]byte, 4+16+entry1Region+entry2Region)
	putU32(stringSection, 0, 2) // num_strings
	offset1 := uint32(20)
	offset2 := offset1 + uint32(entry1Region)
	putU32(stringSection, 4, offset1)
	putU32(stringSection, 8, 0) // flags
	putU32(stringSection, 12, offset2)
	putU32(stringSection, 16, 0) // flags

	writeStringEntry := func(at uint32, body []byte) {
		putU32(stringSection, int(at), 1) // indicator
		copy(stringSection[at+4+24:], body)
	}
	writeStringEntry(offset1, body1)
	writeStringEntry(offset2, body2)

	plain := make([]byte, headerSize+weaponSize+len(stringSection))
	putU32(plain, 0, 0x2001)
	putU16(plain, 4, uint16(xicore.ItemFlagUsable|xicore.ItemFlagEquipable))
	putU16(plain, 6, 1) // stack
	putU16(plain, 8, xicore.ItemTypeWeapon.ID)
	putU16(plain, 10, 0) // resource
	putU16(plain, 12, 0) // targets

	weapon := plain[headerSize : headerSize+weaponSize]
	putU16(weapon, 10, 15)  // damage
	putU16(weapon, 12, 240) // delay
	putU16(weapon, 14, 375) // dps

	copy(plain[headerSize+weaponSize:], stringSection)

	enc := encodeForDecodeRotation(plain, xidecoder.ItemFixedRotation)

	archive, err := Parse(enc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(archive.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(archive.Records))
	}
	item := archive.Records[0].Item
	weaponSubtype, ok := item.Subtype.(*xi.ItemWeapon)
	if !ok {
		t.Fatalf("expected *xi.ItemWeapon subtype, got %T", item.Subtype)
	}
	if weaponSubtype.Damage != 15 || weaponSubtype.Delay != 240 || weaponSubtype.DPS != 375 {
		t.Errorf("unexpected weapon payload: %+v", weaponSubtype)
	}
	if len(item.Strings) != 2 {
		t.Fatalf("expected 2 strings, got %d", len(item.Strings))
	}
	if string(item.Strings[0].Data) != "Bronze Knife" || item.Strings[0].Length != 12 {
		t.Errorf("unexpected string 0: %+v", item.Strings[0])
	}
	if string(item.Strings[1].Data) != "A basic knife." || item.Strings[1].Length != 14 {
		t.Errorf("unexpected string 1: %+v", item.Strings[1])
	}
}

func TestParseAbilityFrame(t *testing.T) {
	plain := make([]byte, xi.AbilityFrameSize)
	// index, icon_id, mp_cost, unknown, targets
	putU16(plain, 2, 11776)
	putU16(plain, 8, 1)
	plain[10] = '.'
	plain[10+32] = '.'

	enc := encodeForDecodeRotation(plain, 7) // offsets 2, 11, 12 all decode to zero here

	archive, err := Parse(enc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(archive.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(archive.Records))
	}
	ability := archive.Records[0].Ability
	if ability == nil || ability.IconID != 11776 || ability.Targets != 1 {
		t.Errorf("unexpected ability record: %+v", ability)
	}
}

func TestParseSpellFrame(t *testing.T) {
	plain := make([]byte, xi.SpellFrameSize)
	// index = 0, type = 0 already zero.
	putU16(plain, 4, 6)  // element = 6
	putU16(plain, 6, 63) // targets = 63
	putU16(plain, 8, 32) // skill = 32
	// mp_cost (offset 10) already zero.
	plain[12] = 0 // casting_time, forces the seed to resolve to rotation 7
	plain[13] = 5 // recast_delay
	putU16(plain, 38, 1234) // id
	copy(plain[61:61+20], "Fire II")

	enc := encodeForDecodeRotation(plain, 7) // offsets 2, 11, 12 all decode to zero here

	archive, err := Parse(enc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(archive.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(archive.Records))
	}
	spell := archive.Records[0].Spell
	if spell == nil {
		t.Fatal("expected a Spell record")
	}
	if spell.Element != 6 || spell.Targets != 63 || spell.Skill != 32 {
		t.Errorf("unexpected spell header fields: %+v", spell)
	}
	if spell.RecastDelay != 5 || spell.Id != 1234 {
		t.Errorf("unexpected spell fields: %+v", spell)
	}
	if spell.ENName != "Fire II" {
		t.Errorf("unexpected spell name: %q", spell.ENName)
	}
}

func TestParseUnknownBuffer(t *testing.T) {
	buf := make([]byte, 64) // all zero: matches no detector
	archive, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(archive.Records) != 1 || archive.Records[0].Kind != xi.KindUnknown {
		t.Fatalf("expected single Unknown record, got %+v", archive.Records)
	}
}

func TestParseUsableItem(t *testing.T) {
	plain := make([]byte, headerSizeForTest()+10)
	putU32(plain, 0, 0x3001)
	putU16(plain, 4, uint16(xicore.ItemFlagUsable))
	putU16(plain, 8, xicore.ItemTypeItem.ID) // type ITEM, not a typed variant
	off := headerSizeForTest()
	putU16(plain, off, 5) // activation_time
	putU32(plain, off+2, 0)
	putU32(plain, off+6, 0)

	enc := encodeForDecodeRotation(plain, xidecoder.ItemFixedRotation)

	archive, err := Parse(enc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	item := archive.Records[0].Item
	usable, ok := item.Subtype.(*xi.ItemUsable)
	if !ok {
		t.Fatalf("expected *xi.ItemUsable subtype, got %T", item.Subtype)
	}
	if usable.ActivationTime != 5 {
		t.Errorf("unexpected activation time: %+v", usable)
	}
}

func headerSizeForTest() int { return 14 }
