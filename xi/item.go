// This file contains the Item record type, its discriminated subtype
// payload union, and the String type used by an item's string subsection.

package xi

// ItemSlotSize is the fixed size, in bytes, of one item record's slot,
// header through string subsection.
const ItemSlotSize = 0x200 + 0xA00 - 16

// ItemSubtype is implemented by the five possible item subtype payloads.
// An Item with no matching discrimination rule (§4.4) has a nil Subtype.
type ItemSubtype interface {
	// itemSubtype is unexported so ItemSubtype can only be implemented by
	// the types declared in this package.
	itemSubtype()
}

// ItemWeapon is the subtype payload for items of type Weapon.
type ItemWeapon struct {
	Level  uint16
	Slots  uint16
	Races  uint16
	Jobs   uint32
	Damage uint16
	Delay  uint16
	DPS    uint16

	Skill   uint8
	JugSize uint8

	Unknown uint32

	MaxCharges  uint8
	CastingTime uint8
	UseDelay    uint16

	ReuseDelay uint32
	Unknown2   uint32
}

func (*ItemWeapon) itemSubtype() {}

// ItemArmor is the subtype payload for items of type Armor.
type ItemArmor struct {
	Level uint16
	Slots uint16
	Races uint16
	Jobs  uint32

	ShieldSize uint16

	MaxCharges  uint8
	CastingTime uint8
	UseDelay    uint16
	Unknown     uint16

	ReuseDelay uint32
	Unknown2   uint32
}

func (*ItemArmor) itemSubtype() {}

// ItemPuppet is the subtype payload for items of type Puppet.
type ItemPuppet struct {
	Slot          uint16
	ElementCharge uint32
	Unknown       uint32
}

func (*ItemPuppet) itemSubtype() {}

// ItemGeneral is the subtype payload for items of type Furnishing,
// Mannequin, or Flowerpot.
type ItemGeneral struct {
	Element      uint16
	StorageSlots uint32
}

func (*ItemGeneral) itemSubtype() {}

// ItemUsable is the subtype payload for items that set the Usable flag and
// whose type did not already select one of the variants above.
type ItemUsable struct {
	ActivationTime uint16
	Unknown        uint32
	Unknown2       uint32
}

func (*ItemUsable) itemSubtype() {}

// String is a single entry of an item's string subsection: owned bytes, a
// byte count excluding the terminator (I3), and the flags word carried by
// the string's offset-table entry.
type String struct {
	// Data is the string's bytes, not including the zero terminator.
	Data []byte

	// Length is len(Data), the number of bytes before the on-disk zero
	// terminator. Kept as a separate field rather than relying on Go's
	// slice length alone.
	Length uint32

	// Flags is the 32-bit flags word from the offset table entry. It is
	// preserved even for an empty/unreadable slot (I4 governs offsets,
	// not flags).
	Flags uint32
}

// Item models an inventory item. Subtype is selected from Type and Flags
// at parse time per the discrimination rule in §4.4 of the governing
// decoder; it is nil when none of the typed variants apply.
type Item struct {
	// Id of the item.
	Id uint32

	// Flags is a xicore.ItemFlag bitmask.
	Flags uint16

	// Stack is the max stack size.
	Stack uint16

	// Type is a xicore.ItemType ID; see xicore.ItemTypeByID.
	Type uint16

	// Resource identifies the item's associated resource (icon/model).
	Resource uint16

	// Targets is a xicore.TargetFlag bitmask of valid targets for usable
	// items.
	Targets uint16

	// Subtype is the variant payload selected by Type/Flags, or nil.
	Subtype ItemSubtype

	// Strings holds the item's string subsection entries, in offset-table
	// order.
	Strings []String
}
