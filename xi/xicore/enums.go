// This file contains general enum types shared by the record payloads.

package xicore

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with value receiver so this gets called even if a non-pointer is used.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
//
// ID must be an integer number.
func UnknownEnum(ID any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", ID)}
}

// ItemType is an item's type, as it appears in an item record header.
// It decides which subtype payload (if any) follows the header, per the
// discrimination rule: type is checked first, the Usable flag only applies
// as a fallback when none of the typed variants below match.
type ItemType struct {
	Enum

	// ID as it appears in archives
	ID uint16
}

// ItemTypes is an enumeration of the possible item types.
var ItemTypes = []*ItemType{
	{Enum{"None"}, 0x00},
	{Enum{"Item"}, 0x01},
	{Enum{"Quest"}, 0x02},
	{Enum{"Fish"}, 0x03},
	{Enum{"Weapon"}, 0x04},
	{Enum{"Armor"}, 0x05},
	{Enum{"Linkshell"}, 0x06},
	{Enum{"Usable"}, 0x07},
	{Enum{"Crystal"}, 0x08},
	{Enum{"Furnishing"}, 0x09},
	{Enum{"Plant"}, 0x0a},
	{Enum{"Flowerpot"}, 0x0b},
	{Enum{"Puppet"}, 0x0c},
	{Enum{"Mannequin"}, 0x0d},
	{Enum{"Book"}, 0x0e},
}

// Named item types
var (
	ItemTypeNone       = ItemTypes[0x00]
	ItemTypeItem       = ItemTypes[0x01]
	ItemTypeQuest      = ItemTypes[0x02]
	ItemTypeFish       = ItemTypes[0x03]
	ItemTypeWeapon     = ItemTypes[0x04]
	ItemTypeArmor      = ItemTypes[0x05]
	ItemTypeLinkshell  = ItemTypes[0x06]
	ItemTypeUsable     = ItemTypes[0x07]
	ItemTypeCrystal    = ItemTypes[0x08]
	ItemTypeFurnishing = ItemTypes[0x09]
	ItemTypePlant      = ItemTypes[0x0a]
	ItemTypeFlowerpot  = ItemTypes[0x0b]
	ItemTypePuppet     = ItemTypes[0x0c]
	ItemTypeMannequin  = ItemTypes[0x0d]
	ItemTypeBook       = ItemTypes[0x0e]
)

// ItemTypeByID returns the ItemType for a given ID.
// A new ItemType with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID).
func ItemTypeByID(ID uint16) *ItemType {
	if int(ID) < len(ItemTypes) {
		return ItemTypes[ID]
	}
	return &ItemType{UnknownEnum(ID), ID}
}

// ItemFlag is a single bit of an item's Flags bitmask.
type ItemFlag uint16

// Item flag bits, as they appear in an item record header. Bits 0-4 are
// unidentified in the source; they are named for their bit position rather
// than a function.
const (
	ItemFlagUnknown0        ItemFlag = 1 << 0
	ItemFlagUnknown1        ItemFlag = 1 << 1
	ItemFlagUnknown2        ItemFlag = 1 << 2
	ItemFlagUnknown3        ItemFlag = 1 << 3
	ItemFlagUnknown4        ItemFlag = 1 << 4
	ItemFlagInscribable     ItemFlag = 1 << 5
	ItemFlagUnsellableToAH  ItemFlag = 1 << 6
	ItemFlagScroll          ItemFlag = 1 << 7
	ItemFlagLinkshell       ItemFlag = 1 << 8
	ItemFlagUsable          ItemFlag = 1 << 9
	ItemFlagTradeableToNPC  ItemFlag = 1 << 10
	ItemFlagEquipable       ItemFlag = 1 << 11
	ItemFlagUnsellableToNPC ItemFlag = 1 << 12
	ItemFlagMoghouseDenied  ItemFlag = 1 << 13
	ItemFlagUntradeable     ItemFlag = 1 << 14
	ItemFlagRare            ItemFlag = 1 << 15
	ItemFlagEx              ItemFlag = 0x6040
)

// Has tells if flags contains this flag bit.
func (f ItemFlag) Has(flags uint16) bool {
	return uint16(flags)&uint16(f) == uint16(f) && f != 0
}

// TargetFlag is a single bit of a Targets bitmask (who/what a record may be
// used on or cast at).
type TargetFlag uint16

// Target flag bits.
const (
	TargetSelf     TargetFlag = 1 << 0
	TargetPlayer   TargetFlag = 1 << 1
	TargetParty    TargetFlag = 1 << 2
	TargetAlliance TargetFlag = 1 << 3
	TargetNPC      TargetFlag = 1 << 4
	TargetEnemy    TargetFlag = 1 << 5
	TargetUnknown  TargetFlag = 1 << 6
	TargetCorpse   TargetFlag = 1 << 7
)

// Has tells if targets contains this target bit.
func (f TargetFlag) Has(targets uint16) bool {
	return targets&uint16(f) == uint16(f) && f != 0
}
