// Package ftable reads the small index format pairing a table of record
// ids (the "ftable") with a parallel table of existence flags (the
// "vtable"): the two byte streams are read in lockstep, one entry per id.
package ftable

import "encoding/binary"

// Entry is one row of the index: an id and whether it exists.
type Entry struct {
	// Id is the record id from the ftable stream.
	Id uint16

	// Exist is the corresponding vtable byte, non-zero. A vtable short
	// read for this entry's position leaves Exist false rather than
	// aborting the whole table (§4.7).
	Exist bool
}

// Load reads entries from an ftable stream (pairs of little-endian
// uint16 ids) and a parallel vtable stream (one byte per entry). Reading
// stops as soon as the ftable is exhausted; a short vtable only affects
// the Exist field of the entries past its end.
func Load(ftableData, vtableData []byte) []Entry {
	count := len(ftableData) / 2

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		id := binary.LittleEndian.Uint16(ftableData[i*2:])

		var exist bool
		if i < len(vtableData) {
			exist = vtableData[i] != 0
		}

		entries = append(entries, Entry{Id: id, Exist: exist})
	}
	return entries
}
