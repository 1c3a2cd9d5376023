// This file implements the string subsection reader (§4.5): a count, an
// offset+flags table, and zero-terminated, 4-byte-aligned string bodies
// read at the offsets the table lists.

package xiparser

import "github.com/ffxitools/xidat/xi"

// stringScratchSize bounds how many bytes of a string body are scanned;
// large enough to hold any real string the format stores.
const stringScratchSize = 1024

// stringOffsetEntry is one row of the offset+flags table.
type stringOffsetEntry struct {
	offset uint32
	flags  uint32
}

// readStringSection reads the string subsection starting at sr's current
// position, which also serves as the base B that table offsets are
// relative to (I4). On a failure to read the count or the table, it
// returns a nil slice (the item receives zero strings, per §4.5 Failure);
// per-string failures are tolerated and produce an empty xi.String rather
// than aborting the whole subsection.
func readStringSection(sr *sliceReader) []xi.String {
	base := sr.pos

	numStrings, ok := sr.getUint32()
	if !ok {
		return nil
	}

	entries := make([]stringOffsetEntry, numStrings)
	for i := range entries {
		offset, ok := sr.getUint32()
		if !ok {
			return nil
		}
		flags, ok := sr.getUint32()
		if !ok {
			return nil
		}
		entries[i] = stringOffsetEntry{offset: offset, flags: flags}
	}

	strings := make([]xi.String, numStrings)
	for i, e := range entries {
		strings[i].Flags = e.flags

		entryReader := sliceReader{b: sr.b}
		entryReader.seek(base + e.offset)

		indicator, ok := entryReader.getUint32()
		if !ok || indicator != 1 {
			continue // empty slot: zero-value xi.String with Flags preserved
		}

		// 6 x uint32 (24 bytes) of zero padding precede the string body.
		entryReader.seek(entryReader.pos + 6*4)

		data, length, ok := readStringBody(&entryReader)
		if !ok {
			continue
		}
		strings[i].Data = data
		strings[i].Length = length
	}

	return strings
}

// readStringBody reads a zero-terminated string in 4-byte-aligned chunks,
// per §4.5: the terminator always falls within a 4-byte block, and length
// counts only the non-zero bytes strictly before it.
func readStringBody(sr *sliceReader) (data []byte, length uint32, ok bool) {
	scratch := make([]byte, 0, stringScratchSize)

	for uint32(len(scratch))+4 <= stringScratchSize {
		chunk, ok := sr.peekFull(4)
		if !ok {
			break
		}
		sr.seek(sr.pos + 4)

		terminated := false
		for _, b := range chunk {
			if b == 0 {
				terminated = true
				break
			}
			scratch = append(scratch, b)
		}
		if terminated {
			out := make([]byte, len(scratch))
			copy(out, scratch)
			return out, uint32(len(out)), true
		}
	}

	// No terminator found within the scratch bound or before the end of
	// the buffer; the slot is skipped and left empty by the caller.
	return nil, 0, false
}
