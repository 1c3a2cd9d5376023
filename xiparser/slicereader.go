// This file contains a bounds-checked cursor over a byte slice.
// Unlike a plain offset index, every read here either fully succeeds or
// fails cleanly with no partial read and no change to pos, so callers can
// treat a failed read as a clean stopping point (§7 recovery points).

package xiparser

import "encoding/binary"

// sliceReader is a seekable, bounds-checked view over a byte slice.
type sliceReader struct {
	// b is the byte slice being read. Never mutated by sliceReader itself.
	b []byte

	// pos is the offset of the next byte to read.
	pos uint32
}

// remaining returns the number of unread bytes.
func (sr *sliceReader) remaining() uint32 {
	if uint32(len(sr.b)) <= sr.pos {
		return 0
	}
	return uint32(len(sr.b)) - sr.pos
}

// atEnd reports whether the cursor has consumed the whole slice.
func (sr *sliceReader) atEnd() bool {
	return sr.pos >= uint32(len(sr.b))
}

// getByte reads the next byte. ok is false, and pos is unchanged, if no
// byte remains.
func (sr *sliceReader) getByte() (v byte, ok bool) {
	if sr.remaining() < 1 {
		return 0, false
	}
	v = sr.b[sr.pos]
	sr.pos++
	return v, true
}

// getUint16 reads the next 2 bytes as a little-endian uint16.
func (sr *sliceReader) getUint16() (v uint16, ok bool) {
	if sr.remaining() < 2 {
		return 0, false
	}
	v = binary.LittleEndian.Uint16(sr.b[sr.pos:])
	sr.pos += 2
	return v, true
}

// getUint32 reads the next 4 bytes as a little-endian uint32.
func (sr *sliceReader) getUint32() (v uint32, ok bool) {
	if sr.remaining() < 4 {
		return 0, false
	}
	v = binary.LittleEndian.Uint32(sr.b[sr.pos:])
	sr.pos += 4
	return v, true
}

// readFull reads exactly len(dst) bytes into dst. No partial copy happens
// if there are not enough bytes remaining.
func (sr *sliceReader) readFull(dst []byte) (ok bool) {
	n := uint32(len(dst))
	if sr.remaining() < n {
		return false
	}
	copy(dst, sr.b[sr.pos:sr.pos+n])
	sr.pos += n
	return true
}

// peekFull returns a sub-slice of the next n bytes without advancing pos.
// The returned slice aliases the underlying buffer; callers that decode in
// place rely on that.
func (sr *sliceReader) peekFull(n uint32) (s []byte, ok bool) {
	if sr.remaining() < n {
		return nil, false
	}
	return sr.b[sr.pos : sr.pos+n], true
}

// seek moves the cursor to an absolute offset. It always succeeds; an
// out-of-range offset simply puts the cursor at (or past) end-of-buffer, so
// the next read fails cleanly rather than panicking.
func (sr *sliceReader) seek(pos uint32) {
	sr.pos = pos
}
