package xiparser

import "testing"

func TestSliceReaderBoundedReads(t *testing.T) {
	sr := sliceReader{b: []byte{0x01, 0x02, 0x03, 0x04, 0x05}}

	b, ok := sr.getByte()
	if !ok || b != 0x01 {
		t.Fatalf("getByte: got (%v, %v)", b, ok)
	}

	v16, ok := sr.getUint16()
	if !ok || v16 != 0x0302 {
		t.Fatalf("getUint16: got (%#x, %v)", v16, ok)
	}

	if sr.remaining() != 2 {
		t.Fatalf("remaining: got %d, want 2", sr.remaining())
	}

	// Only 2 bytes left; a 4-byte read must fail cleanly without moving pos.
	posBefore := sr.pos
	if _, ok := sr.getUint32(); ok {
		t.Fatal("getUint32 should fail with only 2 bytes remaining")
	}
	if sr.pos != posBefore {
		t.Fatalf("failed read must not move pos: got %d, want %d", sr.pos, posBefore)
	}
}

func TestSliceReaderReadFullNoPartialCopy(t *testing.T) {
	sr := sliceReader{b: []byte{0xAA, 0xBB}}
	dst := []byte{0, 0, 0, 0}
	if sr.readFull(dst) {
		t.Fatal("readFull should fail when slice is shorter than dst")
	}
	for _, b := range dst {
		if b != 0 {
			t.Fatal("readFull must not partially fill dst on failure")
		}
	}
}

func TestSliceReaderSeekPastEndFailsCleanly(t *testing.T) {
	sr := sliceReader{b: []byte{0x01, 0x02}}
	sr.seek(100)
	if !sr.atEnd() {
		t.Fatal("expected atEnd after seeking past the buffer")
	}
	if _, ok := sr.getByte(); ok {
		t.Fatal("expected getByte to fail after seeking past the buffer")
	}
}

func TestSliceReaderPeekFullDoesNotAdvance(t *testing.T) {
	sr := sliceReader{b: []byte{1, 2, 3, 4}}
	s, ok := sr.peekFull(4)
	if !ok || len(s) != 4 {
		t.Fatalf("peekFull: got (%v, %v)", s, ok)
	}
	if sr.pos != 0 {
		t.Fatalf("peekFull must not advance pos, got %d", sr.pos)
	}
}
