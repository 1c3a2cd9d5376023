package ftable

import (
	"encoding/binary"
	"testing"
)

func TestLoadMatchedStreams(t *testing.T) {
	ftableData := make([]byte, 6)
	binary.LittleEndian.PutUint16(ftableData[0:], 10)
	binary.LittleEndian.PutUint16(ftableData[2:], 20)
	binary.LittleEndian.PutUint16(ftableData[4:], 30)

	vtableData := []byte{1, 0, 1}

	got := Load(ftableData, vtableData)
	want := []Entry{
		{Id: 10, Exist: true},
		{Id: 20, Exist: false},
		{Id: 30, Exist: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadShortVtableLeavesExistFalse(t *testing.T) {
	ftableData := make([]byte, 4)
	binary.LittleEndian.PutUint16(ftableData[0:], 1)
	binary.LittleEndian.PutUint16(ftableData[2:], 2)

	vtableData := []byte{1} // short: only covers the first entry

	got := Load(ftableData, vtableData)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if !got[0].Exist {
		t.Errorf("entry 0: expected Exist true")
	}
	if got[1].Exist {
		t.Errorf("entry 1: expected Exist false on short vtable, got true")
	}
}

func TestLoadStopsAtFtableExhaustion(t *testing.T) {
	got := Load(nil, []byte{1, 1, 1})
	if len(got) != 0 {
		t.Errorf("expected no entries for empty ftable, got %d", len(got))
	}
}
