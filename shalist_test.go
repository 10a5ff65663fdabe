package hashsplit

import "testing"

func TestMakeShalistOffsetsAndWidth(t *testing.T) {
	entries := []treeEntry{
		{mode: ModeFile, id: "a", size: 10},
		{mode: ModeFile, id: "b", size: 0x100}, // push total past one hex digit
		{mode: ModeTree, id: "c", size: 5},
	}
	sl := makeShalist(entries)

	if sl.Size != 10+0x100+5 {
		t.Fatalf("Size = %d, want %d", sl.Size, 10+0x100+5)
	}
	if len(sl.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(sl.Entries))
	}

	wantWidth := len(sl.Entries[0].Name)
	for _, e := range sl.Entries {
		if len(e.Name) != wantWidth {
			t.Errorf("entry %+v has name width %d, want %d", e, len(e.Name), wantWidth)
		}
	}

	if sl.Entries[0].Name != fixedHex(wantWidth, 0) {
		t.Errorf("first entry offset = %q, want %q", sl.Entries[0].Name, fixedHex(wantWidth, 0))
	}
	if sl.Entries[1].Name != fixedHex(wantWidth, 10) {
		t.Errorf("second entry offset = %q, want %q", sl.Entries[1].Name, fixedHex(wantWidth, 10))
	}
	last := sl.Entries[len(sl.Entries)-1]
	lastOfs := sl.Size - entries[len(entries)-1].size
	if last.Name != fixedHex(wantWidth, lastOfs) {
		t.Errorf("last entry offset = %q, want %q", last.Name, fixedHex(wantWidth, lastOfs))
	}
}

func fixedHex(width int, v int64) string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = hexdigits[v&0xf]
		v >>= 4
	}
	return string(buf)
}

func TestMakeShalistEmpty(t *testing.T) {
	sl := makeShalist(nil)
	if sl.Size != 0 {
		t.Fatalf("Size = %d, want 0", sl.Size)
	}
	if len(sl.Entries) != 0 {
		t.Fatalf("len(Entries) = %d, want 0", len(sl.Entries))
	}
}

func TestMakeShalistSingle(t *testing.T) {
	sl := makeShalist([]treeEntry{{mode: ModeFile, id: "only", size: 42}})
	if len(sl.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(sl.Entries))
	}
	if sl.Entries[0].Name != "00" {
		t.Fatalf("single entry name = %q, want %q", sl.Entries[0].Name, "00")
	}
}
