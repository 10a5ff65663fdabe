package hashsplit

import "fmt"

// treeEntry is the internal, pre-serialization form of a Shalist entry:
// the stack slots in the tree builder hold these, since a Name (a
// hex-encoded cumulative offset) can't be computed until every sibling
// ahead of an entry is known.
type treeEntry struct {
	mode Mode
	id   ID
	size int64
}

// makeShalist assembles the ordered entries of a tree node, computing each
// entry's cumulative offset within the node and rendering it as a
// fixed-width lowercase hex string. The width is chosen so the node's
// total size fits, which keeps every name in a node equal length and
// therefore sort-stable. It panics if the running offset and the declared
// total disagree, which would mean the caller passed inconsistent sizes
// -- a programming error, not a usage error.
func makeShalist(entries []treeEntry) Shalist {
	var total int64
	for _, e := range entries {
		total += e.size
	}

	width := len(fmt.Sprintf("%x", total))
	out := make([]Entry, len(entries))
	var ofs int64
	for i, e := range entries {
		out[i] = Entry{
			Mode: e.mode,
			Name: fmt.Sprintf("%0*x", width, ofs),
			ID:   e.id,
		}
		ofs += e.size
	}
	if ofs != total {
		panic("hashsplit: shalist offset drift")
	}
	return Shalist{Entries: out, Size: total}
}
