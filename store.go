package hashsplit

// Mode identifies the kind of object a shalist entry addresses, using the
// same octal values git (and bup, which this package's algorithm is
// descended from) uses for tree entries. The core never emits Symlink;
// it's reserved for callers building richer trees on top of this package.
type Mode uint32

const (
	// ModeFile addresses a leaf blob: a stored, possibly-hashsplit chunk.
	ModeFile Mode = 0100644

	// ModeTree addresses an inner node: a stored, serialized Shalist.
	ModeTree Mode = 040000

	// ModeSymlink is reserved for callers; the core never produces it.
	ModeSymlink Mode = 0120000
)

// ID is an opaque content address returned by a Store. The core treats it
// as an immutable value it never inspects, only threads through.
type ID = string

// Entry is one child of a tree node: its mode, its cumulative byte offset
// within the node (see Shalist), and the address of its content.
type Entry struct {
	Mode Mode
	Name string
	ID   ID
}

// Shalist is the serialized body of an inner tree node: an ordered list of
// entries plus the total size they cover. Entry names encode cumulative
// byte offsets, zero-padded to a common width so they sort stably within
// the node.
type Shalist struct {
	Entries []Entry
	Size    int64
}

// Store is the content-addressed backing store the core is built against.
// It is injected by the caller; this package never implements it.
// Duplicate detection, the wire format of the store, and compression or
// encryption of stored bytes are all the Store's concern, not this
// package's.
type Store interface {
	// MakeBlob stores a leaf payload and returns its content address.
	MakeBlob(chunk []byte) (ID, error)

	// MakeTree serializes and stores a Shalist, returning its address.
	MakeTree(Shalist) (ID, error)
}
