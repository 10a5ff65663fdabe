package hashsplit

// Config collects the tunables of a split session. A zero Config is ready
// to use: every field falls back to a package default when left unset.
type Config struct {
	// SplitBits is the trailing-bit count the rolling checksum must match
	// to declare a split. Zero means DefaultBaseBits.
	SplitBits uint

	// Fanout is the tree's branching factor; its log2 converts "extra"
	// trailing bits into a level. Zero means DefaultFanout. Fanout must be
	// a power of two no smaller than 2; Split panics otherwise, since an
	// invalid Fanout is a caller programming error, not a runtime failure
	// mode.
	Fanout int

	// Progress, if set, is called once per completed read with the index
	// of the file being read (0-based, in the order streams were passed to
	// SplitFiles) and the number of bytes read so far from that file. In
	// boundary-preserving mode this index is always the outer file index,
	// even though internally each file gets its own splitting session.
	Progress func(fileIndex int, bytesSinceStartOfFile int64)

	// ReadAheadHint, if set, is called with an offset into the current
	// file once data before that offset will not be read again, so a
	// caller can advise the OS (e.g. via unix.Fadvise) that it can drop
	// that range from its page cache. This is purely an optimization;
	// leaving it nil is correct, just slower for very large inputs.
	ReadAheadHint func(priorOffset int64)
}

func (c *Config) basebits() uint {
	if c == nil || c.SplitBits == 0 {
		return DefaultBaseBits
	}
	return c.SplitBits
}

func (c *Config) fanout() int {
	if c == nil || c.Fanout == 0 {
		return DefaultFanout
	}
	if c.Fanout < 2 || c.Fanout&(c.Fanout-1) != 0 {
		panic("hashsplit: Fanout must be a power of two, at least 2")
	}
	return c.Fanout
}

func (c *Config) progress() func(int, int64) {
	if c == nil {
		return nil
	}
	return c.Progress
}

func (c *Config) readAheadHint() func(int64) {
	if c == nil {
		return nil
	}
	return c.ReadAheadHint
}
