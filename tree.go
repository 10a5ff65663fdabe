package hashsplit

import "github.com/pkg/errors"

// TreeBuilder folds the linear (chunk, level) sequence the iterator
// produces into a multi-level content-addressed tree.
//
// Pending children accumulate in one stack per level. A stack is flushed
// into a stored tree node as soon as a high-enough-level chunk arrives or
// the fanout cap is hit, so the builder's own memory footprint is
// O(MaxPerTree) per level, not O(input size).
type TreeBuilder struct {
	store  Store
	fanout int
	stacks [][]treeEntry
}

// NewTreeBuilder creates a builder that stores inner nodes via store, with
// the given fanout (used only to validate it's a power of two; the level
// each chunk lands on is computed by the caller via Config, not here).
func NewTreeBuilder(store Store, fanout int) *TreeBuilder {
	if fanout <= 0 {
		fanout = DefaultFanout
	}
	if fanout < 2 || fanout&(fanout-1) != 0 {
		panic("hashsplit: fanout must be a power of two, at least 2")
	}
	return &TreeBuilder{store: store, fanout: fanout, stacks: [][]treeEntry{nil}}
}

// Add pushes one already-stored leaf onto the builder and folds the
// stacks according to level: append to stacks[0], then squish.
func (tb *TreeBuilder) Add(id ID, size int64, level int) error {
	tb.stacks[0] = append(tb.stacks[0], treeEntry{mode: ModeFile, id: id, size: size})
	return tb.squish(level)
}

// squish is the sole operation that keeps every stack's length bounded.
// It folds stacks[i] into stacks[i+1] for every i below n, and keeps
// going past n for any level that has hit the MaxPerTree fanout cap, even
// if the rolling hash never produced a high-enough-level split there.
//
// A stack with exactly one pending entry is moved up rather than wrapped
// in a new, degenerate one-child tree node.
func (tb *TreeBuilder) squish(n int) error {
	for i := 0; i < n || len(tb.stacks[i]) >= MaxPerTree; i++ {
		for len(tb.stacks) <= i+1 {
			tb.stacks = append(tb.stacks, nil)
		}
		switch {
		case len(tb.stacks[i]) == 1:
			tb.stacks[i+1] = append(tb.stacks[i+1], tb.stacks[i]...)
		case len(tb.stacks[i]) > 0:
			sl := makeShalist(tb.stacks[i])
			id, err := tb.store.MakeTree(sl)
			if err != nil {
				return errors.Wrapf(err, "storing tree node at level %d", i+1)
			}
			tb.stacks[i+1] = append(tb.stacks[i+1], treeEntry{mode: ModeTree, id: id, size: sl.Size})
		}
		tb.stacks[i] = nil
	}
	return nil
}

// Finish drains every pending stack into the topmost one and returns the
// resulting shalist. After Finish returns, every stack but the topmost is
// empty. The topmost stack may itself hold a single
// entry; SplitToBlobOrTree is what elides the wrapping tree node in that
// case, not Finish.
func (tb *TreeBuilder) Finish() (Shalist, error) {
	if err := tb.squish(len(tb.stacks) - 1); err != nil {
		return Shalist{}, err
	}
	return makeShalist(tb.stacks[len(tb.stacks)-1]), nil
}
