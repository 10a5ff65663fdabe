package hashsplit

import (
	"io"
	"iter"

	"github.com/pkg/errors"
)

// Session owns the per-run state of a split: the running TotalSplit byte
// counter and the configuration driving it. Each split gets its own
// Session, so there is no process-wide state for two unrelated splits to
// race over.
type Session struct {
	Store  Store
	Config *Config

	// TotalSplit is the running count of bytes this session has handed to
	// Store.MakeBlob so far.
	TotalSplit int64
}

// NewSession creates a Session ready to drive the top-level entry points.
// A nil Config behaves like a zero Config (every tunable at its default).
func NewSession(store Store, config *Config) *Session {
	if config == nil {
		config = &Config{}
	}
	return &Session{Store: store, Config: config}
}

// BlobRef is one stored chunk's address, size, and tree level.
type BlobRef struct {
	ID    ID
	Size  int64
	Level int
}

// SplitToBlobs drives the hash-split iterator, storing each chunk
// via Store.MakeBlob and reporting a BlobRef per chunk in input order.
// TotalSplit accumulates as chunks are stored.
func (s *Session) SplitToBlobs(files []io.Reader, keepBoundaries bool) iter.Seq2[BlobRef, error] {
	return func(yield func(BlobRef, error) bool) {
		for chunk, err := range s.Config.SplitFiles(files, keepBoundaries) {
			if err != nil {
				yield(BlobRef{}, err)
				return
			}
			id, err := s.Store.MakeBlob(chunk.Bytes)
			if err != nil {
				yield(BlobRef{}, errors.Wrap(err, "storing chunk"))
				return
			}
			s.TotalSplit += int64(len(chunk.Bytes))
			if !yield(BlobRef{ID: id, Size: int64(len(chunk.Bytes)), Level: chunk.Level}, nil) {
				return
			}
		}
	}
}

// SplitToShalist drives the tree builder on top of SplitToBlobs and
// returns the final top-level shalist.
func (s *Session) SplitToShalist(files []io.Reader, keepBoundaries bool) (Shalist, error) {
	tb := NewTreeBuilder(s.Store, s.Config.fanout())
	for ref, err := range s.SplitToBlobs(files, keepBoundaries) {
		if err != nil {
			return Shalist{}, err
		}
		if err := tb.Add(ref.ID, ref.Size, ref.Level); err != nil {
			return Shalist{}, errors.Wrap(err, "folding tree")
		}
	}
	return tb.Finish()
}

// SplitToBlobOrTree splits the input down to a single address. Empty input
// produces a single empty leaf blob; a single-entry shalist is returned
// directly with no wrapping tree node; anything else is stored as a tree.
func (s *Session) SplitToBlobOrTree(files []io.Reader, keepBoundaries bool) (Mode, ID, error) {
	sl, err := s.SplitToShalist(files, keepBoundaries)
	if err != nil {
		return 0, "", err
	}
	switch len(sl.Entries) {
	case 0:
		id, err := s.Store.MakeBlob(nil)
		if err != nil {
			return 0, "", errors.Wrap(err, "storing empty blob")
		}
		return ModeFile, id, nil
	case 1:
		return sl.Entries[0].Mode, sl.Entries[0].ID, nil
	default:
		id, err := s.Store.MakeTree(sl)
		if err != nil {
			return 0, "", errors.Wrap(err, "storing root tree")
		}
		return ModeTree, id, nil
	}
}
