// Package hashsplit implements content-defined chunking and hierarchical
// tree assembly: the core of a deduplicating backup system.
//
// Hashsplitting divides a byte stream into pieces based on the stream's
// content rather than a fixed offset. A rolling checksum runs over the
// input, and a chunk boundary falls wherever the checksum's trailing bits
// match a configured pattern. Because the boundary decision depends only
// on a small local window of bytes, editing one part of a stream -- adding
// EXIF tags near the start of a JPEG, say -- only disturbs the chunks near
// the edit. Everything downstream of that is unaffected, which is what
// makes storing many similar backup generations cheap: most chunks, and
// most of the tree built on top of them, are identical across generations
// and only need to be stored once.
//
// The tree goes a step further than a flat chunk list. Trailing checksum
// bits beyond the minimum needed for a split also pick an implicit tree
// level, so high-level split points are themselves content-defined and
// just as stable under local edits as the chunk boundaries are. Folding
// the chunk sequence into a tree along those level boundaries -- bounded
// at each level by a fanout cap -- gives incremental reuse of whole
// subtrees across backup generations, not just individual chunks.
//
// This package does not itself talk to storage: callers inject a Store
// that turns chunks and serialized tree nodes into content addresses.
// Reading a tree back, compressing or encrypting stored bytes, and
// detecting duplicate content are all the Store's concern, not this
// package's.
package hashsplit
