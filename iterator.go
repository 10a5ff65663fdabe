package hashsplit

import (
	"io"
	"iter"

	"github.com/pkg/errors"
)

// Chunk is one piece of input produced by the hash-split iterator: its
// bytes and the tree level its boundary implies. A forced end-of-stream
// or forced-max-size cut always has Level 0.
type Chunk struct {
	Bytes []byte
	Level int
}

// source adapts an ordered set of input streams into the single io.Reader
// the splitting loop drives, while reporting per-file progress and
// read-ahead hints. Both callbacks fire as a side effect of each
// underlying read, so the splitting loop stays a plain, allocation-free
// consumer of an io.Reader.
type source struct {
	files      []io.Reader
	idx        int
	fileIndex  func(int) int // remaps idx to the caller-visible file index
	bytesInCur int64
	advertised int64
	progress   func(fileIndex int, bytesSinceStart int64)
	readAhead  func(priorOffset int64)
}

func newSource(files []io.Reader, fileIndex func(int) int, progress func(int, int64), readAhead func(int64)) *source {
	if fileIndex == nil {
		fileIndex = func(i int) int { return i }
	}
	return &source{files: files, fileIndex: fileIndex, progress: progress, readAhead: readAhead}
}

func (s *source) Read(p []byte) (int, error) {
	for s.idx < len(s.files) {
		n, err := s.files[s.idx].Read(p)
		if n > 0 {
			s.bytesInCur += int64(n)
			if s.progress != nil {
				s.progress(s.fileIndex(s.idx), s.bytesInCur)
			}
			if s.readAhead != nil {
				if done := s.bytesInCur - BlobReadSize; done > s.advertised {
					s.advertised = done
					s.readAhead(done)
				}
			}
			return n, nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		if err == io.EOF {
			if s.readAhead != nil && s.bytesInCur > s.advertised {
				s.readAhead(s.bytesInCur)
			}
			s.idx++
			s.bytesInCur = 0
			s.advertised = 0
			continue
		}
		// n == 0, err == nil: reader asked us to retry.
	}
	return 0, io.EOF
}

// splitSession runs the fill-then-split loop over r, which may itself
// concatenate several files (a *source spanning all of them) or a single
// one (boundary-preserving mode, called once per file so every file's
// final chunk is a forced cut).
func splitSession(r io.Reader, basebits uint, fanout int) iter.Seq2[Chunk, error] {
	fb := fanBits(fanout)
	return func(yield func(Chunk, error) bool) {
		buf := newZCBuf(BlobMax)
		k := newKernel(basebits)
		exhausted := false

		for {
			for !exhausted && buf.used() < BlobMax {
				put := buf.preparePut(BlobReadSize)
				n, err := r.Read(put)
				buf.commitPut(n)
				if err == io.EOF {
					exhausted = true
					break
				}
				if err != nil {
					yield(Chunk{}, errors.Wrap(err, "reading hashsplit input"))
					return
				}
			}

			if buf.used() == 0 {
				return
			}

			window := buf.peek(BlobMax)
			ofs, bits := k.split(window)

			var level int
			if ofs == 0 {
				// No boundary anywhere in the peek: this is both the
				// forced-max-size cut and the final-flush case.
				ofs = len(window)
				level = 0
			} else {
				level = int((bits - basebits) / uint(fb))
			}

			chunk := make([]byte, ofs)
			copy(chunk, window[:ofs])
			buf.eat(ofs)

			if !yield(Chunk{Bytes: chunk, Level: level}, nil) {
				return
			}
		}
	}
}

// Split hashsplits a single stream, equivalent to calling SplitFiles with
// one file and keepBoundaries = false.
func (c *Config) Split(r io.Reader) iter.Seq2[Chunk, error] {
	return c.SplitFiles([]io.Reader{r}, false)
}

// SplitFiles hashsplits an ordered set of input streams.
//
// When keepBoundaries is true, each file gets its own splitting session
// and its outputs are concatenated, so a forced level-0 cut occurs at
// every file boundary and no chunk spans two files. When false, all files
// are treated as one continuous byte stream, and inter-file splits occur
// only where the rolling hash dictates.
func (c *Config) SplitFiles(files []io.Reader, keepBoundaries bool) iter.Seq2[Chunk, error] {
	basebits := c.basebits()
	fanout := c.fanout()
	progress := c.progress()
	readAhead := c.readAheadHint()

	if !keepBoundaries {
		src := newSource(files, nil, progress, readAhead)
		return splitSession(src, basebits, fanout)
	}

	return func(yield func(Chunk, error) bool) {
		for i, f := range files {
			fileIndex := i
			src := newSource([]io.Reader{f}, func(int) int { return fileIndex }, progress, readAhead)
			for chunk, err := range splitSession(src, basebits, fanout) {
				if !yield(chunk, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	}
}
