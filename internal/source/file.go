package source

import (
	"sort"
)

// File is one loaded source buffer plus the derived line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the byte offset of the first byte of every line.
	// LineIdx[0] is always 0.
	LineIdx []uint32
	Hash    [32]byte
}

// Slice returns the bytes covered by sp. The span must belong to this file.
func (f *File) Slice(sp Span) []byte {
	return f.Content[sp.Start:sp.End]
}

// LineCol converts a byte offset into a 1-based line and column pair.
// The column counts bytes, not display cells.
func (f *File) LineCol(off uint32) (line, col uint32) {
	idx := sort.Search(len(f.LineIdx), func(i int) bool {
		return f.LineIdx[i] > off
	}) - 1
	if idx < 0 {
		idx = 0
	}
	lineIdx, err := toUint32(idx)
	if err != nil {
		return 1, 1
	}
	return lineIdx + 1, off - f.LineIdx[idx] + 1
}

// LineSpan returns the span of the 1-based line, excluding the newline.
func (f *File) LineSpan(line uint32) Span {
	if line == 0 || int(line) > len(f.LineIdx) {
		return Span{File: f.ID}
	}
	start := f.LineIdx[line-1]
	var end uint32
	if int(line) < len(f.LineIdx) {
		end = f.LineIdx[line] - 1
	} else {
		endOff, err := toUint32(len(f.Content))
		if err != nil {
			return Span{File: f.ID, Start: start, End: start}
		}
		end = endOff
	}
	return Span{File: f.ID, Start: start, End: end}
}

func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 1, 16)
	idx[0] = 0
	for i, b := range content {
		if b == '\n' {
			off, err := toUint32(i + 1)
			if err != nil {
				break
			}
			idx = append(idx, off)
		}
	}
	return idx
}
