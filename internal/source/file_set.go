package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns a collection of source files and resolves spans back to
// human-readable positions.
type FileSet struct {
	files []File
	index map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

func toUint32(n int) (uint32, error) {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("offset overflow: %w", err)
	}
	return v, nil
}

// Add stores content under path and returns a fresh FileID. The same path may
// be added more than once; each call produces an independent file.
func (fs *FileSet) Add(path string, content []byte) FileID {
	lenFiles, err := toUint32(len(fs.files))
	if err != nil {
		panic(err)
	}
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    filepath.ToSlash(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
	})
	fs.index[filepath.ToSlash(path)] = id
	return id
}

// Load reads path from disk and adds it to the set.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return NoFileID, fmt.Errorf("load %s: %w", path, err)
	}
	return fs.Add(path, content), nil
}

// Get returns the file for id, or nil if the id is unknown.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

// Lookup returns the most recently added file registered under path.
func (fs *FileSet) Lookup(path string) (*File, bool) {
	id, ok := fs.index[filepath.ToSlash(path)]
	if !ok {
		return nil, false
	}
	return fs.Get(id), true
}

// Len reports the number of files in the set.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Position renders sp as "path:line:col" using the file's line index.
func (fs *FileSet) Position(sp Span) string {
	f := fs.Get(sp.File)
	if f == nil {
		return fmt.Sprintf("<unknown>:%d", sp.Start)
	}
	line, col := f.LineCol(sp.Start)
	return fmt.Sprintf("%s:%d:%d", f.Path, line, col)
}
