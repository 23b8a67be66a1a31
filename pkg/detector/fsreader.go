package detector

import (
	"io"
	"io/fs"
)

// FSReader provides the filesystem primitives detection needs over fs.FS.
type FSReader struct {
	fsys fs.FS
}

// NewFSReader creates a new FSReader for the given filesystem
func NewFSReader(fsys fs.FS) *FSReader {
	return &FSReader{fsys: fsys}
}

// Has checks if a file exists at the given path
func (r *FSReader) Has(path string) bool {
	_, err := fs.Stat(r.fsys, path)
	return err == nil
}

// ReadBytes reads a whole file.
func (r *FSReader) ReadBytes(path string) ([]byte, error) {
	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
