package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iw2rmb/patina/buffer"
)

// ErrNoFilename is returned by Save when the document has no file name.
var ErrNoFilename = errors.New("no file name")

const newFilePerm fs.FileMode = 0o644

// Load replaces the document text with the content of path and resets the
// cursor and scroll offset.
//
// On failure the text is left untouched. When path does not exist it is still
// recorded as the file name, so a later Save creates it. Other read errors
// leave the file name unchanged.
func (d *Document) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.filename = path
		}
		return fmt.Errorf("load %s: %w", path, err)
	}

	d.buf.Reset(buffer.SplitLines(string(data)))
	d.filename = path
	d.scroll = 0
	d.dirty = false
	return nil
}

// Save writes the document to its file name. Lines are joined with '\n' and
// the last line is terminated too. It returns the number of bytes written.
func (d *Document) Save() (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}

	data := buffer.JoinLines(d.buf.Lines())
	if err := writeFileAtomic(d.filename, []byte(data)); err != nil {
		return 0, fmt.Errorf("save %s: %w", d.filename, err)
	}
	d.dirty = false
	return len(data), nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place. The mode of an existing file is kept.
func writeFileAtomic(path string, data []byte) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}

	perm := newFilePerm
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
