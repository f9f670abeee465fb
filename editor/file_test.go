package editor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/patina/buffer"
)

func TestDocumentLoad_ReadsFileAndResetsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\r\ngamma\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := NewDocumentFromText(numberedLines(20))
	d.SetViewportHeight(3)
	for i := 0; i < 10; i++ {
		d.MoveCursorDown()
	}
	d.InsertChar('x')

	if err := d.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := strings.Join(d.Lines(), "|"), "alpha|beta|gamma"; got != want {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if got := d.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
	if d.ScrollOffset() != 0 || d.Dirty() {
		t.Fatalf("scroll=%d dirty=%v after load", d.ScrollOffset(), d.Dirty())
	}
	if d.Filename() != path {
		t.Fatalf("filename=%q, want %q", d.Filename(), path)
	}
}

func TestDocumentLoad_EmptyFileGivesOneEmptyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d := NewDocument()
	if err := d.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.Lines(); len(got) != 1 || got[0] != "" {
		t.Fatalf("lines=%q, want one empty line", got)
	}
}

func TestDocumentLoad_MissingFileKeepsTextAndRecordsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	d := NewDocumentFromText("keep")

	err := d.Load(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want ErrNotExist", err)
	}
	if d.Text() != "keep" {
		t.Fatalf("text=%q, want unchanged", d.Text())
	}
	if d.Filename() != path {
		t.Fatalf("filename=%q, want %q", d.Filename(), path)
	}
}

func TestDocumentLoad_UnreadablePathKeepsState(t *testing.T) {
	dir := t.TempDir()
	d := NewDocumentFromText("keep")

	if err := d.Load(dir); err == nil {
		t.Fatalf("expected error loading a directory")
	}
	if d.Text() != "keep" || d.Filename() != "" {
		t.Fatalf("text=%q filename=%q, want unchanged", d.Text(), d.Filename())
	}
}

func TestDocumentSave_NoFilename(t *testing.T) {
	d := NewDocumentFromText("x")
	if _, err := d.Save(); !errors.Is(err, ErrNoFilename) {
		t.Fatalf("err=%v, want ErrNoFilename", err)
	}
}

func TestDocumentSave_WritesTerminatedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	d := NewDocument()
	if err := d.Load(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load: %v", err)
	}
	d.InsertText("héllo\nwörld")

	n, err := d.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "héllo\nwörld\n"; got != want {
		t.Fatalf("file=%q, want %q", got, want)
	}
	if n != len(data) {
		t.Fatalf("n=%d, want %d", n, len(data))
	}
	if d.Dirty() {
		t.Fatalf("save should clear dirty")
	}

	d2 := NewDocument()
	if err := d2.Load(path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got, want := d2.Text(), d.Text(); got != want {
		t.Fatalf("reloaded text=%q, want %q", got, want)
	}
}

func TestDocumentSave_EmptyDocumentWritesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	d := NewDocument()
	_ = d.Load(path)

	n, err := d.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if n != 0 || info.Size() != 0 {
		t.Fatalf("n=%d size=%d, want empty file", n, info.Size())
	}
	if info.Mode().Perm() != newFilePerm {
		t.Fatalf("perm=%v, want %v", info.Mode().Perm(), newFilePerm)
	}
}

func TestDocumentSave_KeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	d := NewDocument()
	if err := d.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	d.MoveCursorEnd()
	d.InsertChar('b')
	if _, err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("perm=%v, want 0600", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "ab\n" {
		t.Fatalf("file=%q, want %q", data, "ab\n")
	}
}

func TestDocumentSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	d := NewDocumentFromText("x")
	d.filename = path
	for i := 0; i < 3; i++ {
		if _, err := d.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.txt" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir entries=%v, want [a.txt]", names)
	}
}

func TestDocumentSave_DirectoryTargetFails(t *testing.T) {
	dir := t.TempDir()
	d := NewDocumentFromText("x")
	d.filename = dir
	if _, err := d.Save(); err == nil {
		t.Fatalf("expected error saving over a directory")
	}
	if d.Text() != "x" {
		t.Fatalf("text=%q after failed save", d.Text())
	}
}
