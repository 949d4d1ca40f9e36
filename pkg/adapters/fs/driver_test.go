package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dahuapp/dahu/pkg/adapters/fs"
)

func TestDriver_ExistsAndIsDirectory(t *testing.T) {
	d := &fs.Driver{}
	dir := t.TempDir()

	if !d.Exists(dir) {
		t.Error("expected temp dir to exist")
	}
	if !d.IsDirectory(dir) {
		t.Error("expected temp dir to be a directory")
	}
	if d.Exists(filepath.Join(dir, "missing")) {
		t.Error("expected missing path to not exist")
	}

	file := filepath.Join(dir, "f.txt")
	if err := d.WriteText(file, "x"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if d.IsDirectory(file) {
		t.Error("expected file to not be a directory")
	}
}

func TestDriver_CreateDirectory(t *testing.T) {
	d := &fs.Driver{}
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := d.CreateDirectory(dir); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	if !d.IsDirectory(dir) {
		t.Error("expected nested directories to be created")
	}

	// Creating an existing directory succeeds.
	if err := d.CreateDirectory(dir); err != nil {
		t.Errorf("CreateDirectory on existing dir failed: %v", err)
	}
}

func TestDriver_WriteReadRoundTrip(t *testing.T) {
	d := &fs.Driver{}
	file := filepath.Join(t.TempDir(), "doc.txt")

	content := "line one\nline two\n"
	if err := d.WriteText(file, content); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	got, err := d.ReadText(file)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != content {
		t.Errorf("round trip mismatch: %q vs %q", got, content)
	}
}

func TestDriver_ReadMissingFile(t *testing.T) {
	d := &fs.Driver{}
	if _, err := d.ReadText(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected ReadText on missing file to fail")
	}
}

func TestDriver_WriteLeavesNoTempFiles(t *testing.T) {
	d := &fs.Driver{}
	dir := t.TempDir()

	if err := d.WriteText(filepath.Join(dir, "doc.txt"), "content"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly the written file, got %d entries", len(entries))
	}
}

func TestDriver_Copy(t *testing.T) {
	d := &fs.Driver{}
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")

	if err := d.WriteText(src, "pixels"); err != nil {
		t.Fatal(err)
	}
	if err := d.Copy(src, dst); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	got, err := d.ReadText(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got != "pixels" {
		t.Errorf("copy content mismatch: %q", got)
	}

	if err := d.Copy(filepath.Join(dir, "missing"), dst); err == nil {
		t.Error("expected Copy from missing source to fail")
	}
}

func TestDriver_DeleteAndRemoveDirectory(t *testing.T) {
	d := &fs.Driver{}
	dir := t.TempDir()

	file := filepath.Join(dir, "f.txt")
	if err := d.WriteText(file, "x"); err != nil {
		t.Fatal(err)
	}
	if err := d.Delete(file); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if d.Exists(file) {
		t.Error("expected file to be deleted")
	}

	nested := filepath.Join(dir, "sub")
	if err := d.CreateDirectory(nested); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteText(filepath.Join(nested, "g.txt"), "y"); err != nil {
		t.Fatal(err)
	}

	if err := d.RemoveDirectory(nested, false); err == nil {
		t.Error("expected non-recursive removal of non-empty dir to fail")
	}
	if err := d.RemoveDirectory(nested, true); err != nil {
		t.Fatalf("recursive RemoveDirectory failed: %v", err)
	}
	if d.Exists(nested) {
		t.Error("expected directory to be removed")
	}
}

func TestDriver_Separator(t *testing.T) {
	d := &fs.Driver{}
	if d.Separator() != string(os.PathSeparator) {
		t.Errorf("unexpected separator %q", d.Separator())
	}
}
