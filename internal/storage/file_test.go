package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileStoreReadMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	_, err = store.Read()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read() of missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestFileStoreWriteCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if err := store.Write([]byte("[3,2,1]")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "[3,2,1]" {
		t.Errorf("file contents = %s, want [3,2,1]", data)
	}

	// The temp file must not linger after the rename
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Write")
	}
}

func TestFileStoreWriteOverwrites(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	store.Write([]byte("[1,2,3,4,5,6,7,8,9,10]"))
	if err := store.Write([]byte("[7]")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if string(data) != "[7]" {
		t.Errorf("Read() = %s, want [7]", data)
	}
}

func TestFileStoreWriteUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// Parent "directory" is a regular file, so MkdirAll fails
	store, err := NewFileStore(filepath.Join(blocker, "scores.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	if err := store.Write([]byte("[1]")); err == nil {
		t.Error("Write() under a regular file should fail")
	}
}

func TestFileStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewFileStore("~/.axolotl/high_scores.json")
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	want := filepath.Join(home, ".axolotl", "high_scores.json")
	if store.Path() != want {
		t.Errorf("Path() = %s, want %s", store.Path(), want)
	}
}

func TestFileStoreWatch(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "board", "scores.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}

	// Unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(store.Path()), "notes.txt")
	os.WriteFile(other, []byte("hello"), 0o644)

	if err := store.Write([]byte("[5]")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after Write")
	}

	cancel()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("changes channel not closed after cancel")
		}
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	fileStore, err := Open(Options{Path: filepath.Join(dir, "scores.json")})
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	defer fileStore.Close()
	if _, ok := fileStore.(*FileStore); !ok {
		t.Errorf("default backend = %T, want *FileStore", fileStore)
	}

	sqliteStore, err := Open(Options{Backend: BackendSQLite, SQLitePath: filepath.Join(dir, "scores.db")})
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	defer sqliteStore.Close()
	if _, ok := sqliteStore.(*SQLiteStore); !ok {
		t.Errorf("sqlite backend = %T, want *SQLiteStore", sqliteStore)
	}

	_, err = Open(Options{Backend: "floppy"})
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Open(floppy) error = %v, want unknown backend", err)
	}
}
