package times

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.c")
	if err := os.WriteFile(path, []byte("int main() {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	wantMtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	wantAtime := wantMtime.Add(3 * time.Hour)
	if err := os.Chtimes(path, wantAtime, wantMtime); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	atime, mtime, err := Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if d := atime.Sub(wantAtime); d < -time.Second || d > time.Second {
		t.Errorf("Stat() atime = %v, want %v", atime, wantAtime)
	}
	if d := mtime.Sub(wantMtime); d < -time.Second || d > time.Second {
		t.Errorf("Stat() mtime = %v, want %v", mtime, wantMtime)
	}
}

func TestStatMissingFile(t *testing.T) {
	_, _, err := Stat(filepath.Join(t.TempDir(), "nope.c"))
	if err == nil {
		t.Fatal("Stat() expected error for missing file")
	}
}
