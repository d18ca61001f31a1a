package checkpointer

import (
	"fmt"
	"path/filepath"
	"testing"
)

type recorder struct {
	files []string
	err   error
}

func (r *recorder) Save(filename string) error {
	r.files = append(r.files, filename)
	return r.err
}

func TestFilenameEnumerator(t *testing.T) {
	next := FilenameEnumerator(0, "values", ".bin")
	for i := 1; i <= 3; i++ {
		if got, want := next(), fmt.Sprintf("values%d.bin", i); got != want {
			t.Errorf("filename: got %v, want %v", got, want)
		}
	}
}

func TestNStep(t *testing.T) {
	r := &recorder{}
	base := filepath.Join(t.TempDir(), "values")
	c, err := NewNStep(3, r, FilenameEnumerator(0, base, ".bin"))
	if err != nil {
		t.Fatalf("newNStep: %v", err)
	}

	for trial := 1; trial <= 7; trial++ {
		if err := c.Checkpoint(trial); err != nil {
			t.Fatalf("checkpoint: %v", err)
		}
	}

	want := []string{base + "1.bin", base + "2.bin"}
	if len(r.files) != len(want) {
		t.Fatalf("checkpoint: saved %v, want %v", r.files, want)
	}
	for i := range want {
		if r.files[i] != want[i] {
			t.Errorf("checkpoint: saved %v, want %v", r.files[i], want[i])
		}
	}
}

func TestNStepErrors(t *testing.T) {
	if _, err := NewNStep(0, &recorder{}, nil); err == nil {
		t.Error("newNStep: expected error for zero interval")
	}

	r := &recorder{err: fmt.Errorf("disk full")}
	c, _ := NewNStep(1, r, FilenameEnumerator(0, "values", ".bin"))
	if err := c.Checkpoint(1); err == nil {
		t.Error("checkpoint: expected error from failed save")
	}
}

func TestFilenameEnumeratorExtension(t *testing.T) {
	next := FilenameEnumerator(9, "run", "gob")
	if got := next(); got != "run10.gob" {
		t.Errorf("filename: got %v, want run10.gob", got)
	}
}
