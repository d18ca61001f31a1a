package checkpointer

import "github.com/pkg/errors"

// nStep implements checkpointing every N trials
type nStep struct {
	interval int
	object   Serializable // Object to save

	// filename returns the string filename of the file to save the object
	// in.
	//
	// If each serialized object should be saved in a separate file with
	// each file having an incremented number as a suffix (e.g.
	// file1.bin, file2.bin, ..., fileK.bin), then simply use the
	// static function FilenameEnumerator, which will return a function
	// that will enumerate filenames.
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n trials.
func NewNStep(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n < 1 {
		return nil, errors.Errorf("newNStep: interval %v must be positive", n)
	}

	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint checkpoints the Checkpointer's tracked object by calling
// its Save() method once every interval completed trials
func (n *nStep) Checkpoint(trial int) error {
	if trial > 0 && trial%n.interval == 0 {
		if err := n.object.Save(n.filename()); err != nil {
			return errors.Wrapf(err, "checkpoint: trial %v", trial)
		}
	}
	return nil
}
