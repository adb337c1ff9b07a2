package checkpointer

import (
	"fmt"

	ts "github.com/samuelfneumann/gomdp/timestep"
)

// nStep implements checkpointing every N steps
type nStep struct {
	interval int
	steps    int
	episodic bool
	object   Serializable // Object to save

	// filename returns the string filename of the file to save the object
	// in.
	//
	// If each serialized object should be saved in a separate file with
	// each file having an incremented number as a suffix (e.g.
	// file1.bin, file2.bin, ..., fileK.bin), then simply use the
	// static function FilenameEnumerator, which will return a function
	// that will enumerate filenames.
	//
	// Otherwise, if each serialized object should be saved in a
	// separate file, but the filename does not matter, use the
	// static function FileTimer to generate the required naming
	// function. For example:
	//
	// n, err := NewNStep(10, object, FileTimer("filename", ".bin"))
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n timesteps,
// counted across episodes. The interval n must be positive.
func NewNStep(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n < 1 {
		return nil, fmt.Errorf("newNStep: interval must be positive, got %d", n)
	}
	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// NewNEpisode returns a checkpointer that checkpoints at the end of
// every n-th episode. The interval n must be positive.
func NewNEpisode(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n < 1 {
		return nil, fmt.Errorf("newNEpisode: interval must be positive, "+
			"got %d", n)
	}
	return &nStep{
		interval: n,
		episodic: true,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint checkpoints the Checkpointer's tracked object by
// serializing it to the next file
func (n *nStep) Checkpoint(t ts.TimeStep) error {
	if n.episodic && !t.Last() {
		return nil
	}

	n.steps++
	if n.steps%n.interval == 0 {
		return Save(n.filename(), n.object)
	}
	return nil
}
