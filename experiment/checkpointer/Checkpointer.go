// Package checkpointer implements functionality for periodically
// saving the state of an agent during an experiment
package checkpointer

// Serializable is an object that can be saved to a file
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on the
// number of completed trials
type Checkpointer interface {
	Checkpoint(trial int) error
}
