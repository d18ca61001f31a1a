// Package trackers implements Trackers, which track and save data
// generated by the trials of an experiment
package trackers

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/gortdp/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished. Each TimeStep of each trial is passed to
// Track in order.
type Tracker interface {
	Track(t ts.TimeStep)

	// Data returns one tracked value per completed trial
	Data() []float64

	// Save saves the tracked data to disk in gob format
	Save() error

	// Name returns a short name describing the tracked data
	Name() string
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loadData: could not open data file")
	}
	defer file.Close()

	// Decode the data
	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "loadData: could not decode data")
	}

	return data, nil
}

// save encodes data to filename in gob format
func save(filename string, data []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save: could not open save file")
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return errors.Wrapf(err, "save: could not encode data to %v",
			filename)
	}
	return nil
}
