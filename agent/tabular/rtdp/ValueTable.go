package rtdp

import (
	"bytes"
	"encoding/gob"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gortdp/mdp"
)

// ValueTable stores a value estimate for each state. Entries are only
// ever added or overwritten, never removed.
type ValueTable struct {
	values map[mdp.State]float64
}

// NewValueTable returns a new, empty ValueTable
func NewValueTable() *ValueTable {
	return &ValueTable{values: make(map[mdp.State]float64)}
}

// GetOrCompute returns the value stored for s. If no value is stored,
// the value is computed as compute(s), stored, and returned, so that
// compute is called at most once per state.
func (v *ValueTable) GetOrCompute(s mdp.State,
	compute func(mdp.State) float64) float64 {
	if value, ok := v.values[s]; ok {
		return value
	}

	value := compute(s)
	v.values[s] = value
	return value
}

// Lookup returns the value stored for s and whether one is stored
func (v *ValueTable) Lookup(s mdp.State) (float64, bool) {
	value, ok := v.values[s]
	return value, ok
}

// Set stores value for s, overwriting any previously stored value
func (v *ValueTable) Set(s mdp.State, value float64) {
	v.values[s] = value
}

// Len returns the number of states with a stored value
func (v *ValueTable) Len() int {
	return len(v.values)
}

// States returns all states with a stored value, ordered by column and
// then by row
func (v *ValueTable) States() []mdp.State {
	states := make([]mdp.State, 0, len(v.values))
	for s := range v.values {
		states = append(states, s)
	}

	sort.Slice(states, func(i, j int) bool {
		if states[i].X != states[j].X {
			return states[i].X < states[j].X
		}
		return states[i].Y < states[j].Y
	})
	return states
}

// GobEncode implements the gob.GobEncoder interface
func (v *ValueTable) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v.values); err != nil {
		return nil, errors.Wrap(err, "gobEncode: could not encode values")
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface
func (v *ValueTable) GobDecode(data []byte) error {
	values := make(map[mdp.State]float64)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return errors.Wrap(err, "gobDecode: could not decode values")
	}
	v.values = values
	return nil
}

// Save saves the ValueTable to filename in gob format
func (v *ValueTable) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "save: could not create %v", filename)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(v); err != nil {
		return errors.Wrapf(err, "save: could not encode values to %v",
			filename)
	}
	return nil
}

// LoadValueTable loads a ValueTable saved with Save
func LoadValueTable(filename string) (*ValueTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "loadValueTable: could not open %v",
			filename)
	}
	defer file.Close()

	v := NewValueTable()
	if err := gob.NewDecoder(file).Decode(v); err != nil {
		return nil, errors.Wrapf(err, "loadValueTable: could not decode %v",
			filename)
	}
	return v, nil
}
