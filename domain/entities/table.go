package entities

// Table is a loadable batch of prototypes.
// Format is the semantic version of the table layout; Runtime names the
// scripting runtime release the prototypes were curated against.
type Table struct {
	Format     string      `json:"format" yaml:"format" toml:"format" validate:"required"`
	Runtime    string      `json:"runtime,omitempty" yaml:"runtime,omitempty" toml:"runtime,omitempty"`
	Prototypes []Prototype `json:"prototypes" yaml:"prototypes" toml:"prototypes" validate:"dive"`
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Prototypes)
}
