package command

// Operations is the mutable state of one engine run. A fresh value is
// created for every run and handed by pointer to each command.
type Operations struct {
	// InputPath is the bound source file, set by the source file command.
	InputPath string

	// OutputPath is the report destination, set by the output file command.
	OutputPath string

	// Source is the text commands operate on.
	Source string

	// Panicked is set when validation aborts the run.
	Panicked bool
}

// NewOperations returns empty run state.
func NewOperations() *Operations {
	return &Operations{}
}

// HasSource reports whether a source file has been bound.
func (o *Operations) HasSource() bool {
	return o.InputPath != ""
}

// HasOutput reports whether the report is redirected to a file.
func (o *Operations) HasOutput() bool {
	return o.OutputPath != ""
}

// Panic marks the run as aborted.
func (o *Operations) Panic() {
	o.Panicked = true
}
