package domain

// Decision is the outcome of a freshness check.
type Decision int

const (
	// Rebuild means cargo must compile the package before execution.
	Rebuild Decision = iota
	// Fresh means the existing binary can be executed as is.
	Fresh
)

// String returns a lowercase name for logging.
func (d Decision) String() string {
	if d == Fresh {
		return "fresh"
	}
	return "rebuild"
}

// Verdict is a decision plus the reason it was reached.
type Verdict struct {
	Decision Decision
	Reason   string
}
