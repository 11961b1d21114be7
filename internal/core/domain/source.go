package domain

// ScriptParts is a source text split for package synthesis.
type ScriptParts struct {
	// Body is the source with any leading shebang line removed.
	Body string

	// Shebang reports whether a shebang line was removed from the top.
	Shebang bool

	// Fragment is the raw manifest text of the first cargo fence in the leading doc comment.
	Fragment string

	// HasFragment distinguishes an empty fragment from no fragment.
	HasFragment bool
}

// WriteResult reports what a change-aware write did.
type WriteResult int

const (
	// Unchanged means the file already held the content and was left alone.
	Unchanged WriteResult = iota
	// Changed means the file was (re)written.
	Changed
)

// String returns a lowercase name for logging.
func (r WriteResult) String() string {
	if r == Changed {
		return "changed"
	}
	return "unchanged"
}
