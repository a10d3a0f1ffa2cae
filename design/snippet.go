package design

// Snippet is a chunk of procedural code tagged with the set of signals it
// drives.
type Snippet struct {
	indentStr     string
	textLines     []string
	lvalueSignals map[string]*Signal
}

// newSnippet creates an empty Snippet whose base indent is two levels of
// unit (the module body plus the always-block it will sit in).
func newSnippet(unit string) *Snippet {
	return &Snippet{
		indentStr:     unit + unit,
		lvalueSignals: make(map[string]*Signal),
	}
}
