package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Width     int // максимальная ширина строки исходника, 0 - не ограничено
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
}

// SourceFunc returns the declarator text a diagnostic points into.
// ok is false when the text is not available.
type SourceFunc func(path string, line uint32) (text string, ok bool)

// SingleSource serves one ad-hoc input for every lookup.
func SingleSource(text string) SourceFunc {
	return func(string, uint32) (string, bool) { return text, true }
}
