package token

// Pos is a position in an input document. Line and Col are 1-based;
// Col counts bytes, so a multi-byte rune advances it by its width.
type Pos struct {
	Off  int
	Line int
	Col  int
}

const (
	contextBack = 20
	contextLen  = 40
)

// Context returns a snippet of d around off for diagnostics, with "..."
// markers on whichever ends were truncated.
func Context(d []byte, off int) string {
	start := off - contextBack
	if start < 0 {
		start = 0
	}
	end := start + contextLen
	if end > len(d) {
		end = len(d)
	}
	s := string(d[start:end])
	if start > 0 {
		s = "..." + s
	}
	if end < len(d) {
		s = s + "..."
	}
	return s
}
