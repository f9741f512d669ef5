package minigrep

// Fragment is the full in-memory content of a searched input.
type Fragment struct {
	// Raw is the text of the input. Search results are substrings of Raw
	// and stay valid for as long as Raw is reachable.
	Raw string

	// Path is the path the content was read from, "-" for stdin.
	Path string
}

// Size returns the content length in bytes.
func (f Fragment) Size() int {
	return len(f.Raw)
}
