package scan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/betterleaks/minigrep"
	"github.com/h2non/filetype"
)

// StdinPath reads the content from standard input instead of a file.
const StdinPath = "-"

// ErrInvalidEncoding is returned when the input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ReadError is returned when the input could not be read into memory.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadFragment reads the whole input at path. The content must be UTF-8.
func ReadFragment(path string, stdin io.Reader) (minigrep.Fragment, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinPath && stdin != nil {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return minigrep.Fragment{}, &ReadError{Path: path, Err: unwrapPathError(err)}
	}

	if !utf8.Valid(data) {
		return minigrep.Fragment{}, &ReadError{Path: path, Err: encodingError(data)}
	}

	return minigrep.Fragment{Raw: string(data), Path: path}, nil
}

// encodingError names the binary type of data when it is recognised.
func encodingError(data []byte) error {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ErrInvalidEncoding
	}
	return fmt.Errorf("%w (looks like %s)", ErrInvalidEncoding, kind.MIME.Value)
}

// unwrapPathError drops the *fs.PathError wrapper since ReadError already
// carries the path.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}
