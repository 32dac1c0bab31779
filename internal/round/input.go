package round

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader yields one typed line at a time. io.EOF means the player closed
// the input stream.
type LineReader interface {
	ReadLine() (string, error)
}

type Lines struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *Lines {
	return &Lines{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator. A final line
// without a newline is returned before io.EOF.
func (l *Lines) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
