package session

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/tartampluch/contactbook/internal/config"
)

var errLineTooLong = errors.New(config.ErrLineTooLong)

// lineReader yields input lines. A line over max bytes is skipped whole
// instead of ending the input.
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReader(r), max: max}
}

// next returns the next line without its terminator. An over-long line is
// consumed through its newline and reported as errLineTooLong; io.EOF means
// no line is left.
func (l *lineReader) next() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := l.r.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > l.max {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if err != nil && len(line) == 0 && !tooLong {
			return "", io.EOF
		}
		break
	}

	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}
