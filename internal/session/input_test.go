package session

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	big := strings.Repeat("y", 10000) // larger than the bufio buffer, under the limit

	tests := []struct {
		name  string
		input string
		max   int
		want  []string // "!" marks a skipped over-long line
	}{
		{"Plain", "hello\nadd Carol 380501234567\n", 100, []string{"hello", "add Carol 380501234567"}},
		{"CRLF", "hello\r\nexit\r\n", 100, []string{"hello", "exit"}},
		{"NoFinalNewline", "hello\nexit", 100, []string{"hello", "exit"}},
		{"BlankLines", "\n\nhello\n", 100, []string{"", "", "hello"}},
		{"OverLongSkipped", strings.Repeat("x", 50) + "\nhello\n", 20, []string{"!", "hello"}},
		{"OverLongAtEnd", "hello\n" + strings.Repeat("x", 50), 20, []string{"hello", "!"}},
		{"SpansBuffer", big + "\nhello\n", 20000, []string{big, "hello"}},
		{"SpansBufferTooLong", big + big + "\nhello\n", 15000, []string{"!", "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newLineReader(strings.NewReader(tt.input), tt.max)
			var got []string
			for {
				line, err := r.next()
				if err == io.EOF {
					break
				}
				if err == errLineTooLong {
					got = append(got, "!")
					continue
				}
				require.NoError(t, err)
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
