package cli

import (
	"fmt"
	"io"
	"strings"
)

// promptYesNoIO asks message on out and reads the answer from in. An empty
// answer picks the default; unreadable input counts as no.
func promptYesNoIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
// It reads a byte at a time so nothing past the line is consumed from in.
// When in is an io.ByteScanner, a CRLF pair ends a single line.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n':
				return string(buf), nil
			case '\r':
				skipLF(in)
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}

// skipLF consumes the LF of a CRLF pair when in can push a byte back.
func skipLF(in io.Reader) {
	bs, ok := in.(io.ByteScanner)
	if !ok {
		return
	}
	if b, err := bs.ReadByte(); err == nil && b != '\n' {
		_ = bs.UnreadByte()
	}
}
