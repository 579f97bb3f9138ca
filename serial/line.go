package serial

import (
	"errors"
	"io"
)

// ReadLine reads bytes from the port one at a time until a newline arrives,
// returning the line without the terminator. A read timeout (surfaced by the
// native backend as io.EOF or a zero-length read) ends the line early: the
// partial, possibly empty, result is returned with a nil error so callers can
// treat it as an ordinary line. Any other error is returned with whatever was
// accumulated before it.
func ReadLine(p Port) (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return string(line), nil
			}
			line = append(line, buf[0])
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Timed-out read on the tarm backend
				return string(line), nil
			}
			return string(line), err
		}
		// Zero-length read without an error: timeout on platforms that
		// report it that way
		return string(line), nil
	}
}
