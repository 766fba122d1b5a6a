package path

import (
	"strconv"

	"github.com/matzehuels/drawkit/pkg/errors"
)

// arity is the number of arguments each supported command takes.
var arity = map[byte]int{
	'M': 2, 'm': 2,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'Q': 4, 'q': 4,
	'C': 6, 'c': 6,
	'Z': 0, 'z': 0,
}

// Parse reads a path string back into components. It accepts the output of
// [ToString] as well as the usual SVG separators (commas and whitespace) and
// the M, L, H, V, Q, C and Z commands in both absolute and relative form.
// Repeated argument groups after a command produce repeated components; a
// move followed by extra pairs continues as lines, as in SVG.
func Parse(s string) ([]Component, error) {
	var (
		out  []Component
		cmd  byte
		args []float64
	)

	flush := func() error {
		if cmd == 0 {
			if len(args) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "path %q: number before first command", s)
			}
			return nil
		}
		n := arity[cmd]
		if n == 0 {
			if len(args) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "path %q: %c takes no arguments", s, cmd)
			}
			out = append(out, Component{Cmd: cmd})
			return nil
		}
		if len(args) == 0 || len(args)%n != 0 {
			return errors.New(errors.ErrCodeInvalidInput, "path %q: %c expects multiples of %d arguments, got %d", s, cmd, n, len(args))
		}
		c := cmd
		for i := 0; i < len(args); i += n {
			out = append(out, Component{Cmd: c, Args: append([]float64(nil), args[i:i+n]...)})
			switch c {
			case 'M':
				c = 'L'
			case 'm':
				c = 'l'
			}
		}
		return nil
	}

	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == ',' || ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isCommand(ch):
			if _, ok := arity[ch]; !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "path %q: unsupported command %c", s, ch)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			cmd, args = ch, args[:0]
			i++
		default:
			j := scanNumber(s, i)
			if j == i {
				return nil, errors.New(errors.ErrCodeInvalidInput, "path %q: unexpected %q at %d", s, ch, i)
			}
			v, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "path %q: bad number", s)
			}
			args = append(args, v)
			i = j
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanNumber returns the end offset of the number starting at i.
func scanNumber(s string, i int) int {
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	digits := 0
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
		digits++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			digits++
		}
	}
	if digits == 0 {
		return i
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && s[k] >= '0' && s[k] <= '9' {
			for k < len(s) && s[k] >= '0' && s[k] <= '9' {
				k++
			}
			j = k
		}
	}
	return j
}
