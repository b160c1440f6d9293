// Package input reads door codes of the form "<digits>A", one per line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/presscost"
)

// ErrMalformedCode indicates a line that is not digits followed by 'A'.
var ErrMalformedCode = errors.New("input: malformed code")

// Parse turns one line such as "029A" into a Code. Surrounding whitespace is
// ignored. The value is the digits before the trailing 'A' read as a base-10
// integer, so "029A" has value 29; the keys keep every character.
func Parse(line string) (presscost.Code, error) {
	line = strings.TrimSpace(line)
	digits, ok := strings.CutSuffix(line, keypad.Activate.String())
	if !ok || digits == "" {
		return presscost.Code{}, fmt.Errorf("%w: %q must be digits followed by A", ErrMalformedCode, line)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return presscost.Code{}, fmt.Errorf("%w: %q has non-digit %q", ErrMalformedCode, line, digits[i])
		}
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return presscost.Code{}, fmt.Errorf("%w: %q: %v", ErrMalformedCode, line, err)
	}
	return presscost.NewCode(v, line), nil
}

// Read parses every non-blank line of r. Errors name the 1-based line number.
func Read(r io.Reader) ([]presscost.Code, error) {
	var codes []presscost.Code
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read codes: %w", err)
	}
	return codes, nil
}
