package backup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrSelectionCancelled means the user entered 'x' at the prompt.
	ErrSelectionCancelled = errors.New("selection cancelled")
	// ErrTooManyInvalidInputs means the prompt gave up after repeated
	// unusable input.
	ErrTooManyInvalidInputs = errors.New("too many invalid inputs")
)

// maxInvalidInputs bounds the interactive retry loop.
const maxInvalidInputs = 3

// Select prompts for a 1-based choice in [1, n] and returns it. 'x'
// (either case) returns ErrSelectionCancelled. Any other unusable line,
// including out-of-range numbers, counts as one invalid input per
// prompt iteration; after maxInvalidInputs of those it returns
// ErrTooManyInvalidInputs. Select never terminates the process; exit
// codes are the caller's business.
func Select(in io.Reader, out io.Writer, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("no backup directories to choose from")
	}
	scanner := bufio.NewScanner(in)
	invalid := 0
	for {
		fmt.Fprintf(out, "Enter a number corresponding to the backup directory from 1--%d, or 'x' to exit:\n", n)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read selection: %w", err)
			}
			return 0, fmt.Errorf("input closed before a backup was selected")
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "x") {
			return 0, ErrSelectionCancelled
		}
		if choice, err := strconv.Atoi(line); err == nil && 1 <= choice && choice <= n {
			fmt.Fprintf(out, "\nYou've chosen backup directory #%d\n", choice)
			return choice, nil
		}
		invalid++
		if invalid >= maxInvalidInputs {
			return 0, ErrTooManyInvalidInputs
		}
	}
}
