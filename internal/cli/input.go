package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadInput returns the filter to convert: the literal expr if set, otherwise
// the file named by args[0], otherwise stdin. "-" also reads stdin.
func ReadInput(expr string, args []string, stdin io.Reader) ([]byte, error) {
	if expr != "" {
		if len(args) > 0 {
			return nil, errors.New("use either --expr or a file argument, not both")
		}
		return []byte(expr), nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}
