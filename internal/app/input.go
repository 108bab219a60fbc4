package app

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/savepaths"
	"github.com/woozymasta/savepaths/internal/output"
)

// readRawPaths collects raw paths from arguments, then --file lists, then
// stdin when neither was given and stdin is not a terminal.
func readRawPaths(args, files []string, stdin io.Reader) ([]string, error) {
	paths := append([]string(nil), args...)

	if len(files) > 0 {
		fromFiles, err := savepaths.LoadPathsFiles(files...)
		if err != nil {
			return nil, err
		}
		paths = append(paths, fromFiles...)
	}

	if len(paths) > 0 {
		return paths, nil
	}

	if f, ok := stdin.(*os.File); ok && output.IsTerminal(f) {
		return nil, fmt.Errorf("no paths given: pass paths as arguments, with --file, or on stdin")
	}

	fromStdin, err := savepaths.ParsePaths(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return fromStdin, nil
}
