package converter

import (
	"os"
	"path/filepath"
	"strings"
)

// External converters such as libreoffice and pdftoppm name their output
// file themselves, ignoring the destination filename the caller wanted.
// locateOutput searches dir for the first of the candidate names and moves
// it to dst. It reports whether any candidate was found; a candidate that
// already sits at dst counts as found without a rename.
func locateOutput(dir string, candidates []string, dst string) (bool, error) {
	for _, name := range candidates {
		produced := filepath.Join(dir, name)
		if _, err := os.Stat(produced); err != nil {
			continue
		}
		if produced == dst {
			return true, nil
		}
		if err := os.Rename(produced, dst); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// stem returns the filename without its directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
