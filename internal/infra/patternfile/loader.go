// Package patternfile loads pattern list files given with -f.
package patternfile

import (
	"errors"
	"io/fs"
	"os"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.PatternLoader = (*Loader)(nil)

// LoadPatterns returns one pattern per line of the file. A trailing newline
// does not add an empty pattern, but blank lines in between do.
func (l *Loader) LoadPatterns(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "patternfile.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return domain.SplitLines(string(b)), nil
}
