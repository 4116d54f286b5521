package usecase

import (
	"errors"
	"io"
	"io/fs"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

type fakeResolver struct {
	files  map[string]string
	errs   map[string]error
	stdin  []string
	reads  []string
	stdinN int
}

func (f *fakeResolver) ReadAll(path string) (string, error) {
	f.reads = append(f.reads, path)
	if err, ok := f.errs[path]; ok {
		return "", err
	}
	text, ok := f.files[path]
	if !ok {
		return "", &domain.OpError{
			Op:   "source.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist},
		}
	}
	return text, nil
}

func (f *fakeResolver) Stdin() ports.LineReader {
	return &sliceReader{r: f}
}

type sliceReader struct {
	r *fakeResolver
}

func (s *sliceReader) ReadLine() (string, error) {
	if s.r.stdinN >= len(s.r.stdin) {
		return "", io.EOF
	}
	line := s.r.stdin[s.r.stdinN]
	s.r.stdinN++
	return line, nil
}

type fakePatternLoader struct {
	files map[string][]string
}

func (f fakePatternLoader) LoadPatterns(path string) ([]string, error) {
	lines, ok := f.files[path]
	if !ok {
		return nil, &domain.OpError{
			Op:   "patternfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  errors.New("no such file"),
		}
	}
	return lines, nil
}
