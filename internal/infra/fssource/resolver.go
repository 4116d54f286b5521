// Package fssource reads search sources from the filesystem and stdin.
package fssource

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

type Resolver struct {
	stdin io.Reader
}

func NewResolver(stdin io.Reader) *Resolver {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Resolver{stdin: stdin}
}

var _ ports.SourceResolver = (*Resolver)(nil)

// ReadAll loads the whole file at path. Contents are not required to be
// valid UTF-8.
func (r *Resolver) ReadAll(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return "", &domain.OpError{
			Op:   "fssource.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}

func (r *Resolver) Stdin() ports.LineReader {
	return &lineReader{br: bufio.NewReader(r.stdin)}
}

type lineReader struct {
	br   *bufio.Reader
	done bool
}

// ReadLine returns the next line without its terminator. An unterminated
// last line is still returned; io.EOF comes on the call after it.
func (lr *lineReader) ReadLine() (string, error) {
	if lr.done {
		return "", io.EOF
	}

	line, err := lr.br.ReadString('\n')
	if errors.Is(err, io.EOF) {
		lr.done = true
		if line == "" {
			return "", io.EOF
		}
		return domain.TrimLineEnd(line), nil
	}
	if err != nil {
		return "", &domain.OpError{
			Op:   "fssource.stdin",
			Kind: domain.KindIO,
			Path: domain.StdinSource,
			Err:  err,
		}
	}
	return domain.TrimLineEnd(line), nil
}
