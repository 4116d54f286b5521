package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/LowByteFox/novagrep/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns err into the text shown after the error prefix.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	cause := domain.Cause(err)
	var pe *fs.PathError
	if errors.As(err, &pe) {
		cause = pe.Err
	}

	switch oe.Kind {
	case domain.KindInvalidConfig:
		if oe.Path == "" {
			return cause.Error()
		}
		if m := reLine.FindStringSubmatch(err.Error()); m != nil {
			return "invalid settings at " + filepath.Base(oe.Path) + " line " + m[1]
		}
		return oe.Path + ": " + cause.Error()

	case domain.KindNotFound, domain.KindIO, domain.KindInvalidPattern:
		if oe.Path == "" || oe.Path == domain.StdinSource {
			return cause.Error()
		}
		return oe.Path + ": " + cause.Error()

	default:
		return cause.Error()
	}
}
