package domain

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "source.read",
		Kind: KindIO,
		Path: "a.txt",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindIO {
		t.Fatalf("expected kind %s", KindIO)
	}
	if !strings.Contains(err.Error(), "path=a.txt") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindNotFound, Err: fs.ErrNotExist}

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindIO) {
		t.Fatalf("unexpected kind match")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("plain errors have no kind")
	}
}

func TestCause(t *testing.T) {
	inner := &PatternError{Pattern: "(", Err: errors.New("missing closing )")}
	err := &OpError{Op: "config.pattern", Kind: KindInvalidPattern, Err: inner}

	got := Cause(err)
	if got != inner {
		t.Fatalf("expected pattern error, got %v", got)
	}

	plain := errors.New("plain")
	if Cause(plain) != plain {
		t.Fatalf("expected plain error to be returned as-is")
	}
}
