package level

import (
	"errors"
	"fmt"
)

var (
	ErrNoSpawnPoint        = errors.New("no spawn point")
	ErrAssetMissing        = errors.New("map asset missing")
	ErrMultipleSpawnPoints = errors.New("multiple spawn points")
)

// ErrorKind classifies a MapLoadError.
type ErrorKind int

const (
	NoSpawnPoint ErrorKind = iota
	AssetMissing
	MultipleSpawnPoints
)

func (k ErrorKind) String() string {
	switch k {
	case NoSpawnPoint:
		return "no spawn point"
	case AssetMissing:
		return "asset missing"
	case MultipleSpawnPoints:
		return "multiple spawn points"
	}
	return "unknown"
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NoSpawnPoint:
		return ErrNoSpawnPoint
	case AssetMissing:
		return ErrAssetMissing
	case MultipleSpawnPoints:
		return ErrMultipleSpawnPoints
	}
	return nil
}

// MapLoadError is returned when a map cannot be turned into a playable level.
type MapLoadError struct {
	Kind ErrorKind
	Slug string
	Err  error
}

func (e *MapLoadError) Error() string {
	msg := fmt.Sprintf("load map %q: %s", e.Slug, e.Kind)
	if e.Err != nil && e.Err != e.Kind.sentinel() {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MapLoadError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind, so callers can test with
// errors.Is(err, level.ErrNoSpawnPoint) without caring about the cause.
func (e *MapLoadError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func loadError(kind ErrorKind, slug string, err error) *MapLoadError {
	return &MapLoadError{Kind: kind, Slug: slug, Err: err}
}
