package asset

import (
	"errors"
	"fmt"
)

// Kind identifies the asset class that failed to load
type Kind string

const (
	KindTexture Kind = "texture"
	KindFont    Kind = "font"
)

// ErrEmptyTexture is returned for images with a zero dimension
var ErrEmptyTexture = errors.New("texture has no pixels")

// LoadError reports a missing or corrupt asset
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
