package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the requested template does not exist in
	// the embedded filesystem or the template source.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template referenced a field that the
	// rendering data does not provide.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a template source holds a shell-style
	// placeholder that rendering would never substitute.
	ErrUnexpandedToken = errors.New("unexpanded token in template source")

	// ErrPathTraversal indicates a path would escape its destination root.
	ErrPathTraversal = errors.New("path traversal detected")
)
