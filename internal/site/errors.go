package site

import "errors"

var (
	// ErrRender indicates the page template failed to execute.
	ErrRender = errors.New("site render failed")

	// ErrCreateOutputDir indicates the output directory could not be created.
	ErrCreateOutputDir = errors.New("output directory create failed")

	// ErrWriteOutput indicates the rendered document could not be written.
	ErrWriteOutput = errors.New("output write failed")
)
