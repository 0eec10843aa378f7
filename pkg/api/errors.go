package api

import "errors"

var (
	ErrBinaryNotFound = errors.New("binary not found")
	// ErrFolderNotFound is returned when none of the candidate Downloads folders exists.
	ErrFolderNotFound = errors.New("downloads folder not found")
)
