package view

import "errors"

// Local validation errors returned by [Editor.Begin] before any request is
// made.
var (
	ErrTitleRequired   = errors.New("title is required")
	ErrSecretRequired  = errors.New("password is required")
	ErrInvalidWebsite  = errors.New("website is not a valid http(s) URL")
	ErrInvalidCategory = errors.New("unknown category")

	ErrEditorClosed  = errors.New("editor is not open")
	ErrSubmitPending = errors.New("a submission is already in progress")
)
