package tui

import (
	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
)

type authCheckedMsg struct{}

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	username string
	err      error
}

type loggedOutMsg struct {
	expired bool
}

type listLoadedMsg struct {
	err error
}

type itemSavedMsg struct {
	sub view.Submission
	err error
}

type itemDeletedMsg struct {
	id  models.ID
	err error
}

type copiedMsg struct {
	id    models.ID
	field view.Field
}

type copyFailedMsg struct {
	err error
}

type copyExpiredMsg struct{}

type clearStatusMsg struct{}
