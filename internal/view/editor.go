package view

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-client/internal/crypto"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/models"
)

// Saver persists editor submissions. service.VaultService satisfies it.
type Saver interface {
	Create(ctx context.Context, payload models.RecordPayload) error
	Update(ctx context.Context, id models.ID, payload models.RecordPayload) error
}

// Submission is a validated payload handed out by [Editor.Begin].
type Submission struct {
	// ID is empty for a new record.
	ID      models.ID
	Payload models.RecordPayload

	seq uint64
}

// IsUpdate reports whether the submission edits an existing record.
func (s Submission) IsUpdate() bool {
	return !s.ID.IsZero()
}

// Save sends the submission to saver.
func (s Submission) Save(ctx context.Context, saver Saver) error {
	if s.IsUpdate() {
		return saver.Update(ctx, s.ID, s.Payload)
	}
	return saver.Create(ctx, s.Payload)
}

// Editor is the create/edit form state. It is owned by the UI goroutine;
// the network call between Begin and Finish may run elsewhere.
type Editor struct {
	open    bool
	id      models.ID
	draft   models.RecordPayload
	pending bool
	seq     uint64

	generator crypto.SecretGenerator
}

// NewEditor returns a closed editor that draws generated secrets from gen.
func NewEditor(gen crypto.SecretGenerator) *Editor {
	if gen == nil {
		gen = crypto.NewSecretGenerator(nil)
	}
	return &Editor{generator: gen}
}

// Open seeds the form from existing, or with empty defaults when existing
// is nil. Any pending submission of a previous form is abandoned.
func (e *Editor) Open(existing *models.CredentialRecord) {
	e.seq++
	e.open = true
	e.pending = false
	e.id = ""
	e.draft = models.RecordPayload{}

	if existing != nil {
		e.id = existing.ID
		e.draft = existing.Payload()
	}
}

// Cancel closes the form and discards the draft. A submission still in
// flight will be ignored by Finish.
func (e *Editor) Cancel() {
	e.seq++
	e.open = false
	e.pending = false
	e.id = ""
	e.draft = models.RecordPayload{}
}

func (e *Editor) IsOpen() bool    { return e.open }
func (e *Editor) IsPending() bool { return e.pending }

// IsEdit reports whether the form edits an existing record.
func (e *Editor) IsEdit() bool { return !e.id.IsZero() }

// ID returns the id of the edited record, empty for a new one.
func (e *Editor) ID() models.ID { return e.id }

// Draft returns the current form values.
func (e *Editor) Draft() models.RecordPayload { return e.draft }

// SetDraft replaces the form values. It is ignored while the form is closed
// or a submission is pending.
func (e *Editor) SetDraft(p models.RecordPayload) {
	if !e.open || e.pending {
		return
	}
	e.draft = p
}

// GenerateSecret puts a freshly generated secret into the draft and returns
// it.
func (e *Editor) GenerateSecret() (string, error) {
	if !e.open {
		return "", ErrEditorClosed
	}
	secret, err := e.generator.Generate()
	if err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	e.draft.Secret = secret
	return secret, nil
}

// Begin validates the draft and marks the form pending. Validation errors
// leave the form open and untouched.
func (e *Editor) Begin() (Submission, error) {
	if !e.open {
		return Submission{}, ErrEditorClosed
	}
	if e.pending {
		return Submission{}, ErrSubmitPending
	}

	payload, err := Validate(e.draft)
	if err != nil {
		return Submission{}, err
	}

	e.pending = true
	return Submission{ID: e.id, Payload: payload, seq: e.seq}, nil
}

// Finish applies the outcome of sub. The form closes when the write
// succeeded, including a successful write whose list refresh failed, and
// stays open for correction otherwise. It returns false when sub belongs to
// a form that was cancelled or reopened since.
func (e *Editor) Finish(sub Submission, err error) bool {
	if !e.open || sub.seq != e.seq {
		return false
	}
	e.pending = false

	if err == nil || errors.Is(err, service.ErrRefreshAfterWrite) {
		e.open = false
		e.id = ""
		e.draft = models.RecordPayload{}
	}
	return true
}

// Submit runs Begin, the save and Finish in one call.
func (e *Editor) Submit(ctx context.Context, saver Saver) error {
	sub, err := e.Begin()
	if err != nil {
		return err
	}
	err = sub.Save(ctx, saver)
	e.Finish(sub, err)
	return err
}

// Validate checks p and returns the payload to send: title and secret are
// required, the website must be an http(s) URL (a bare host gets https://)
// and the category must be empty or a known label.
func Validate(p models.RecordPayload) (models.RecordPayload, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return p, ErrTitleRequired
	}
	if p.Secret == "" {
		return p, ErrSecretRequired
	}

	website, err := normalizeWebsite(p.Website)
	if err != nil {
		return p, err
	}
	p.Website = website

	p.Username = strings.TrimSpace(p.Username)
	if p.Category != "" && !p.Category.IsKnown() {
		return p, fmt.Errorf("%w: %q", ErrInvalidCategory, p.Category)
	}

	return p, nil
}

func normalizeWebsite(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidWebsite, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidWebsite
	}
	return u.String(), nil
}
