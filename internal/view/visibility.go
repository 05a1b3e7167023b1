package view

import (
	"time"

	"github.com/MKhiriev/go-pass-client/models"
)

// DefaultCopyResetDelay is how long the "copied" marker stays on.
const DefaultCopyResetDelay = 2 * time.Second

// Field names a copyable field of a record.
type Field string

const (
	FieldUsername Field = "username"
	FieldSecret   Field = "secret"
	FieldWebsite  Field = "website"
)

// Clock returns the current time.
type Clock func() time.Time

type copiedMarker struct {
	id        models.ID
	field     Field
	expiresAt time.Time
}

// Visibility tracks which records show their secret in clear text and which
// field was copied last. It is owned by the UI goroutine and is not safe for
// concurrent use.
type Visibility struct {
	revealed map[models.ID]struct{}
	copied   *copiedMarker

	delay time.Duration
	now   Clock
}

// NewVisibility returns an empty visibility state. A non-positive delay
// selects [DefaultCopyResetDelay]; a nil clock selects time.Now.
func NewVisibility(delay time.Duration, now Clock) *Visibility {
	if delay <= 0 {
		delay = DefaultCopyResetDelay
	}
	if now == nil {
		now = time.Now
	}
	return &Visibility{
		revealed: make(map[models.ID]struct{}),
		delay:    delay,
		now:      now,
	}
}

// Delay returns the lifetime of the copied marker.
func (v *Visibility) Delay() time.Duration {
	return v.delay
}

// Toggle flips the secret visibility of id and returns the new state.
func (v *Visibility) Toggle(id models.ID) bool {
	if _, ok := v.revealed[id]; ok {
		delete(v.revealed, id)
		return false
	}
	v.revealed[id] = struct{}{}
	return true
}

// IsRevealed reports whether the secret of id is shown.
func (v *Visibility) IsRevealed(id models.ID) bool {
	_, ok := v.revealed[id]
	return ok
}

// MarkCopied records a successful copy of field of id, replacing any earlier
// marker, and returns the moment the marker expires.
func (v *Visibility) MarkCopied(id models.ID, field Field) time.Time {
	expiresAt := v.now().Add(v.delay)
	v.copied = &copiedMarker{id: id, field: field, expiresAt: expiresAt}
	return expiresAt
}

// IsCopied reports whether field of id carries an unexpired copied marker.
func (v *Visibility) IsCopied(id models.ID, field Field) bool {
	if v.copied == nil || v.copied.id != id || v.copied.field != field {
		return false
	}
	return v.now().Before(v.copied.expiresAt)
}

// Expire drops the copied marker if it has run out and reports whether a
// marker was dropped.
func (v *Visibility) Expire() bool {
	if v.copied == nil || v.now().Before(v.copied.expiresAt) {
		return false
	}
	v.copied = nil
	return true
}

// Retain forgets state for records that are no longer in records.
func (v *Visibility) Retain(records []models.CredentialRecord) {
	present := make(map[models.ID]struct{}, len(records))
	for _, r := range records {
		present[r.ID] = struct{}{}
	}
	for id := range v.revealed {
		if _, ok := present[id]; !ok {
			delete(v.revealed, id)
		}
	}
	if v.copied != nil {
		if _, ok := present[v.copied.id]; !ok {
			v.copied = nil
		}
	}
}

// Reset hides every secret and clears the copied marker.
func (v *Visibility) Reset() {
	clear(v.revealed)
	v.copied = nil
}
