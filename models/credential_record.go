// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialRecord is a single stored secret entry owned by one
// authenticated user. Identifier and timestamps are assigned by the server.
type CredentialRecord struct {
	// ID is the server-assigned unique identifier of the record.
	ID ID `json:"id"`

	// Title is the display name of the record. Required.
	Title string `json:"title"`

	// Website is an optional URL the credentials belong to.
	Website string `json:"website"`

	// Username is an optional login or e-mail.
	Username string `json:"username"`

	// Secret is the stored password. Required.
	Secret string `json:"password"`

	// Notes holds optional free text.
	Notes string `json:"notes"`

	// Category is one of the fixed [Category] labels or empty for
	// uncategorized records.
	Category Category `json:"category"`

	// CreatedAt is set by the server when the record is created.
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is recomputed by the server on every update.
	UpdatedAt Timestamp `json:"updated_at"`
}

// Payload returns the client-editable fields of the record.
func (r CredentialRecord) Payload() RecordPayload {
	return RecordPayload{
		Title:    r.Title,
		Website:  r.Website,
		Username: r.Username,
		Secret:   r.Secret,
		Notes:    r.Notes,
		Category: r.Category,
	}
}

// WasUpdated reports whether the record carries an update time different
// from its creation time.
func (r CredentialRecord) WasUpdated() bool {
	return !r.UpdatedAt.IsZero() && !r.UpdatedAt.Equal(r.CreatedAt.Time)
}

// RecordPayload is the body of create and update requests: every record
// field except the server-assigned identifier and timestamps.
type RecordPayload struct {
	Title    string   `json:"title"`
	Website  string   `json:"website"`
	Username string   `json:"username"`
	Secret   string   `json:"password"`
	Notes    string   `json:"notes"`
	Category Category `json:"category"`
}
