package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
)

const copiedMark = "  ✓ copied"

// renderDetail shows every field of r. The secret stays masked unless vis
// reveals it; the last copied field carries a marker until it expires.
func renderDetail(r models.CredentialRecord, vis *view.Visibility) string {
	var b strings.Builder

	copied := func(f view.Field) string {
		if vis != nil && vis.IsCopied(r.ID, f) {
			return statusStyle.Render(copiedMark)
		}
		return ""
	}

	secret := maskSecret(r.Secret)
	if vis != nil && vis.IsRevealed(r.ID) {
		secret = r.Secret
	}

	b.WriteString(labelStyle.Render("Title") + titleStyle.Render(r.Title) + " " + categoryBadge(r.Category) + "\n")
	b.WriteString(labelStyle.Render("Website") + valueOrDash(r.Website) + copied(view.FieldWebsite) + "\n")
	b.WriteString(labelStyle.Render("Username") + valueOrDash(r.Username) + copied(view.FieldUsername) + "\n")
	b.WriteString(labelStyle.Render("Password") + secret + copied(view.FieldSecret) + "\n")
	if r.Notes != "" {
		b.WriteString(labelStyle.Render("Notes") + r.Notes + "\n")
	}

	dates := labelStyle.Render("Created") + valueOrDash(r.CreatedAt.Display())
	if r.WasUpdated() {
		dates += "   Updated " + r.UpdatedAt.Display()
	}
	b.WriteString(dates)

	return b.String()
}

// copyValue returns the text of field f of r and whether there is anything
// to copy.
func copyValue(r models.CredentialRecord, f view.Field) (string, bool) {
	var v string
	switch f {
	case view.FieldUsername:
		v = r.Username
	case view.FieldSecret:
		v = r.Secret
	case view.FieldWebsite:
		v = r.Website
	}
	return v, v != ""
}
