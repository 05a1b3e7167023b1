package view

import (
	"strings"

	"github.com/MKhiriev/go-pass-client/models"
)

// Empty-state hints shown when the visible list is empty.
const (
	HintNoRecords = "Start by adding your first password"
	HintNoMatches = "Try adjusting your search or filter criteria"
)

// Filter is the search and category selection of the record browser.
// The zero value shows every record.
type Filter struct {
	Search   string
	Category models.Category
}

// NewFilter returns a filter that shows every record.
func NewFilter() Filter {
	return Filter{Category: models.CategoryAll}
}

// IsIdentity reports whether the filter lets every record through.
func (f Filter) IsIdentity() bool {
	return f.Search == "" && f.selection() == models.CategoryAll
}

func (f Filter) selection() models.Category {
	if f.Category == "" {
		return models.CategoryAll
	}
	return f.Category
}

// Matches reports whether r passes both the search term and the category
// selection. The search is a case-insensitive substring match on the title,
// website and username.
func (f Filter) Matches(r models.CredentialRecord) bool {
	return f.matchesSearch(r) && f.matchesCategory(r)
}

func (f Filter) matchesSearch(r models.CredentialRecord) bool {
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Website), term) ||
		strings.Contains(strings.ToLower(r.Username), term)
}

func (f Filter) matchesCategory(r models.CredentialRecord) bool {
	sel := f.selection()
	return sel == models.CategoryAll || r.Category.Normalize() == sel
}

// Apply returns the records that match, in their original order. The input
// slice is never modified.
func (f Filter) Apply(records []models.CredentialRecord) []models.CredentialRecord {
	visible := make([]models.CredentialRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Reconcile resets the category selection to "all" when it is no longer
// offered by categories.
func (f Filter) Reconcile(categories []models.Category) Filter {
	sel := f.selection()
	for _, c := range categories {
		if c == sel {
			f.Category = sel
			return f
		}
	}
	f.Category = models.CategoryAll
	return f
}

// EmptyHint returns the message for an empty visible list.
func (f Filter) EmptyHint() string {
	if f.IsIdentity() {
		return HintNoRecords
	}
	return HintNoMatches
}

// Categories returns "all" followed by every distinct category present in
// records, in order of first appearance. Records without a category
// contribute "uncategorized".
func Categories(records []models.CredentialRecord) []models.Category {
	out := []models.Category{models.CategoryAll}
	seen := map[models.Category]struct{}{}

	for _, r := range records {
		c := r.Category.Normalize()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
