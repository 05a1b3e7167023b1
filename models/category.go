// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"unicode"
	"unicode/utf8"
)

// Category labels a credential record. The empty value means the record is
// uncategorized.
type Category string

// Fixed category labels offered by the record form.
const (
	CategorySocial        Category = "social"
	CategoryEmail         Category = "email"
	CategoryBanking       Category = "banking"
	CategoryWork          Category = "work"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryGaming        Category = "gaming"
	CategoryEducation     Category = "education"
)

// Filter sentinels. They never appear on stored records.
const (
	// CategoryAll selects every record regardless of category.
	CategoryAll Category = "all"
	// CategoryUncategorized selects records without a category.
	CategoryUncategorized Category = "uncategorized"
)

// Categories is the fixed label set in display order.
var Categories = []Category{
	CategorySocial,
	CategoryEmail,
	CategoryBanking,
	CategoryWork,
	CategoryShopping,
	CategoryEntertainment,
	CategoryGaming,
	CategoryEducation,
}

// IsKnown reports whether c is one of the fixed labels.
func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Normalize maps the empty category to [CategoryUncategorized].
func (c Category) Normalize() Category {
	if c == "" {
		return CategoryUncategorized
	}
	return c
}

// Label returns a human-readable, capitalised label.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All Categories"
	case "", CategoryUncategorized:
		return "Uncategorized"
	}
	s := string(c)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
