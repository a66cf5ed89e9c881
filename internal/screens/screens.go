// Package screens binds the generic CRUD engine to the four store resources.
// Each file mirrors one admin screen: its table columns, its form schema, and
// the pure payload shaping that turns form values into a backend record.
package screens

import "strings"

// optString returns nil for blank input so optional fields are omitted from
// the payload instead of being sent as empty strings.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optID returns nil for a non-positive id, the sentinel the number inputs use
// for "none".
func optID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func idOrZero(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
