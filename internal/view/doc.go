// Package view holds the client-only state behind the record browser and
// the record editor: search and category filtering, per-record secret
// visibility with the transient "copied" marker, and the edit form with its
// local validation.
//
// Nothing in this package talks to the network; the editor hands validated
// payloads to a [Saver], normally the vault service.
package view
