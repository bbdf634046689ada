// Package routepath stores canonical HTTP paths for the board.
package routepath

import (
	"net/url"
)

const (
	Root                    = "/"
	Health                  = "/healthz"
	StaticPrefix            = "/static/"
	BoardPrefix             = "/board/"
	Cards                   = "/board/cards"
	UIErrors                = "/board/ui-errors"
	CapabilitiesPrefix      = "/board/capabilities/"
	CapabilityActionPattern = CapabilitiesPrefix + "{capability}/{action}"
	EmailParam              = "email"
	MessageParam            = "message"
	ActionRegisterSegment   = "register"
	ActionUnregisterSegment = "unregister"
	StaticStylesheet        = StaticPrefix + "board.css"
	StaticScript            = StaticPrefix + "board.js"
)

// CapabilityAction returns the mutation route for one capability. The
// name is escaped as a single path segment so names containing spaces,
// ampersands, or slashes round-trip.
func CapabilityAction(name string, action string) string {
	return CapabilitiesPrefix + url.PathEscape(name) + "/" + url.PathEscape(action)
}

// WithEmail appends the email query parameter to path when email is set.
func WithEmail(path string, email string) string {
	if email == "" {
		return path
	}
	return path + "?" + url.Values{EmailParam: {email}}.Encode()
}
