// Package requestmeta resolves request scheme and origin facts.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls which request metadata is trusted.
//
// X-Forwarded-Proto is only considered when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether r should be treated as HTTPS.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// CrossOrigin reports whether r carries an Origin (or, failing that, a
// Referer) that names a different scheme, host, or port than the request.
// Requests without either header are not considered cross-origin.
func CrossOrigin(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	source := strings.TrimSpace(r.Header.Get("Origin"))
	if source == "" {
		source = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if source == "" {
		return false
	}
	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		return true
	}
	reqScheme := scheme(r, policy)
	reqHost, reqPort := hostPort(r.Host, reqScheme)
	if reqHost == "" && r.URL != nil {
		reqHost, reqPort = hostPort(r.URL.Host, reqScheme)
	}
	srcScheme := strings.ToLower(parsed.Scheme)
	srcHost, srcPort := hostPort(parsed.Host, srcScheme)
	return srcScheme != reqScheme || srcHost != reqHost || srcPort != reqPort
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch s := strings.ToLower(r.URL.Scheme); s {
		case "http", "https":
			return s
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func hostPort(rawHost string, scheme string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	port := parsed.Port()
	if port == "" {
		switch scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		}
	}
	return strings.ToLower(parsed.Hostname()), port
}
