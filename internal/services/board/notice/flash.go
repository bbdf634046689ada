package notice

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/capabilityboard/internal/services/board/platform/requestmeta"
)

// CookieName carries one notice across a Post/Redirect/Get round trip.
const CookieName = "board_flash"

const (
	// maxFlashRunes bounds literal notice text.
	maxFlashRunes = 1024
	// maxFlashValue bounds the encoded cookie value so browsers keep it.
	maxFlashValue = 3072
)

// WriteFlash stores n for the next page render.
func WriteFlash(w http.ResponseWriter, r *http.Request, n Notice, policy requestmeta.SchemePolicy) {
	if w == nil || !n.Valid() {
		return
	}
	n.Key = strings.TrimSpace(n.Key)
	value, ok := encodeFlash(n)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadFlash reads and expires the flash cookie. A malformed cookie is
// still expired.
func ReadFlash(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   requestmeta.IsHTTPS(r, policy),
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
	return decodeFlash(cookie.Value)
}

// encodeFlash trims n.Text on rune boundaries until the encoded value
// fits maxFlashValue.
func encodeFlash(n Notice) (string, bool) {
	runes := []rune(n.Text)
	if len(runes) > maxFlashRunes {
		runes = runes[:maxFlashRunes]
	}
	for {
		n.Text = string(runes)
		payload, err := json.Marshal(n)
		if err != nil {
			return "", false
		}
		value := base64.RawURLEncoding.EncodeToString(payload)
		if len(value) <= maxFlashValue {
			return value, true
		}
		if len(runes) == 0 {
			return "", false
		}
		next := len(runes) * maxFlashValue / len(value)
		if next >= len(runes) {
			next = len(runes) - 1
		}
		runes = runes[:next]
	}
}

func decodeFlash(raw string) (Notice, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(decoded, &n); err != nil {
		return Notice{}, false
	}
	kind, ok := ParseKind(string(n.Kind))
	if !ok {
		return Notice{}, false
	}
	n.Kind = kind
	return n, true
}
