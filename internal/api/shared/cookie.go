package shared

import (
	"net/http"
	"strings"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "session"

// ReadSessionToken extracts and parses the session token from the request's
// cookie jar. It returns domain.ErrMalformedToken when the cookie is absent
// or its value is not a well-formed token.
func ReadSessionToken(r *http.Request) (domain.SessionToken, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return domain.SessionToken{}, domain.ErrMalformedToken
	}
	return domain.ParseSessionToken(strings.TrimSpace(cookie.Value))
}

// WriteSessionCookie sets the session cookie on the response. The cookie is
// HttpOnly so scripts cannot read the token.
func WriteSessionCookie(w http.ResponseWriter, token domain.SessionToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
	})
}
