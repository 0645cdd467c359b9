package httpapi

import "net/http"

type AuthCheckResponseDTO struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// AuthCheck reports whether the request carries a valid session.
// GET /api/auth-check
func AuthCheck(w http.ResponseWriter, r *http.Request) {
	if sess := sessionFromContext(r.Context()); sess != nil {
		respondJSON(w, http.StatusOK, AuthCheckResponseDTO{
			Authenticated: true,
			Username:      sess.Username,
		})
		return
	}
	respondJSON(w, http.StatusOK, AuthCheckResponseDTO{Authenticated: false})
}
