package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/lifetracker/internal/apierror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto its HTTP status and a {"error": message} body.
// Errors without an associated status report 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apierror.StatusOf(err), map[string]string{"error": apierror.MessageOf(err)})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierror.BadRequest("Invalid JSON body")
	}
	return nil
}
