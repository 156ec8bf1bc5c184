package leaderboardhandlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a single JSON object into dst. The returned message is
// suitable for a 422 detail.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Sprintf("invalid request body: %v", err), false
	}
	return "", true
}

// queryInt parses an optional integer query parameter; absent yields nil.
func queryInt(r *http.Request, name string) (*int, string, bool) {
	q := r.URL.Query()
	if !q.Has(name) {
		return nil, "", true
	}
	n, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return nil, fmt.Sprintf("%s must be an integer", name), false
	}
	return &n, "", true
}
