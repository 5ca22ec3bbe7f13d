package api

import (
	"encoding/json"
	"net/http"
)

// maxRequestBody caps request payloads at 1 MiB.
const maxRequestBody = 1 << 20

// DecodeJSON decodes the request body into dst, rejecting unknown fields
// and oversized payloads.
func DecodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
