package httputil

import (
	"encoding/json"
	"net/http"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
)

// MaxBodyBytes caps request bodies. Ring specs are small; anything bigger
// than this is not a spec.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes a single JSON value from the request body into dst.
// The body is capped at MaxBodyBytes and trailing content is rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return padringerrors.Wrap(padringerrors.ErrCodeInvalidFormat, err,
			"decode request body")
	}
	if dec.More() {
		return padringerrors.New(padringerrors.ErrCodeInvalidFormat,
			"request body must hold a single JSON value")
	}
	return nil
}
