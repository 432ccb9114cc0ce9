package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var errNotScalar = errors.New("want a string or a number")

// flexString accepts a JSON string or number and keeps its text. Browser
// forms send amounts either way.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errNotScalar
	}
	*f = flexString(n.String())
	return nil
}

// createCampaignRequest is the body of POST /api/campaigns. Duration is in
// days. From is the creator's account; when set its balance is checked.
type createCampaignRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Budget      flexString `json:"budget"`
	Reward      flexString `json:"reward"`
	Duration    flexString `json:"duration"`
	From        string     `json:"from"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type authRequest struct {
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}
