package routebind

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

var queryEncoder = schema.NewEncoder()

func init() {
	queryEncoder.SetAliasTag("schema")
}

// Query encodes in's fields into a URL query string. Field names follow
// `schema` struct tags when present. Routes that carry their input in the
// query string (typically GET routes) pair this with Path to build a full
// request URL.
func (r Route[In, Out]) Query(in In) (string, error) {
	values := url.Values{}
	if err := queryEncoder.Encode(in, values); err != nil {
		return "", fmt.Errorf("encode query for %q: %w", r.meta.Path, err)
	}
	return values.Encode(), nil
}
