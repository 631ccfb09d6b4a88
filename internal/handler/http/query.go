package http

import (
	"net/url"
	"strconv"

	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
)

// pageParam parses a pagination query value. An absent value means unset
// and maps to zero; a non-numeric value reports false.
func pageParam(query url.Values, key string) (int, bool) {
	raw := query.Get(key)
	if raw == "" {
		return 0, true
	}
	if !validator.IsNumeric(raw) {
		return 0, false
	}
	n, _ := strconv.Atoi(raw)
	return n, true
}
