package adapter

import (
	"net/url"
	"strings"
)

const apiPrefix = "/api/v1"

// PhotoRef builds the token-free reference of an uploaded photo. It is safe
// to share with peers; ResourceURL turns it into a fetchable URL.
func PhotoRef(photoID string) string {
	return apiPrefix + "/files/photo/" + url.PathEscape(photoID)
}

// ResourceURL implements [ServerAdapter].
//
// Accepted references:
//
//	https://cdn.example.com/a.jpg      used as is
//	/api/v1/files/download?...         joined to the server origin
//	/uploads/a.jpg                     joined to the API root
//	3f2a9c                             treated as a photo id
//
// The access token, when set, is appended as the "token" query parameter
// unless the reference already carries one.
func (h *httpServerAdapter) ResourceURL(ref string) string {
	ref = strings.TrimSpace(ref)

	var full string
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		full = ref
	case strings.HasPrefix(ref, apiPrefix+"/"):
		full = h.origin + ref
	case strings.HasPrefix(ref, "/"):
		full = h.baseURL + ref
	default:
		full = h.origin + PhotoRef(ref)
	}

	return withToken(full, h.Token())
}

func withToken(raw, token string) string {
	if token == "" {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	if q.Has("token") {
		return raw
	}
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String()
}
