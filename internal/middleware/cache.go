// Package middleware ...
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	cache "github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	code   int
	header http.Header
	body   []byte
}

// Cached serves a memoized copy of the handler's response for ttl. Hits
// replay the status code and headers, not just the body.
func Cached(ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	storage := cache.New(ttl, 2*ttl)

	write := func(w http.ResponseWriter, resp *cachedResponse) {
		for k, v := range resp.header {
			w.Header()[k] = v
		}

		w.WriteHeader(resp.code)
		_, _ = w.Write(resp.body)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if v, ok := storage.Get(r.RequestURI); ok {
			write(w, v.(*cachedResponse))
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		resp := &cachedResponse{
			code:   c.Code,
			header: c.Header(),
			body:   c.Body.Bytes(),
		}

		storage.Set(r.RequestURI, resp, cache.DefaultExpiration)

		write(w, resp)
	}
}
