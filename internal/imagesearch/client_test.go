package imagesearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("returns the first result's content URL", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v7.0/images/search", r.URL.Path)
			assert.Equal(t, "gala apple", r.URL.Query().Get("q"))
			assert.Equal(t, "1", r.URL.Query().Get("count"))
			assert.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))
			w.Write([]byte(`{"value":[{"contentUrl":"https://cdn.test/apple.jpg"},{"contentUrl":"https://cdn.test/other.jpg"}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret", time.Second)
		url, err := client.Lookup(context.Background(), "gala apple")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/apple.jpg", url)
	})

	t.Run("no results is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"value":[]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret", time.Second)
		url, err := client.Lookup(context.Background(), "nothing")
		require.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("non-200 status surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "bad-key", time.Second)
		_, err := client.Lookup(context.Background(), "gala apple")
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("malformed body surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret", time.Second)
		_, err := client.Lookup(context.Background(), "gala apple")
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret", time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.Lookup(ctx, "gala apple")
		assert.Error(t, err)
	})
}
