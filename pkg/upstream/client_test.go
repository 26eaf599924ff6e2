package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServersDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers-open", r.URL.Path)
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(`{"result":true,"data":[{"id":"6390db9a9401bed7d6409dbb","serverCode":"de1","serverName":"DE1","serverRegion":"Europe","isActive":true,"tags":["vanilla"]}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{PanelURL: srv.URL})
	servers, err := c.Servers(context.Background())
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "de1", servers[0].ServerCode)
	assert.True(t, servers[0].IsActive)
	assert.Equal(t, []string{"vanilla"}, servers[0].Tags)
}

func TestConditionalGetUsesETag(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(`{"result":true,"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{PanelURL: srv.URL})
	ctx := context.Background()

	_, err := c.Servers(ctx)
	require.NoError(t, err)

	_, err = c.Servers(ctx)
	assert.ErrorIs(t, err, ErrNotModified)
	assert.Equal(t, 2, calls)
}

func TestResultFalseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":false,"data":null}`))
	}))
	defer srv.Close()

	c := NewClient(Config{PanelURL: srv.URL})
	_, err := c.Servers(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotModified)
}

func TestStatusErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("serverCode") {
		case "down":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{PanelURL: srv.URL})
	ctx := context.Background()

	_, err := c.ActiveTrains(ctx, "down")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Transient())

	_, err = c.ActiveTrains(ctx, "gone")
	require.True(t, errors.As(err, &se))
	assert.False(t, se.Transient())
}

func TestETagScopedPerURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("serverCode")
		if r.Header.Get("If-None-Match") == `"`+code+`"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"`+code+`"`)
		_, _ = w.Write([]byte(`{"result":true,"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{PanelURL: srv.URL})
	ctx := context.Background()

	_, err := c.DispatchPosts(ctx, "de1")
	require.NoError(t, err)

	// Different server: must not reuse de1's ETag.
	_, err = c.DispatchPosts(ctx, "pl2")
	require.NoError(t, err)

	_, err = c.DispatchPosts(ctx, "de1")
	assert.ErrorIs(t, err, ErrNotModified)
}
