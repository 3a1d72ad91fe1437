package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlines_Unconfigured(t *testing.T) {
	f := NewFetcher(config.News{}, logger.Nop())

	items, err := f.Headlines(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHeadlines_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title": "Markets rally", "source": "wire", "url": "https://example.com/1"},
			{"title": "Fed holds rates", "source": "wire", "url": "https://example.com/2"}
		]`))
	}))
	defer srv.Close()

	f := NewFetcher(config.News{FeedURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())

	items, err := f.Headlines(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Markets rally", items[0].Title)
}

func TestHeadlines_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewFetcher(config.News{FeedURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())

	_, err := f.Headlines(context.Background())
	require.Error(t, err)
}

func TestHeadlines_CapsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[` + repeatedItems(30) + `]`))
	}))
	defer srv.Close()

	f := NewFetcher(config.News{FeedURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())

	items, err := f.Headlines(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, maxHeadlines)
}

func repeatedItems(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += `{"title": "headline", "source": "wire"}`
	}
	return out
}
