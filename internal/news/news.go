// Package news fetches market headlines from a configured upstream feed
// and shapes them for the dashboard. With no feed configured the fetcher
// returns an empty list rather than an error.
package news

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
	"github.com/go-resty/resty/v2"
)

// maxHeadlines caps one dashboard page of headlines.
const maxHeadlines = 20

// Fetcher proxies the upstream headline feed.
type Fetcher struct {
	client  *resty.Client
	feedURL string
	logger  *logger.Logger
}

// NewFetcher constructs a [Fetcher] from feed settings.
func NewFetcher(cfg config.News, log *logger.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Fetcher{
		client:  client,
		feedURL: cfg.FeedURL,
		logger:  log,
	}
}

// Configured reports whether an upstream feed URL is set.
func (f *Fetcher) Configured() bool {
	return f.feedURL != ""
}

// Headlines returns up to 20 upstream headlines. An unconfigured fetcher
// returns an empty slice and no error.
func (f *Fetcher) Headlines(ctx context.Context) ([]models.NewsItem, error) {
	if !f.Configured() {
		return []models.NewsItem{}, nil
	}

	var items []models.NewsItem
	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get(f.feedURL)
	if err != nil {
		f.logger.Err(err).Str("func", "*Fetcher.Headlines").Msg("error fetching headlines")
		return nil, fmt.Errorf("error fetching headlines: %w", err)
	}
	if resp.IsError() {
		f.logger.Error().Str("func", "*Fetcher.Headlines").Int("status", resp.StatusCode()).Msg("upstream feed error")
		return nil, fmt.Errorf("upstream feed returned status %d", resp.StatusCode())
	}

	if len(items) > maxHeadlines {
		items = items[:maxHeadlines]
	}
	if items == nil {
		items = []models.NewsItem{}
	}

	return items, nil
}
