package menu

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/menu"

// Source loads menu items from static JSON resources.
// A location is a file path, a file:// URL or an http(s):// URL; resources
// ending in .gz are decompressed on the fly.
type Source struct {
	locations []string
	client    *http.Client
	log       *slog.Logger
}

// Option configures a Source
type Option func(*Source)

// WithHTTPClient sets the client used for http(s) locations
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// WithTimeout sets the timeout applied to http(s) fetches, keeping any
// client set by WithHTTPClient
func WithTimeout(timeout time.Duration) Option {
	return func(s *Source) {
		client := *s.client
		client.Timeout = timeout
		s.client = &client
	}
}

// WithLogger sets the logger used to report load failures
func WithLogger(log *slog.Logger) Option {
	return func(s *Source) {
		s.log = log
	}
}

// NewSource creates a menu source reading the given locations in order
func NewSource(locations []string, opts ...Option) *Source {
	s := &Source{
		locations: locations,
		client:    &http.Client{Timeout: 30 * time.Second},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadResult holds the result of loading a single location
type loadResult struct {
	index int
	items []models.MenuItem
	err   error
}

// Load fetches every location concurrently and merges the items in
// location order. It never fails: a location that cannot be read or parsed
// contributes no items and is logged.
func (s *Source) Load(ctx context.Context) []models.MenuItem {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "menu.Source.Load")
	defer span.End()

	resultChan := make(chan loadResult, len(s.locations))

	var wg sync.WaitGroup
	for i, location := range s.locations {
		wg.Add(1)
		go func(index int, location string) {
			defer wg.Done()

			items, err := s.loadLocation(ctx, location)
			resultChan <- loadResult{index: index, items: items, err: err}
		}(i, location)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]loadResult, len(s.locations))
	for result := range resultChan {
		results[result.index] = result
	}

	items := make([]models.MenuItem, 0)
	seen := make(map[int64]bool)
	for i, result := range results {
		if result.err != nil {
			s.log.Warn("failed to load menu", "location", s.locations[i], "error", result.err)
			continue
		}
		for _, item := range result.items {
			if !item.WellFormed() {
				s.log.Warn("skipping malformed menu item", "location", s.locations[i], "item_id", item.ID)
				continue
			}
			if seen[item.ID] {
				s.log.Warn("skipping duplicate menu item", "location", s.locations[i], "item_id", item.ID)
				continue
			}
			seen[item.ID] = true
			items = append(items, item)
		}
	}

	span.SetAttributes(
		attribute.Int("menu.locations", len(s.locations)),
		attribute.Int("menu.items", len(items)),
	)
	return items
}

// loadLocation reads and decodes a single location
func (s *Source) loadLocation(ctx context.Context, location string) ([]models.MenuItem, error) {
	body, err := s.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(strings.ToLower(location), ".gz") {
		gzReader, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return parseItems(r)
}

// open returns a reader for a file or http(s) location
func (s *Source) open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return s.fetch(ctx, location)
	}

	path := location
	if err == nil && u.Scheme == "file" {
		path = u.Path
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	return f, nil
}

// fetch downloads a location over HTTP
func (s *Source) fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download menu: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// parseItems decodes a JSON array of menu items
func parseItems(r io.Reader) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}
	return items, nil
}
