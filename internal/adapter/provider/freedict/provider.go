package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/provider"
)

// Provider fetches dictionary entries from the FreeDictionary API.
type Provider struct {
	baseURL    string
	maxBody    int64
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the dictionary section of the config.
func NewProvider(cfg config.DictionaryConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxBody:    cfg.MaxResponseBytes,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchEntries fetches the dictionary entries for the given word, in API order.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) FetchEntries(ctx context.Context, word string) ([]provider.Entry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		p.log.DebugContext(ctx, "freedict word not found", slog.String("word", word))
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if p.maxBody > 0 {
		body = io.LimitReader(resp.Body, p.maxBody)
	}

	var entries []apiEntry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(result)),
	)

	return result, nil
}

// mapAPIResponse converts API entries into provider entries. Nothing is merged
// or deduplicated: consumers rely on upstream order.
func mapAPIResponse(entries []apiEntry) []provider.Entry {
	result := make([]provider.Entry, 0, len(entries))

	for _, e := range entries {
		entry := provider.Entry{
			Word:      e.Word,
			Phonetics: make([]provider.Phonetic, 0, len(e.Phonetics)),
			Meanings:  make([]provider.Meaning, 0, len(e.Meanings)),
		}

		for _, ph := range e.Phonetics {
			entry.Phonetics = append(entry.Phonetics, provider.Phonetic{
				Text:  ph.Text,
				Audio: ph.Audio,
			})
		}

		for _, m := range e.Meanings {
			meaning := provider.Meaning{
				PartOfSpeech: m.PartOfSpeech,
				Definitions:  make([]provider.Definition, 0, len(m.Definitions)),
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, provider.Definition{
					Definition: d.Definition,
					Example:    d.Example,
				})
			}
			entry.Meanings = append(entry.Meanings, meaning)
		}

		result = append(result, entry)
	}

	return result
}
