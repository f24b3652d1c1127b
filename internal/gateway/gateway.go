// Package gateway wraps the remote source of record behind fetch and
// submit operations. The remote offers last-write-wins semantics, no
// transactions, and intermittent reachability; every failure surfaces
// as a TransportError or ParseError for the orchestrator to classify.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ifeomasylviadike/quotevault/internal/transport"
	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/logging"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// Gateway fetches remote snapshots and submits locally created records.
type Gateway interface {
	// Fetch obtains the full remote snapshot of records.
	Fetch(ctx context.Context) ([]quotes.Record, error)

	// Submit replicates a locally created record and returns the
	// record under its remote-assigned identity.
	Submit(ctx context.Context, rec quotes.Record) (quotes.Record, error)
}

// wireRecord is the remote wire shape. The remote knows nothing about
// local provenance bookkeeping.
type wireRecord struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// gateway is the HTTP implementation of Gateway.
type gateway struct {
	client  *transport.Client
	baseURL string
}

// New creates a gateway against the given base URL. An empty apiKey
// sends unauthenticated requests.
func New(baseURL, apiKey string) Gateway {
	var auth transport.Authenticator = &transport.NoAuth{}
	if apiKey != "" {
		auth = &transport.BearerAuth{}
	}
	return &gateway{
		client:  transport.New(auth, apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch implements Gateway.
func (g *gateway) Fetch(ctx context.Context) ([]quotes.Record, error) {
	url := g.baseURL + "/quotes"

	resp, err := g.client.Get(ctx, url)
	if err != nil {
		return nil, errors.WrapTransport("fetch", url, err)
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, errors.WrapTransport("fetch", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewTransportError("fetch", url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var wire []wireRecord
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errors.WrapParse("json", url, err)
	}

	recs := make([]quotes.Record, 0, len(wire))
	for _, w := range wire {
		// Entries the remote serves without an id or content cannot be
		// reconciled; skip them rather than poisoning the merge.
		if w.ID == "" || w.Text == "" || w.Category == "" {
			logging.Debug().
				Str("id", w.ID).
				Msg("Skipping malformed remote record")
			continue
		}
		recs = append(recs, quotes.Record{
			ID:        w.ID,
			Text:      w.Text,
			Category:  w.Category,
			UpdatedAt: time.Now(),
			Origin:    quotes.OriginRemote,
		})
	}

	logging.Debug().
		Int("records", len(recs)).
		Str("url", url).
		Msg("Fetched remote snapshot")
	return recs, nil
}

// Submit implements Gateway. The record posts without its local id;
// the remote assigns the authoritative identity in the response.
func (g *gateway) Submit(ctx context.Context, rec quotes.Record) (quotes.Record, error) {
	url := g.baseURL + "/quotes"

	payload, err := json.Marshal(wireRecord{
		Text:     rec.Text,
		Category: rec.Category,
	})
	if err != nil {
		return quotes.Record{}, errors.WrapParse("json", url, err)
	}

	resp, err := g.client.Post(ctx, url, payload)
	if err != nil {
		return quotes.Record{}, errors.WrapTransport("submit", url, err)
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return quotes.Record{}, errors.WrapTransport("submit", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return quotes.Record{}, errors.NewTransportError("submit", url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var w wireRecord
	if err := json.Unmarshal(body, &w); err != nil {
		return quotes.Record{}, errors.WrapParse("json", url, err)
	}
	if w.ID == "" {
		return quotes.Record{}, errors.NewParseError("json", url, "remote response missing id", nil)
	}

	confirmed := quotes.Record{
		ID:        w.ID,
		Text:      rec.Text,
		Category:  rec.Category,
		UpdatedAt: time.Now(),
		Origin:    quotes.OriginRemote,
	}
	logging.Debug().
		Str("local_id", rec.ID).
		Str("remote_id", confirmed.ID).
		Msg("Record replicated to remote")
	return confirmed, nil
}
