// Package viaapi implémente les ports de internal/domain/repository contre l'API REST
// de gestion (Laravel). Le backend est la source de vérité: ce client se limite au
// façonnage des requêtes, à la normalisation des enveloppes et à la traduction des erreurs.
package viaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/repository"
)

// Vérifie à la compilation que Client implémente tous les ports distants.
var _ repository.Gateway = (*Client)(nil)

const (
	// DefaultTimeout délai réseau fixe par requête.
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 8 << 20
	headerRequestID  = "X-Request-ID"
)

// Options paramètres de construction du client.
type Options struct {
	BaseURL    string
	Token      string        // jeton Bearer optionnel
	Timeout    time.Duration // 0 = DefaultTimeout
	Logger     zerolog.Logger
	Debug      bool // trace chaque requête/réponse (hors production)
	HTTPClient *http.Client
}

// Client adaptateur HTTP de l'API de gestion.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
	debug      bool
}

// NewClient construit le client. Sans HTTPClient fourni, un client net/http avec
// le timeout configuré est créé.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		token:      opts.Token,
		httpClient: hc,
		log:        opts.Logger.With().Str("component", "viaapi").Logger(),
		debug:      opts.Debug,
	}
}

// do exécute la requête et renvoie le corps brut d'une réponse 2xx.
// Toute réponse non-2xx devient un *domain.APIError; les erreurs réseau enveloppent domain.ErrUpstream.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: sérialiser %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: créer requête %s %s: %w", method, path, err)
	}
	reqID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.debug {
		c.log.Info().Str("request_id", reqID).Str("method", method).Str("path", path).Msg("api: requête")
	}
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: %s %s: timeout ou annulation: %w: %w", method, path, domain.ErrUpstream, ctx.Err())
		}
		return nil, fmt.Errorf("api: %s %s: %w: %w", method, path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: lire réponse %s %s: %w", method, path, err)
	}

	if c.debug {
		c.log.Info().
			Str("request_id", reqID).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("api: réponse")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// parseAPIError lit {message} et {errors:{champ:[msgs]}} (forme Laravel).
// Un champ dont la valeur est une simple chaîne est accepté aussi.
func parseAPIError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status}
	if !gjson.ValidBytes(raw) {
		apiErr.Message = strings.TrimSpace(string(raw))
		if len(apiErr.Message) > 200 {
			apiErr.Message = apiErr.Message[:200]
		}
		return apiErr
	}
	root := gjson.ParseBytes(raw)
	apiErr.Message = root.Get("message").String()
	if apiErr.Message == "" {
		apiErr.Message = root.Get("error").String()
	}
	errs := root.Get("errors")
	if errs.IsObject() {
		apiErr.Fields = make(map[string][]string)
		errs.ForEach(func(key, value gjson.Result) bool {
			field := key.String()
			if value.IsArray() {
				for _, m := range value.Array() {
					apiErr.Fields[field] = append(apiErr.Fields[field], m.String())
				}
			} else if s := value.String(); s != "" {
				apiErr.Fields[field] = append(apiErr.Fields[field], s)
			}
			return true
		})
		if len(apiErr.Fields) == 0 {
			apiErr.Fields = nil
		}
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
