package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi: GET %s returned %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) getAndDecode(ctx context.Context, path string, query url.Values, target any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("pokeapi: building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	log.FromContext(ctx).WithField("url", u).Debug("requesting pokeapi")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("pokeapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("pokeapi: decoding %s: %w", path, err)
	}

	return nil
}

// ListPokemon reads one page of the catalog.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*NamedResourceList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var result NamedResourceList
	if err := c.getAndDecode(ctx, "/pokemon", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Pokemon(ctx context.Context, id int) (*Pokemon, error) {
	var result Pokemon
	if err := c.getAndDecode(ctx, "/pokemon/"+strconv.Itoa(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Species(ctx context.Context, id int) (*Species, error) {
	var result Species
	if err := c.getAndDecode(ctx, "/pokemon-species/"+strconv.Itoa(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
