// Package aion wraps the AION platform HTTP API: token claims, bug
// bounties, challenges, and agent stats.
package aion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AION721963/aion-wallet-sdk/internal/log"
	"github.com/AION721963/aion-wallet-sdk/pkg/wallet"
)

// DefaultBaseURL is the production platform API base path.
const DefaultBaseURL = "https://www.aionworld.cloud/api"

// defaultTimeout bounds each HTTP request; there is no retry.
const defaultTimeout = 10 * time.Second

// Client calls the AION platform on behalf of one agent identity.
// The username is immutable after construction. The wallet reference and
// the claim code are each written at most once per logical step; the
// client holds no lock, so callers must not run StartClaim concurrently
// with itself.
type Client struct {
	username  string
	baseURL   string
	http      *http.Client
	wallet    *wallet.Wallet
	claimCode string
}

// New creates a client for the production platform.
func New(username string) *Client {
	return NewWithBaseURL(username, DefaultBaseURL)
}

// NewWithBaseURL creates a client against a custom base URL. The base URL
// is instance state rather than a process-wide constant, which also makes
// the client testable against a mock endpoint.
func NewWithBaseURL(username, baseURL string) *Client {
	return &Client{
		username: username,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Username returns the agent identity this client was constructed with.
func (c *Client) Username() string {
	return c.username
}

// GenerateWallet creates a fresh wallet, holds it as the client's current
// wallet, and returns it. The mnemonic is the caller's to store; it never
// leaves the process.
func (c *Client) GenerateWallet() (*wallet.Wallet, error) {
	w, err := wallet.Generate()
	if err != nil {
		return nil, err
	}
	c.wallet = w
	log.Platform.Debug().Str("address", w.PublicKey).Msg("wallet generated")
	return w, nil
}

// ImportWallet derives the wallet for a known mnemonic and holds it.
func (c *Client) ImportWallet(mnemonic string) (*wallet.Wallet, error) {
	w, err := wallet.ImportFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	c.wallet = w
	log.Platform.Debug().Str("address", w.PublicKey).Msg("wallet imported")
	return w, nil
}

// SetWalletAddress holds a receive-only wallet for an externally managed
// address. The stored wallet has an empty secret key and mnemonic and must
// never be used for signing.
func (c *Client) SetWalletAddress(address string) error {
	if !wallet.ValidateAddress(address) {
		return fmt.Errorf("%w: invalid address %q", wallet.ErrInvalidInput, address)
	}
	c.wallet = &wallet.Wallet{PublicKey: address}
	log.Platform.Debug().Str("address", address).Msg("wallet address set")
	return nil
}

// WalletAddress returns the held wallet's public key, or "" when no wallet
// is attached.
func (c *Client) WalletAddress() string {
	if c.wallet == nil {
		return ""
	}
	return c.wallet.PublicKey
}

// postJSON sends body as JSON to the given path and decodes the response
// into result.
func (c *Client) postJSON(path string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	return decodeResponse(resp, result)
}

// getJSON issues a GET for the given path and query and decodes the
// response into result.
func (c *Client) getJSON(path string, query url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	return decodeResponse(resp, result)
}

func decodeResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(data),
		}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return nil
}
