package aion

import (
	"fmt"

	"github.com/AION721963/aion-wallet-sdk/internal/log"
)

// verificationTemplate is the post text the platform parses back out of the
// public post. The literal bytes are a contract; only the claim code varies.
const verificationTemplate = `Claiming my $AION tokens!

Verification: %s

www.aionworld.cloud`

// agentRequest is the request body for POST /agent actions.
type agentRequest struct {
	Action        string `json:"action"`
	Username      string `json:"username"`
	PostURL       string `json:"post_url,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// StartClaimResponse is the platform's reply to a claim initiation.
type StartClaimResponse struct {
	ClaimCode string `json:"claim_code"`
	Message   string `json:"message"`
}

// ClaimResult is the decoded claim-completion response, passed through
// verbatim with no local validation of its shape.
type ClaimResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message,omitempty"`
	Error       string  `json:"error,omitempty"`
	TokenAmount float64 `json:"tokenAmount,omitempty"`
}

// StartClaim initiates a claim for the client's username and stores the
// returned claim code. A failed call leaves any previously stored code
// untouched. There is no idempotency guard: calling twice issues two
// requests and the latest code wins.
func (c *Client) StartClaim() (*StartClaimResponse, error) {
	req := agentRequest{Action: "start_claim", Username: c.username}

	var out StartClaimResponse
	if err := c.postJSON("/agent", req, &out); err != nil {
		return nil, err
	}
	c.claimCode = out.ClaimCode
	log.Platform.Debug().Str("username", c.username).Msg("claim started")
	return &out, nil
}

// GetVerificationMessage renders the post text proving control of the
// claiming identity. When no claim code is held yet it performs one
// implicit StartClaim first.
func (c *Client) GetVerificationMessage() (string, error) {
	if c.claimCode == "" {
		if _, err := c.StartClaim(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf(verificationTemplate, c.claimCode), nil
}

// CompleteClaim finishes a claim against the public post at postURL,
// crediting the held wallet's address. With no wallet attached the address
// field is omitted and the platform credits an internal account keyed by
// the username.
func (c *Client) CompleteClaim(postURL string) (*ClaimResult, error) {
	return c.completeClaim(postURL, c.WalletAddress())
}

// CompleteClaimWithAddress is CompleteClaim crediting an explicit address
// instead of the held wallet. An empty address omits the field.
func (c *Client) CompleteClaimWithAddress(postURL, walletAddress string) (*ClaimResult, error) {
	return c.completeClaim(postURL, walletAddress)
}

func (c *Client) completeClaim(postURL, walletAddress string) (*ClaimResult, error) {
	req := agentRequest{
		Action:        "complete_claim",
		Username:      c.username,
		PostURL:       postURL,
		WalletAddress: walletAddress,
	}

	var out ClaimResult
	if err := c.postJSON("/agent", req, &out); err != nil {
		return nil, err
	}
	log.Platform.Debug().
		Str("username", c.username).
		Bool("success", out.Success).
		Msg("claim completed")
	return &out, nil
}

// Claim is shorthand for CompleteClaim.
func (c *Client) Claim(postURL string) (*ClaimResult, error) {
	return c.CompleteClaim(postURL)
}

// QuickClaim completes a claim in one shot for callers that do not need a
// long-lived client. An empty walletAddress credits the platform-internal
// account for the username.
func QuickClaim(username, postURL, walletAddress string) (*ClaimResult, error) {
	c := New(username)
	if walletAddress != "" {
		if err := c.SetWalletAddress(walletAddress); err != nil {
			return nil, err
		}
	}
	return c.CompleteClaim(postURL)
}
