package aion

import (
	"encoding/json"
	"net/url"
)

// Challenge listing status filters.
const (
	StatusOpen   = "open"
	StatusSolved = "solved"
	StatusAll    = "all"
)

// ChallengeSolution is a challenge submission.
type ChallengeSolution struct {
	ChallengeSlug string
	SolutionURL   string
	Description   string
}

// challengeSolutionRequest is the wire form of a challenge submission.
type challengeSolutionRequest struct {
	Username      string `json:"username"`
	ChallengeSlug string `json:"challenge_slug"`
	SolutionURL   string `json:"solution_url"`
	Description   string `json:"description"`
}

// GetChallenges lists platform challenges filtered by status (StatusOpen,
// StatusSolved or StatusAll); an empty status defaults to open. An absent
// challenges field yields an empty list rather than an error.
func (c *Client) GetChallenges(status string) ([]json.RawMessage, error) {
	if status == "" {
		status = StatusOpen
	}

	var out struct {
		Challenges []json.RawMessage `json:"challenges"`
	}
	if err := c.getJSON("/challenges", url.Values{"status": {status}}, &out); err != nil {
		return nil, err
	}
	if out.Challenges == nil {
		out.Challenges = []json.RawMessage{}
	}
	return out.Challenges, nil
}

// SubmitChallengeSolution submits a solution under the client's username.
func (c *Client) SubmitChallengeSolution(solution ChallengeSolution) (*SubmitResult, error) {
	req := challengeSolutionRequest{
		Username:      c.username,
		ChallengeSlug: solution.ChallengeSlug,
		SolutionURL:   solution.SolutionURL,
		Description:   solution.Description,
	}

	var out SubmitResult
	if err := c.postJSON("/challenges/submit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
