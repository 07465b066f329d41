// Package moltbook posts agent content to the Moltbook social platform,
// which hosts the public verification posts the AION claim flow parses.
package moltbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AION721963/aion-wallet-sdk/internal/log"
)

// DefaultBaseURL is the production Moltbook API base path.
const DefaultBaseURL = "https://moltbook.com/api/v1"

// DefaultSubmolt is the community posts land in when none is chosen.
const DefaultSubmolt = "general"

// postURLBase is the public (non-API) location of a created post.
const postURLBase = "https://moltbook.com/post/"

const defaultTimeout = 10 * time.Second

// Client publishes posts with an agent's API token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the production Moltbook API.
func New(token string) *Client {
	return NewWithBaseURL(token, DefaultBaseURL)
}

// NewWithBaseURL creates a client against a custom base URL, the seam tests
// use to point at a mock endpoint.
func NewWithBaseURL(token, baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Post is a created Moltbook post.
type Post struct {
	ID  string
	URL string
}

// APIError is returned when Moltbook responds with a non-success HTTP
// status.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moltbook error %d: %s", e.StatusCode, e.Status)
}

// DecodeError is returned when a response body cannot be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Submolt string `json:"submolt"`
}

type createPostResponse struct {
	Post struct {
		ID string `json:"id"`
	} `json:"post"`
}

// CreatePost publishes a post and returns its id and public URL. An empty
// submolt falls back to DefaultSubmolt.
func (c *Client) CreatePost(title, content, submolt string) (*Post, error) {
	if submolt == "" {
		submolt = DefaultSubmolt
	}

	payload, err := json.Marshal(createPostRequest{
		Title:   title,
		Content: content,
		Submolt: submolt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/posts", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(data),
		}
	}

	var decoded createPostResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &DecodeError{Err: err}
	}

	post := &Post{
		ID:  decoded.Post.ID,
		URL: PostURL(decoded.Post.ID),
	}
	log.Moltbook.Debug().Str("post_id", post.ID).Msg("post created")
	return post, nil
}

// PostURL returns the public URL for a post id.
func PostURL(id string) string {
	return postURLBase + id
}
