package moltbook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreatePost(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts" {
			t.Errorf("request = %s %s, want POST /posts", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"post":{"id":"abc123","title":"Claiming $AION"}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewWithBaseURL("secret-token", srv.URL)
	post, err := c.CreatePost("Claiming $AION", "Verification: AION-XYZ", "")
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	if post.ID != "abc123" {
		t.Errorf("post id = %q, want abc123", post.ID)
	}
	if post.URL != "https://moltbook.com/post/abc123" {
		t.Errorf("post url = %q", post.URL)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("authorization = %q, want Bearer secret-token", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	if gotBody["title"] != "Claiming $AION" {
		t.Errorf("title = %v", gotBody["title"])
	}
	if gotBody["content"] != "Verification: AION-XYZ" {
		t.Errorf("content = %v", gotBody["content"])
	}
	if gotBody["submolt"] != DefaultSubmolt {
		t.Errorf("submolt = %v, want %q default", gotBody["submolt"], DefaultSubmolt)
	}
}

func TestCreatePost_ExplicitSubmolt(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		io.WriteString(w, `{"post":{"id":"p1"}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewWithBaseURL("secret-token", srv.URL)
	if _, err := c.CreatePost("title", "content", "crypto"); err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}
	if gotBody["submolt"] != "crypto" {
		t.Errorf("submolt = %v, want crypto", gotBody["submolt"])
	}
}

func TestCreatePost_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"bad token"}`)
	}))
	t.Cleanup(srv.Close)

	c := NewWithBaseURL("wrong-token", srv.URL)
	_, err := c.CreatePost("title", "content", "")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T (%v), want *APIError", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status code = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Body != `{"error":"bad token"}` {
		t.Errorf("body = %q", apiErr.Body)
	}
}

func TestCreatePost_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>not json</html>`)
	}))
	t.Cleanup(srv.Close)

	c := NewWithBaseURL("secret-token", srv.URL)
	_, err := c.CreatePost("title", "content", "")
	if err == nil {
		t.Fatal("expected error for malformed response")
	}

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %T (%v), want *DecodeError", err, err)
	}
}

func TestPostURL(t *testing.T) {
	if got := PostURL("abc123"); got != "https://moltbook.com/post/abc123" {
		t.Errorf("PostURL() = %q", got)
	}
}
