package aion

import (
	"encoding/json"
	"net/url"
)

// GetMyStats fetches the platform's stats object for the client's username.
// The shape is platform-defined and returned undecoded.
func (c *Client) GetMyStats() (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getJSON("/agent", url.Values{"username": {c.username}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
