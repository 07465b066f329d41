package aion

import "encoding/json"

// BugReport is a bug-bounty submission. Category, Title and Description are
// required by the platform; the reproduction fields are optional.
type BugReport struct {
	Category         string
	Title            string
	Description      string
	StepsToReproduce string
	ExpectedBehavior string
	ActualBehavior   string
}

// bugReportRequest is the wire form of a bug report.
type bugReportRequest struct {
	Username         string `json:"username"`
	Category         string `json:"category"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	StepsToReproduce string `json:"steps_to_reproduce,omitempty"`
	ExpectedBehavior string `json:"expected_behavior,omitempty"`
	ActualBehavior   string `json:"actual_behavior,omitempty"`
	WalletAddress    string `json:"wallet_address,omitempty"`
}

// SubmitResult is the platform's generic submission acknowledgement.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GetBugBounties lists the platform's bounty categories. The element shape
// is platform-defined and returned undecoded. An absent categories field
// yields an empty list rather than an error; the deployed platform relies
// on this tolerance.
func (c *Client) GetBugBounties() ([]json.RawMessage, error) {
	var out struct {
		Categories []json.RawMessage `json:"categories"`
	}
	if err := c.getJSON("/bug-bounty", nil, &out); err != nil {
		return nil, err
	}
	if out.Categories == nil {
		out.Categories = []json.RawMessage{}
	}
	return out.Categories, nil
}

// SubmitBugReport files a bug report under the client's username, tagged
// with the held wallet address when one is attached.
func (c *Client) SubmitBugReport(report BugReport) (*SubmitResult, error) {
	req := bugReportRequest{
		Username:         c.username,
		Category:         report.Category,
		Title:            report.Title,
		Description:      report.Description,
		StepsToReproduce: report.StepsToReproduce,
		ExpectedBehavior: report.ExpectedBehavior,
		ActualBehavior:   report.ActualBehavior,
		WalletAddress:    c.WalletAddress(),
	}

	var out SubmitResult
	if err := c.postJSON("/bug-bounty", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
