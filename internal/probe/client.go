// Package probe performs the scanner's HTTP fetches: one primary page load
// and two best-effort well-known file probes.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	consts "github.com/altcast/lightaudit/internal/constants"
)

// sensitivePaths are robots.txt entries that hint at exposed internal
// surfaces when disallowed publicly.
var sensitivePaths = []string{"/admin", "/api", "/internal", "/backup", "/config", "/.env", "/private"}

// Client fetches a target page and its well-known files under hard timeouts.
type Client struct {
	Timeout      time.Duration // primary fetch budget
	ProbeTimeout time.Duration // per auxiliary fetch budget
	UserAgent    string
}

// NewClient returns a probe client with the default scan budgets.
func NewClient() *Client {
	return &Client{
		Timeout:      consts.DefaultScanTimeout,
		ProbeTimeout: consts.DefaultProbeTimeout,
		UserAgent:    consts.DefaultUserAgent,
	}
}

// Response is a normalized primary fetch result. Header names are lowercased
// so checks can index them directly.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// SecurityTxtResult reports whether /.well-known/security.txt exists.
type SecurityTxtResult struct {
	Exists bool
}

// RobotsTxtResult reports whether /robots.txt exists and whether it lists
// sensitive paths.
type RobotsTxtResult struct {
	Exists           bool
	ExposesSensitive bool
}

// FetchPage GETs the target with the scanner user-agent, following
// redirects, and reads the full body. This is the only fetch whose failure
// aborts an audit.
func (c *Client) FetchPage(ctx context.Context, target string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	headers := make(map[string]string, len(resp.Header))
	for name, values := range resp.Header {
		if len(values) > 0 {
			headers[strings.ToLower(name)] = values[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

// CheckSecurityTxt probes {baseURL}/.well-known/security.txt. Any failure,
// timeouts and DNS errors included, degrades to "not present".
func (c *Client) CheckSecurityTxt(ctx context.Context, baseURL string) SecurityTxtResult {
	status, _, err := c.fetchAux(ctx, baseURL+"/.well-known/security.txt")
	if err != nil {
		return SecurityTxtResult{}
	}
	return SecurityTxtResult{Exists: statusOK(status)}
}

// CheckRobotsTxt probes {baseURL}/robots.txt and scans its body for
// sensitive path disclosures. Any failure degrades to "not present".
func (c *Client) CheckRobotsTxt(ctx context.Context, baseURL string) RobotsTxtResult {
	status, body, err := c.fetchAux(ctx, baseURL+"/robots.txt")
	if err != nil || !statusOK(status) {
		return RobotsTxtResult{}
	}

	content := strings.ToLower(string(body))
	for _, p := range sensitivePaths {
		if strings.Contains(content, p) {
			return RobotsTxtResult{Exists: true, ExposesSensitive: true}
		}
	}
	return RobotsTxtResult{Exists: true}
}

// fetchAux GETs a well-known file under the probe budget and returns the
// status and full body.
func (c *Client) fetchAux(ctx context.Context, target string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	client := &http.Client{Timeout: c.ProbeTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func statusOK(status int) bool {
	return status >= 200 && status < 300
}
