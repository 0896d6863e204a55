// Package client talks to a remote paddock backend over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"pasture/pkg/mapeditor"
)

const maxBody = 2 << 20

type Client struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

// New returns a client for the backend at baseURL. A zero timeout means
// 10 seconds.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: timeout},
		log:  log.Named("paddock.client"),
	}
}

var _ mapeditor.PaddockSource = (*Client)(nil)

type listResponse struct {
	Success bool                      `json:"success"`
	Data    []mapeditor.PaddockRecord `json:"data"`
	Total   int                       `json:"total"`
	Error   string                    `json:"error"`
}

// List fetches GET /potreros/api/data.
func (c *Client) List(ctx context.Context) ([]mapeditor.PaddockRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, "/potreros/api/data")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out listResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode paddock list: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("paddock list: %s", msg)
	}
	c.log.Debug("paddocks listed", zap.Int("count", len(out.Data)), zap.Int("total", out.Total))
	return out.Data, nil
}

// Delete posts to /potreros/{id}/delete.
func (c *Client) Delete(ctx context.Context, id mapeditor.PaddockID) error {
	resp, err := c.do(ctx, http.MethodPost, "/potreros/"+id.String()+"/delete")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
	if resp.StatusCode >= 300 {
		return fmt.Errorf("delete paddock %s: %s", id, resp.Status)
	}
	return nil
}

// Sidebar fetches the paddock index page and reads the list it renders.
func (c *Client) Sidebar(ctx context.Context) ([]mapeditor.PaddockRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, "/potreros/")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paddock page: %s", resp.Status)
	}
	return ParseSidebar(io.LimitReader(resp.Body, maxBody), c.log)
}

func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// parseSize reads labels like "12.5 ha".
func parseSize(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "ha"))
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
