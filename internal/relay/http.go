package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain"
)

// DefaultTimeout bounds a single request when the caller's context has no
// deadline of its own.
const DefaultTimeout = 30 * time.Second

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Method  string
	Path    string
	Status  string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("relay %s %s: %s", strings.ToLower(e.Method), e.Path, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string) *HTTP {
	return &HTTP{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *HTTP) RegisterPolar(ctx context.Context, t polar.Table) (domain.Fingerprint, error) {
	var out domain.PolarRegistered
	if err := c.post(ctx, "/polars", t, &out); err != nil {
		return "", err
	}
	return out.Fingerprint, nil
}

func (c *HTTP) FetchPolar(ctx context.Context, fp domain.Fingerprint) (polar.Table, error) {
	var out polar.Table
	if err := c.getJSON(ctx, "/polars/"+url.PathEscape(fp.String()), &out); err != nil {
		return polar.Table{}, err
	}
	return out, nil
}

func (c *HTTP) Evaluate(
	ctx context.Context,
	fp domain.Fingerprint,
	req domain.EvaluateRequest,
) (domain.EvaluateResponse, error) {
	var out domain.EvaluateResponse
	if err := c.post(ctx, "/evaluate/"+url.PathEscape(fp.String()), req, &out); err != nil {
		return domain.EvaluateResponse{}, err
	}
	if len(out.Outcomes) != len(req.Phases) {
		return domain.EvaluateResponse{}, fmt.Errorf("relay evaluate: got %d outcomes for %d phases",
			len(out.Outcomes), len(req.Phases))
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *HTTP) do(req *http.Request, path string, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		se := &StatusError{Method: req.Method, Path: path, Status: resp.Status, Code: resp.StatusCode}
		var body domain.ErrorBody
		if b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)); json.Unmarshal(b, &body) == nil {
			se.Message = body.Error
		}
		return se
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.RelayClient = (*HTTP)(nil)
