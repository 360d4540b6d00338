package codegen

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/abdidvp/transformspec/internal/domain"
)

// TransformPath is the backend's streaming transform endpoint.
const TransformPath = "/api/transform"

// Client implements domain.CodeGenerator against a remote backend that
// streams progress as server-sent events.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL. A nil httpClient
// uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Generate posts req and forwards every decodable event to sink. Frames that
// are not JSON events are skipped. The run is completed once a complete
// event arrives; a stream that closes without one has ended.
func (c *Client) Generate(ctx context.Context, req domain.TransformRequest, sink domain.EventSink) (domain.Outcome, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return domain.OutcomeFailed, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+TransformPath, bytes.NewReader(payload))
	if err != nil {
		return domain.OutcomeFailed, err
	}
	httpReq.Header.Add("Content-Type", "application/json")
	httpReq.Header.Add("Accept", "text/event-stream")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return domain.OutcomeCancelled, nil
		}
		return domain.OutcomeFailed, errors.Wrap(err, "contacting backend")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.OutcomeFailed, errors.Wrap(errors.Errorf("server error: %d", resp.StatusCode), strings.TrimSpace(string(body)))
	}

	outcome := domain.OutcomeEnded
	err = ReadEvents(resp.Body, func(ev domain.ProgressEvent) {
		switch ev.Type {
		case domain.EventComplete:
			outcome = domain.OutcomeCompleted
		case domain.EventCancelled:
			outcome = domain.OutcomeCancelled
		}
		if sink != nil {
			sink(ev)
		}
	})
	if ctx.Err() != nil {
		return domain.OutcomeCancelled, nil
	}
	if err != nil {
		return domain.OutcomeFailed, errors.Wrap(err, "reading event stream")
	}
	return outcome, nil
}

// ReadEvents decodes "data: {json}" frames from r until EOF.
func ReadEvents(r io.Reader, fn func(domain.ProgressEvent)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev domain.ProgressEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			continue
		}
		fn(ev)
	}
	return scanner.Err()
}

// WriteEvent writes ev as one SSE frame.
func WriteEvent(w io.Writer, ev domain.ProgressEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = w.Write(append(append([]byte("data: "), data...), '\n', '\n'))
	return err
}
