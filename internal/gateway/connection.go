package gateway

import (
	"context"
	"net/http"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/sse"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// ClientByConnectionID resolves a connection id to the client company that
// issued it. ErrNotFound means the id no longer resolves, which is how the
// hourly revalidation detects a dead pairing.
func (c *Client) ClientByConnectionID(ctx context.Context, id string) (*model.ClientCompany, error) {
	var company model.ClientCompany
	if err := c.get(ctx, "/v1/client/by-connection/"+queryEscape(id), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// ConfirmConnection establishes and locks the recruiter-client pairing.
// Call only after the id validated via ClientByConnectionID; the gateway
// notifies the client so its dashboard activates only after confirm.
func (c *Client) ConfirmConnection(ctx context.Context, connectionID string) (*model.ConfirmConnectionRes, error) {
	var res model.ConfirmConnectionRes
	req := model.ConfirmConnectionReq{ConnectionID: connectionID}
	if err := c.post(ctx, "/v1/recruiter/confirm-connection", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Disconnect notifies the peer that the recruiter dropped the pairing.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.post(ctx, "/v1/recruiter/disconnect", nil, nil)
}

func (c *Client) ConnectedRecruiter(ctx context.Context) (*model.ConnectedRecruiter, error) {
	var res model.ConnectedRecruiter
	if err := c.get(ctx, "/v1/client/connected-recruiter", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ClientStats(ctx context.Context) (*model.ClientStats, error) {
	var res model.ClientStats
	if err := c.get(ctx, "/v1/client/stats", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SubscribeConnectionEvents opens the connection event stream for the given
// role and delivers each decoded event to onEvent. It blocks until the
// stream ends or ctx is cancelled; cancelling ctx also aborts the
// underlying request. Heartbeat frames are skipped by the decoder.
func (c *Client) SubscribeConnectionEvents(ctx context.Context, role model.Role, onEvent func(model.ConnectionEvent)) error {
	path := "/v1/recruiter/connection-events"
	if role == model.RoleClient {
		path = "/v1/client/connection-events"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	// the stream outlives any per-request timeout
	stream := &http.Client{Transport: c.http.Transport}
	resp, err := stream.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Code: "STREAM_REFUSED", Message: resp.Status}
	}

	dec := sse.NewDecoder(resp.Body)
	for {
		var ev model.ConnectionEvent
		if err := dec.Next(&ev); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		onEvent(ev)
	}
}
