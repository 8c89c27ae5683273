package gateway

import (
	"context"
	"net/url"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/auth"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

func (c *Client) Login(ctx context.Context, req model.LoginReq) (*model.AuthRes, error) {
	var res model.AuthRes
	if err := c.post(ctx, "/v1/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ClientLogin hits the separate client-company login endpoint.
func (c *Client) ClientLogin(ctx context.Context, req model.LoginReq) (*model.AuthRes, error) {
	var res model.AuthRes
	if err := c.post(ctx, "/v1/client/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, req model.RegisterReq) (*model.AuthRes, error) {
	var res model.AuthRes
	path := "/v1/auth/register"
	if req.Role == model.RoleClient {
		path = "/v1/client/register"
	}
	if err := c.post(ctx, path, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// LoginStrategies returns the ordered role-detection chain: candidate and
// recruiter share one endpoint, client companies have their own. auth.Login
// reorders the chain when the session already knows the role.
func (c *Client) LoginStrategies() []auth.Strategy {
	candidate := func(role model.Role) func(ctx context.Context, email, password string) (*model.AuthRes, error) {
		return func(ctx context.Context, email, password string) (*model.AuthRes, error) {
			return c.Login(ctx, model.LoginReq{Email: email, Password: password, Role: role})
		}
	}
	return []auth.Strategy{
		{Name: "candidate", Role: model.RoleCandidate, Login: candidate(model.RoleCandidate)},
		{Name: "recruiter", Role: model.RoleRecruiter, Login: candidate(model.RoleRecruiter)},
		{Name: "client", Role: model.RoleClient, Login: func(ctx context.Context, email, password string) (*model.AuthRes, error) {
			return c.ClientLogin(ctx, model.LoginReq{Email: email, Password: password})
		}},
	}
}

func queryEscape(q string) string { return url.QueryEscape(q) }
