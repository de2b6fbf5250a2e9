package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"battle-of-monsters/internal/config"
	"battle-of-monsters/internal/constants"

	"github.com/valyala/fasthttp"
)

// HealthClient probes the service's /healthz endpoint.
type HealthClient struct {
	url    string
	client *fasthttp.Client
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewHealthClient(cfg *config.Config) *HealthClient {
	return &HealthClient{
		url: cfg.HealthcheckURL,
		client: &fasthttp.Client{
			MaxConnsPerHost: 1,
			ReadTimeout:     constants.HealthcheckTimeout,
			WriteTimeout:    constants.HealthcheckTimeout,
		},
	}
}

// Check returns nil only when the endpoint answers 200 with status "ok".
func (c *HealthClient) Check(ctx context.Context) (*HealthResponse, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.HealthcheckTimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	var result HealthResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK || result.Status != "ok" {
		return &result, fmt.Errorf("unhealthy: %d %s", resp.StatusCode(), result.Status)
	}
	return &result, nil
}
