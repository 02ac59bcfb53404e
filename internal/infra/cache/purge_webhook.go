package cache

import (
	"context"
	"net/http"
	"time"

	"pagecast/internal/errors"

	"github.com/go-resty/resty/v2"
)

// purgeRequest is the body posted to the edge purge endpoint.
type purgeRequest struct {
	Tags []string `json:"tags"`
}

// PurgeWebhook asks an edge cache to purge by tag over HTTP.
type PurgeWebhook struct {
	client *resty.Client
	url    string
}

// NewPurgeWebhook builds a webhook client. token is sent as a bearer token when set.
func NewPurgeWebhook(url, token string, timeout time.Duration) *PurgeWebhook {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &PurgeWebhook{client: client, url: url}
}

// InvalidateTag posts a purge request for tag.
func (w *PurgeWebhook) InvalidateTag(ctx context.Context, tag string) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(purgeRequest{Tags: []string{tag}}).
		Post(w.url)
	if err != nil {
		return errors.Wrap(err, "purge webhook call failed")
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return errors.Errorf("purge webhook returned %d", resp.StatusCode())
	}

	return nil
}
