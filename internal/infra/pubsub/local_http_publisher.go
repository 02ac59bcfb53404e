package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"pagecast/internal/domain/service"
	"pagecast/internal/errors"

	"github.com/go-resty/resty/v2"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher pushes events to an HTTP endpoint in the same envelope
// Pub/Sub push subscriptions use, so a local consumer sees production-shaped requests.
type localHTTPPublisher struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// PushMessage is the Pub/Sub push envelope.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that POSTs push envelopes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   resty.New().SetTimeout(localPublishTimeout),
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishPagesEvent(ctx context.Context, event *service.PagesPublishedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var push PushMessage
	push.Subscription = "projects/local/subscriptions/pages-published-sub"
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = eventAttributes(event)
	push.Message.MessageID = event.EventID
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	req := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(push)
	if event.RequestID != "" {
		req.SetHeader("X-Request-Id", event.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.Wrap(err, "push pages event")
	}
	if resp.IsError() {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode())
	}

	p.logger.Info("[LocalPubSub] Pages event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.Int("page_count", len(event.PageIDs)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
