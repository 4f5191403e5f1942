package notificationhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SeaCloudHub/storefront/domain/notification"
	"github.com/SeaCloudHub/storefront/pkg/config"
	"github.com/go-resty/resty/v2"
)

const notificationsPath = "/api/internal/notifications"

type NotificationHub struct {
	host   *url.URL
	token  string
	client *resty.Client
}

func NewNotificationHub(cfg *config.Config) (*NotificationHub, error) {
	u, err := url.Parse(cfg.NotificationHub.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse notification hub endpoint: %w", err)
	}

	return &NotificationHub{
		host:   u,
		token:  cfg.NotificationHub.Token,
		client: resty.New().SetBaseURL(u.String()),
	}, nil
}

func (n *NotificationHub) pushNotification(ctx context.Context, notificationReq NotificationRequest) error {
	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationReq)

	if n.token != "" {
		req.SetAuthToken(n.token)
	}

	resp, err := req.Post(notificationsPath)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to push notification: %s", resp.Status())
	}

	return nil
}

func (n *NotificationHub) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	return n.pushNotification(ctx, NotificationRequest{
		From:          "storefront",
		Notifications: notifications,
	})
}
