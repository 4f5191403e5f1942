package notification

import "context"

type Notification struct {
	Topic   string `json:"topic"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type Service interface {
	SendNotification(ctx context.Context, notifications []Notification) error
}
