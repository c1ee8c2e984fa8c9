package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeNotifyEmail    = "notify:email"
	TypeNotifyWhatsApp = "notify:whatsapp"
)

// Queue names
const (
	QueueHigh = "high"
	QueueLow  = "low"
)

const notifyMaxRetry = 5

// EmailJobPayload is one rendered transactional email.
type EmailJobPayload struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// WhatsAppJobPayload is one outbound WhatsApp message.
type WhatsAppJobPayload struct {
	Kind  string `json:"kind"`
	Phone string `json:"phone"`
	Body  string `json:"body"`
}

// NewEmailTask creates a new email task
func NewEmailTask(payload EmailJobPayload, queue string) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyEmail, data, asynq.Queue(queue), asynq.MaxRetry(notifyMaxRetry)), nil
}

// NewWhatsAppTask creates a new WhatsApp task
func NewWhatsAppTask(payload WhatsAppJobPayload, queue string) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyWhatsApp, data, asynq.Queue(queue), asynq.MaxRetry(notifyMaxRetry)), nil
}
