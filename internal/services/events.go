package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/segmentio/kafka-go"
)

// Event types published to the audit stream.
const (
	EventUserRegistered      = "user.registered"
	EventRegistrationAudited = "registration.audited"
)

// Event is an audit record published after a committed workflow mutation.
type Event struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UID       int64  `json:"uid"`
	Subject   int64  `json:"subject,omitempty"` // entity id the event refers to
	Detail    string `json:"detail,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes an audit event, best effort. A nil writer or a
// publish failure never affects the calling workflow.
func publishEvent(ctx context.Context, w EventWriter, evt Event) {
	if w == nil {
		return
	}

	evt.EventID = uuid.NewString()
	evt.Timestamp = time.Now().Unix()

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "type", evt.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("audit event published", "type", evt.Type, "uid", evt.UID)
	}
}
