package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/merajfaizan/gym-management-backend/internal/model"
)

type EventPublisher interface {
	PublishClassScheduled(class *model.Class) error
	PublishClassReserved(classID, userID uuid.UUID) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type ClassScheduledEvent struct {
	EventType string    `json:"event_type"`
	ClassID   uuid.UUID `json:"class_id"`
	TrainerID uuid.UUID `json:"trainer_id"`
	Name      string    `json:"name"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
}

type ClassReservedEvent struct {
	EventType  string    `json:"event_type"`
	ClassID    uuid.UUID `json:"class_id"`
	UserID     uuid.UUID `json:"user_id"`
	ReservedAt time.Time `json:"reserved_at"`
}

func (p *NatsPublisher) PublishClassScheduled(class *model.Class) error {
	event := ClassScheduledEvent{
		EventType: "class.scheduled",
		ClassID:   class.ID,
		TrainerID: class.TrainerID,
		Name:      class.Name,
		Day:       class.Day,
		Time:      class.Time,
	}

	return p.publish("class.scheduled", event)
}

func (p *NatsPublisher) PublishClassReserved(classID, userID uuid.UUID) error {
	event := ClassReservedEvent{
		EventType:  "class.reserved",
		ClassID:    classID,
		UserID:     userID,
		ReservedAt: time.Now(),
	}

	return p.publish("class.reserved", event)
}

func (p *NatsPublisher) publish(subject string, event any) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		slog.Error("marshalling event failed", "subject", subject, "error", err)
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		slog.Error("publishing to NATS failed", "subject", subject, "error", err)
		return err
	}

	slog.Info("published event to NATS", "subject", subject)
	return nil
}
