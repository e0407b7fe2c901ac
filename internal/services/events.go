package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventMemberRegistered = "member.registered"
	EventMemberApproved   = "member.approved"
	EventMemberRejected   = "member.rejected"
	EventMessageSubmitted = "message.submitted"
	EventMessageReplied   = "message.replied"
)

type LifecycleEvent struct {
	Type       string    `json:"type"`
	SubjectID  string    `json:"subjectId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event LifecycleEvent) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}}
}

// Publish keys by subject so one member's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event LifecycleEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.SubjectID), Value: value})
}

func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, LifecycleEvent) error { return nil }

func publish(ctx context.Context, p Publisher, typ, subjectID string, at time.Time) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, LifecycleEvent{Type: typ, SubjectID: subjectID, OccurredAt: at}); err != nil {
		log.Printf("publish %s %s: %v", typ, subjectID, err)
	}
}
