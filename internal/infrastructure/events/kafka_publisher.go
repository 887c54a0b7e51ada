// Package events publica los asientos contabilizados hacia Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/stock-ou-api/internal/application/stockaccount"
)

var (
	_ stockaccount.EventPublisher = (*KafkaPublisher)(nil)
	_ stockaccount.EventPublisher = NoopPublisher{}
)

// messageWriter lo implementa *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher escribe un mensaje JSON por asiento, con la empresa como clave
// para que los eventos de un tenant conserven el orden dentro de la partición.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher construye el publisher sobre los brokers y topic dados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// PublishAccountMovePosted envía los eventos en un único lote.
func (p *KafkaPublisher) PublishAccountMovePosted(ctx context.Context, events ...stockaccount.AccountMovePostedEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs, err := buildMessages(events)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: publicar %d asientos: %w", len(msgs), err)
	}
	return nil
}

// Close libera las conexiones del writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func buildMessages(events []stockaccount.AccountMovePostedEvent) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return nil, fmt.Errorf("kafka: serializar asiento %s: %w", ev.AccountMoveID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.CompanyID),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte("account_move.posted")},
			},
			Time: ev.PostedAt,
		})
	}
	return msgs, nil
}

// NoopPublisher descarta los eventos. Se usa cuando no hay brokers configurados.
type NoopPublisher struct{}

// PublishAccountMovePosted no hace nada.
func (NoopPublisher) PublishAccountMovePosted(context.Context, ...stockaccount.AccountMovePostedEvent) error {
	return nil
}
