package relay

import (
	"context"
	"github.com/streadway/amqp"
	"time"
)

//go:generate moq -out relay_mocks.go . Publisher

// Publisher sends one event to the message broker
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Message ...
type Message struct {
	ID         string
	RoutingKey string
	Body       []byte
	CreatedAt  time.Time
}

// AMQPPublisher publishes to a durable topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

var _ Publisher = &AMQPPublisher{}

// DialAMQP connects and declares the exchange
func DialAMQP(url string, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

// Publish ...
func (p *AMQPPublisher) Publish(_ context.Context, msg Message) error {
	return p.ch.Publish(
		p.exchange,
		msg.RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Timestamp:    msg.CreatedAt,
			Body:         msg.Body,
		},
	)
}

// Close ...
func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
