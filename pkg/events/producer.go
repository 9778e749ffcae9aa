package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
)

const (
	TopicUserRegistered    = "user.registered"
	TopicCheckoutCompleted = "cart.checkout"
)

type UserRegistered struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type CheckoutCompleted struct {
	Email       string    `json:"email"`
	Total       float64   `json:"total"`
	ItemCount   int       `json:"itemCount"`
	CompletedAt time.Time `json:"completedAt"`
}

// Producer publishes domain events to Kafka. All publish methods are
// fire-and-forget: broker failures are logged, never surfaced to the
// request path.
type Producer struct {
	producer sarama.SyncProducer
}

func NewProducer(brokers []string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Producer{producer: producer}, nil
}

func (p *Producer) PublishUserRegistered(event UserRegistered) {
	p.publish(TopicUserRegistered, event)
}

func (p *Producer) PublishCheckoutCompleted(event CheckoutCompleted) {
	p.publish(TopicCheckoutCompleted, event)
}

func (p *Producer) publish(topic string, event interface{}) {
	if p == nil || p.producer == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", topic, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send %s Kafka message: %v", topic, err)
		return
	}

	log.Printf("Published %s event", topic)
}

func (p *Producer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
