package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
)

func TestPublishCheckoutCompleted(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event CheckoutCompleted
		return json.Unmarshal(val, &event)
	})

	p := &Producer{producer: mock}
	p.PublishCheckoutCompleted(CheckoutCompleted{
		Email:       "crio-user@gmail.com",
		Total:       25,
		ItemCount:   2,
		CompletedAt: time.Now(),
	})

	if err := mock.Close(); err != nil {
		t.Fatalf("unexpected producer state: %v", err)
	}
}

func TestPublishSwallowsBrokerErrors(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(saramaErr{})

	p := &Producer{producer: mock}
	// Must not panic or surface the failure.
	p.PublishUserRegistered(UserRegistered{Email: "crio-user@gmail.com", Name: "crio user"})

	if err := mock.Close(); err != nil {
		t.Fatalf("unexpected producer state: %v", err)
	}
}

func TestNilProducerIsSafe(t *testing.T) {
	var p *Producer
	p.PublishUserRegistered(UserRegistered{Email: "crio-user@gmail.com"})
	p.PublishCheckoutCompleted(CheckoutCompleted{Email: "crio-user@gmail.com"})
	if err := p.Close(); err != nil {
		t.Fatalf("Close on nil producer: %v", err)
	}
}

type saramaErr struct{}

func (saramaErr) Error() string { return "broker unavailable" }
