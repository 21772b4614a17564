package producer

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

const (
	EventCartItemAdded   = "cart.item_added"
	EventCartItemRemoved = "cart.item_removed"
	EventCartItemUpdated = "cart.item_updated"
)

// CartEvent is the payload published after a cart mutation commits. Consumers
// (analytics, stock dashboards) treat it as best effort, not a ledger.
type CartEvent struct {
	EventType  string `json:"eventType"`
	CustomerID int64  `json:"customerId"`
	CartItemID int64  `json:"cartItemId"`
	ProductID  int64  `json:"productId"`
	Quantity   int    `json:"quantity"`
}

type Publisher struct {
	writer *kafka.Writer
}

// New wraps a kafka writer. A nil writer yields a no-op publisher so local
// setups can run without a broker.
func New(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishCartEvent(ctx context.Context, event CartEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CustomerID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
