package service

import (
	"context"
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
)

func TestEncodeEvent(t *testing.T) {
	ev := queue.NewInventoryChanged("rentals", queue.ActionUpdate, "2", "req-1")
	pub, err := encodeEvent(ev)
	if err != nil {
		t.Fatal(err)
	}
	if pub.DeliveryMode != amqp.Persistent {
		t.Errorf("delivery mode = %d, want persistent", pub.DeliveryMode)
	}
	if pub.ContentType != "application/json" {
		t.Errorf("content type = %q", pub.ContentType)
	}
	var got queue.InventoryChanged
	if err := json.Unmarshal(pub.Body, &got); err != nil {
		t.Fatal(err)
	}
	if got != ev {
		t.Errorf("body = %+v, want %+v", got, ev)
	}
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = Noop{}
	if err := p.Publish(context.Background(), queue.InventoryChanged{}); err != nil {
		t.Fatal(err)
	}
}
