// Package queue defines message payloads exchanged over the message broker
// and the consumer that turns them into audit log lines.
package queue

import "time"

// InventoryQueueName is the durable queue every change event is routed to.
const InventoryQueueName = "inventory.changed"

// Actions carried by InventoryChanged.Action.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionReset  = "reset"
)

// InventoryChanged is published after a mutation commits.  Key identifies the
// affected row: a single id such as "4", a composite such as "stock=1,rental=2",
// or empty for a reset.
type InventoryChanged struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	Key        string `json:"key"`
	OccurredAt string `json:"occurred_at"`
	RequestID  string `json:"request_id,omitempty"`
}

// NewInventoryChanged stamps an event with the current UTC time.
func NewInventoryChanged(entity, action, key, requestID string) InventoryChanged {
	return InventoryChanged{
		Entity:     entity,
		Action:     action,
		Key:        key,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		RequestID:  requestID,
	}
}
