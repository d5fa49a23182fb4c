// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// AccountRegisteredEvent is published after a successful registration. It
// carries enough for downstream consumers (welcome mail, analytics) to act
// without querying the primary database.
type AccountRegisteredEvent struct {
	AccountID    string `json:"account_id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}

// RegisteredQueueName is the durable queue both publisher and consumer use.
const RegisteredQueueName = "account.registered"
