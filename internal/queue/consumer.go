package queue

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartRegisteredConsumer connects to RabbitMQ, declares the durable
// account.registered queue and appends one line per event to
// logs/registrations.log. It is meant to run in its own goroutine; on any
// broker error it logs and returns so a missing broker never blocks the
// service.
func StartRegisteredConsumer(url string) {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("consumer: rabbitmq dial failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("consumer: channel open failed: %v", err)
		return
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(RegisteredQueueName, true, false, false, false, nil); err != nil {
		log.Printf("consumer: queue declare failed: %v", err)
		return
	}

	deliveries, err := ch.Consume(RegisteredQueueName, "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consumer: consume failed: %v", err)
		return
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		log.Printf("consumer: mkdir logs failed: %v", err)
		return
	}
	path := filepath.Join("logs", "registrations.log")

	log.Printf("consumer: listening on %s", RegisteredQueueName)
	for d := range deliveries {
		var ev AccountRegisteredEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			log.Printf("consumer: bad payload: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		line := time.Now().UTC().Format(time.RFC3339) + " registered account=" + ev.AccountID + " email=" + ev.Email + "\n"
		if err := appendLine(path, line); err != nil {
			log.Printf("consumer: write failed: %v", err)
			_ = d.Nack(false, true)
			continue
		}
		_ = d.Ack(false)
	}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.WriteString(line)
	return err
}
