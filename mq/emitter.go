package mq

import (
	"context"
	"encoding/json"
	"log"

	"ecogrocer/models"
	"ecogrocer/rdx"
)

const notificationChannel = "notification-events"

// Emit publishes a notification event to Redis. Fire-and-forget: dispatch
// failures are logged, never surfaced to the caller.
func Emit(ctx context.Context, eventName string, n models.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		log.Printf("[Emit] Failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), notificationChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
		return
	}
}

// StartNotificationWorker consumes notification events and "delivers" them.
// Actual email/SMS delivery is simulated with a log line.
func StartNotificationWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, notificationChannel)
	ch := sub.Channel()

	log.Println("[NotificationWorker] Listening for notification events...")

	for msg := range ch {
		var n models.Notification
		if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
			log.Printf("[NotificationWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("SIMULATION: %s email sent to %s", n.TemplateKind, n.Recipient)
	}
}
