package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// Emits random payment events to the payment-events topic. Some reference
// payments that do not exist, some duplicate earlier confirmations, which is
// exactly what the consumer has to tolerate.

type PaymentEvent struct {
	PaymentReference string `json:"payment_reference"`
	Status           string `json:"status"`
}

var statuses = []string{"pending", "confirmed", "success", "failed", "expired"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

var recent []string

func generateEvent() PaymentEvent {
	ref := "pay_" + randomString(12)
	// Replay a known reference every few events to exercise duplicates.
	if len(recent) > 0 && rand.Intn(3) == 0 {
		ref = recent[rand.Intn(len(recent))]
	} else {
		recent = append(recent, ref)
		if len(recent) > 50 {
			recent = recent[1:]
		}
	}

	return PaymentEvent{
		PaymentReference: ref,
		Status:           statuses[rand.Intn(len(statuses))],
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "payment-events",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateEvent()
			data, _ := json.Marshal(event)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("event sent", event.PaymentReference, event.Status)
		case <-ctx.Done():
			return
		}
	}
}
