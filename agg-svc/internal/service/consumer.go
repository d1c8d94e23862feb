package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"speedyy-pricing/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads invoice events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting invoice audit consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Println("Invoice audit consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessInvoice(msg)
	}
}

func (c *Consumer) ProcessInvoice(msg domain.KafkaMessage) {
	if msg.Type != domain.MessageInvoiceComputed {
		return
	}
	log.Printf("Processing invoice: QuoteID=%s, RestaurantID=%d, Payable=%s",
		msg.QuoteID, msg.RestaurantID, msg.TotalCustomerPayable.StringFixed(2))

	inserted, err := c.Store.RecordInvoice(msg)
	if err != nil {
		log.Printf("Error recording invoice audit: %v", err)
		return
	}
	if !inserted {
		log.Printf("Invoice for quote %s already recorded, skipping totals", msg.QuoteID)
		return
	}

	if err := c.Store.UpdateDailyTotals(msg); err != nil {
		log.Printf("Error updating daily totals: %v", err)
		return
	}

	log.Printf("Successfully processed invoice for quote %s", msg.QuoteID)
}
