package service

import (
	"context"

	"speedyy-pricing/agg-svc/internal/domain"
	"speedyy-pricing/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordInvoice(msg domain.KafkaMessage) (bool, error)
	UpdateDailyTotals(msg domain.KafkaMessage) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessInvoice(msg domain.KafkaMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
