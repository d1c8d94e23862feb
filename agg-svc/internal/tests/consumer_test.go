package tests

import (
	"errors"
	"testing"

	"speedyy-pricing/agg-svc/internal/domain"
	"speedyy-pricing/agg-svc/internal/mocks"
	"speedyy-pricing/agg-svc/internal/service"

	"github.com/shopspring/decimal"
)

func invoiceMessage() domain.KafkaMessage {
	return domain.KafkaMessage{
		Type:                 domain.MessageInvoiceComputed,
		QuoteID:              "q-1",
		RestaurantID:         10,
		TotalCustomerPayable: decimal.RequireFromString("474.30"),
		VendorPayoutAmount:   decimal.RequireFromString("450"),
	}
}

func TestConsumer_ProcessInvoice(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:         "success",
			inputMessage: invoiceMessage(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordInvoice", invoiceMessage()).Return(true, nil)
				mockStore.On("UpdateDailyTotals", invoiceMessage()).Return(nil)
			},
		},
		{
			name:         "RecordInvoice error",
			inputMessage: invoiceMessage(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordInvoice", invoiceMessage()).Return(false, errors.New("db connection failed"))
			},
		},
		{
			name:         "redelivered invoice skips daily totals",
			inputMessage: invoiceMessage(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordInvoice", invoiceMessage()).Return(false, nil)
			},
		},
		{
			name:         "UpdateDailyTotals error",
			inputMessage: invoiceMessage(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordInvoice", invoiceMessage()).Return(true, nil)
				mockStore.On("UpdateDailyTotals", invoiceMessage()).Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessInvoice(testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_InvalidMessageType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{
		Store: mockStore,
	}

	message := invoiceMessage()
	message.Type = "refund_settled"

	consumer.ProcessInvoice(message)
	mockStore.AssertNotCalled(t, "RecordInvoice")
	mockStore.AssertNotCalled(t, "UpdateDailyTotals")
}
