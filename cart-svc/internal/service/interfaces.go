package service

import (
	"context"

	"speedyy-pricing/cart-svc/internal/domain"
	"speedyy-pricing/cart-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type CartServiceInterface interface {
	Quote(ctx context.Context, req domain.CartRequest) (*domain.CartQuote, error)
	GetQuote(ctx context.Context, id string) (*domain.CartQuote, error)
	PaymentQR(ctx context.Context, id string) ([]byte, error)
	SettleRefund(ctx context.Context, id string, req domain.RefundSettlementRequest) (*domain.InvoiceBreakout, error)
}

// CatalogRepository returns freshly built structures on every call. A missing
// restaurant is reported as sql.ErrNoRows.
type CatalogRepository interface {
	GetRestaurant(restaurantID int) (*domain.Restaurant, error)
	GetMenuItems(menuItemIDs []int) ([]domain.CatalogMenuItem, error)
}

type CouponRepository interface {
	GetCouponByCode(code string, restaurantID int) (*domain.Coupon, error)
}

// QuoteCache.Load returns a nil quote and a nil error on a miss.
type QuoteCache interface {
	QuoteKey(id string) string
	Save(ctx context.Context, quote *domain.CartQuote) error
	Load(ctx context.Context, id string) (*domain.CartQuote, error)
}

type InvoicePublisher interface {
	PublishInvoice(ctx context.Context, msg domain.KafkaMessage) error
}

type PaymentQRGenerator interface {
	Generate(quoteID string, amount decimal.Decimal) ([]byte, error)
}

var _ CartServiceInterface = (*CartService)(nil)
var _ CatalogRepository = (*storage.PostgresRepository)(nil)
var _ CouponRepository = (*storage.PostgresRepository)(nil)
var _ QuoteCache = (*storage.RedisCache)(nil)
var _ InvoicePublisher = (*storage.KafkaPublisher)(nil)
var _ PaymentQRGenerator = UPIQRGenerator{}
