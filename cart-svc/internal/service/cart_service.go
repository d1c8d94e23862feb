package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"speedyy-pricing/cart-svc/internal/domain"
	"speedyy-pricing/cart-svc/internal/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart has no menu items")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrQuoteNotFound      = errors.New("cart quote not found or expired")
	ErrQuoteNotPayable    = errors.New("cart quote has invalid or unavailable items and cannot be paid")
)

type Options struct {
	Charges         pricing.ChargeConfig
	NotaDisplayName string
	Now             func() time.Time
}

type CartService struct {
	catalog   CatalogRepository
	coupons   CouponRepository
	cache     QuoteCache
	publisher InvoicePublisher
	qr        PaymentQRGenerator
	opts      Options
}

func NewCartService(catalog CatalogRepository, coupons CouponRepository, cache QuoteCache, publisher InvoicePublisher, qr PaymentQRGenerator, opts Options) *CartService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &CartService{
		catalog:   catalog,
		coupons:   coupons,
		cache:     cache,
		publisher: publisher,
		qr:        qr,
		opts:      opts,
	}
}

func (s *CartService) Quote(ctx context.Context, req domain.CartRequest) (*domain.CartQuote, error) {
	if len(req.MenuItems) == 0 {
		return nil, ErrEmptyCart
	}

	restaurant, err := s.catalog.GetRestaurant(req.RestaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	catalog, err := s.loadCatalog(req.MenuItems)
	if err != nil {
		return nil, err
	}

	var coupon *domain.Coupon
	if req.CouponCode != "" {
		coupon, err = s.coupons.GetCouponByCode(req.CouponCode, req.RestaurantID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load coupon: %w", err)
		}
	}

	now := s.opts.Now()
	quote := &domain.CartQuote{
		ID:              uuid.NewString(),
		RestaurantID:    req.RestaurantID,
		Restaurant:      *restaurant,
		Items:           make([]domain.ValidatedMenuItem, 0, len(req.MenuItems)),
		ItemErrors:      []domain.ItemError{},
		Unavailable:     []domain.UnavailableEntry{},
		Coupon:          coupon,
		DeliveryCharges: req.DeliveryCharges,
		CreatedAt:       now,
	}

	for i, sel := range req.MenuItems {
		sequence := i + 1
		item, err := s.validateItem(catalog, sel, sequence, *restaurant, now)
		if err != nil {
			log.Printf("Cart item %d (menu item %d) rejected: code=%d %v", sequence, sel.MenuItemID, pricing.CodeOf(err), err)
			quote.ItemErrors = append(quote.ItemErrors, domain.ItemError{
				Sequence:   sequence,
				MenuItemID: sel.MenuItemID,
				Code:       pricing.CodeOf(err),
				Message:    err.Error(),
			})
			continue
		}
		quote.Items = append(quote.Items, item)
		quote.Unavailable = append(quote.Unavailable, item.Unavailable...)
	}

	quote.Valid = len(quote.ItemErrors) == 0
	quote.InStock = len(quote.Items) > 0
	for _, item := range quote.Items {
		if !item.InStock {
			quote.InStock = false
		}
	}
	quote.Invoice = s.buildInvoice(quote).Breakout()

	if err := s.cache.Save(ctx, quote); err != nil {
		log.Printf("Warning: failed to cache quote %s: %v", quote.ID, err)
	}
	s.publish(ctx, quote)

	log.Printf("Computed quote %s for restaurant %d: payable=%s valid=%t",
		quote.ID, quote.RestaurantID, quote.Invoice.TotalCustomerPayable.StringFixed(2), quote.Valid)
	return quote, nil
}

func (s *CartService) loadCatalog(selections []domain.MenuItemSelection) (map[int]domain.CatalogMenuItem, error) {
	seen := make(map[int]bool, len(selections))
	ids := make([]int, 0, len(selections))
	for _, sel := range selections {
		if !seen[sel.MenuItemID] {
			seen[sel.MenuItemID] = true
			ids = append(ids, sel.MenuItemID)
		}
	}

	items, err := s.catalog.GetMenuItems(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	catalog := make(map[int]domain.CatalogMenuItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}
	return catalog, nil
}

func (s *CartService) validateItem(catalog map[int]domain.CatalogMenuItem, sel domain.MenuItemSelection, sequence int, restaurant domain.Restaurant, now time.Time) (domain.ValidatedMenuItem, error) {
	if sel.Quantity < 1 {
		return domain.ValidatedMenuItem{}, pricing.NewValidationError(pricing.ErrInvalidQuantity,
			fmt.Sprintf("menu item %d has quantity %d", sel.MenuItemID, sel.Quantity))
	}
	item, ok := catalog[sel.MenuItemID]
	if !ok {
		return domain.ValidatedMenuItem{}, pricing.NewValidationError(pricing.ErrMenuItemNotFound,
			fmt.Sprintf("menu item %d does not exist", sel.MenuItemID))
	}
	if item.RestaurantID != restaurant.ID {
		return domain.ValidatedMenuItem{}, pricing.NewValidationError(pricing.ErrRestaurantMismatch,
			fmt.Sprintf("menu item %s belongs to restaurant %d", item.Name, item.RestaurantID))
	}
	return pricing.ValidateMenuItem(item, sel, sequence, restaurant, now, s.opts.NotaDisplayName)
}

// buildInvoice derives the invoice from the inputs stored on the quote.
func (s *CartService) buildInvoice(quote *domain.CartQuote) *pricing.Invoice {
	invoice := pricing.NewInvoice(quote.Items, quote.Restaurant, s.opts.Charges)
	if quote.Coupon != nil {
		invoice.ApplyCoupon(*quote.Coupon)
	}
	invoice.ApplyDeliveryCost(quote.DeliveryCharges)
	return invoice
}

func (s *CartService) publish(ctx context.Context, quote *domain.CartQuote) {
	if s.publisher == nil {
		return
	}
	msg := domain.KafkaMessage{
		Type:                 domain.MessageInvoiceComputed,
		QuoteID:              quote.ID,
		RestaurantID:         quote.RestaurantID,
		TotalCustomerPayable: quote.Invoice.TotalCustomerPayable,
		VendorPayoutAmount:   quote.Invoice.VendorPayoutAmount,
		Timestamp:            s.opts.Now(),
	}
	if details := quote.Invoice.CouponDetails; details != nil {
		msg.DiscountAmountApplied = details.DiscountAmountApplied
		msg.DiscountShareAmountVendor = details.DiscountShareAmountVendor
		msg.DiscountShareAmountSpeedyy = details.DiscountShareAmountSpeedyy
	}
	if err := s.publisher.PublishInvoice(ctx, msg); err != nil {
		log.Printf("Warning: failed to publish invoice for quote %s: %v", quote.ID, err)
	}
}

func (s *CartService) GetQuote(ctx context.Context, id string) (*domain.CartQuote, error) {
	quote, err := s.cache.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}
	return quote, nil
}

func (s *CartService) PaymentQR(ctx context.Context, id string) ([]byte, error) {
	quote, err := s.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quote.Valid || !quote.InStock || len(quote.Items) == 0 {
		return nil, ErrQuoteNotPayable
	}
	return s.qr.Generate(quote.ID, quote.Invoice.TotalCustomerPayable)
}

func (s *CartService) SettleRefund(ctx context.Context, id string, req domain.RefundSettlementRequest) (*domain.InvoiceBreakout, error) {
	quote, err := s.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice := s.buildInvoice(quote)
	if _, err := invoice.SettleRefund(req); err != nil {
		return nil, err
	}
	quote.Invoice = invoice.Breakout()

	if err := s.cache.Save(ctx, quote); err != nil {
		log.Printf("Warning: failed to cache quote %s: %v", quote.ID, err)
	}
	log.Printf("Refund settled for quote %s by %s", quote.ID, req.RefundSettledBy)
	return &quote.Invoice, nil
}
