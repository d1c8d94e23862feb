package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackingChargeType string

const (
	PackingChargeNone  PackingChargeType = "none"
	PackingChargeItem  PackingChargeType = "item"
	PackingChargeOrder PackingChargeType = "order"
)

type PackingChargeMode string

const (
	PackingChargeFixed   PackingChargeMode = "fixed"
	PackingChargePercent PackingChargeMode = "percent"
)

// TaxBasis decides whether item tax is levied before ("core") or after
// ("total") the item packing charge is folded in.
type TaxBasis string

const (
	TaxBasisCore  TaxBasis = "core"
	TaxBasisTotal TaxBasis = "total"
)

type Restaurant struct {
	ID                   int               `json:"id"`
	Name                 string            `json:"name"`
	PackingChargeType    PackingChargeType `json:"packing_charge_type"`
	PackingChargeMode    PackingChargeMode `json:"packing_charge_mode"`
	OrderPackingCharge   decimal.Decimal   `json:"order_packing_charge"`
	PackingChargeTaxable bool              `json:"packing_charge_taxable"`
	PackingCGSTRate      decimal.Decimal   `json:"packing_cgst_rate"`
	PackingSGSTRate      decimal.Decimal   `json:"packing_sgst_rate"`
	PackingIGSTRate      decimal.Decimal   `json:"packing_igst_rate"`
}

// AvailabilitySlot is a weekly opening window. OpenTime and CloseTime are
// HHMM integers, the slot covers [OpenTime, CloseTime).
type AvailabilitySlot struct {
	Weekday   time.Weekday `json:"weekday"`
	OpenTime  int          `json:"open_time"`
	CloseTime int          `json:"close_time"`
}

type CatalogMenuItem struct {
	ID                 int                   `json:"id"`
	RestaurantID       int                   `json:"restaurant_id"`
	Name               string                `json:"name"`
	Price              decimal.NullDecimal   `json:"price"`
	CGSTRate           decimal.Decimal       `json:"cgst_rate"`
	SGSTRate           decimal.Decimal       `json:"sgst_rate"`
	IGSTRate           decimal.Decimal       `json:"igst_rate"`
	TaxInclusive       bool                  `json:"tax_inclusive"`
	TaxBasis           TaxBasis              `json:"tax_applied_on"`
	Disabled           bool                  `json:"disable"`
	NextAvailableAfter *time.Time            `json:"next_available_after"`
	Slots              []AvailabilitySlot    `json:"menu_item_slots"`
	PackingCharge      decimal.Decimal       `json:"packing_charges"`
	ServiceCharge      decimal.Decimal       `json:"service_charges"`
	VariantGroups      []CatalogVariantGroup `json:"variant_groups"`
	AddonGroups        []CatalogAddonGroup   `json:"addon_groups"`
}

type CatalogVariantGroup struct {
	ID       int              `json:"variant_group_id"`
	Name     string           `json:"variant_group_name"`
	Variants []CatalogVariant `json:"variants"`
}

type CatalogVariant struct {
	ID                 int                 `json:"variant_id"`
	Name               string              `json:"variant_name"`
	Price              decimal.NullDecimal `json:"price"`
	InStock            bool                `json:"in_stock"`
	NextAvailableAfter *time.Time          `json:"next_available_after"`
}

// CatalogAddonGroup limits: MaxLimit -1 means unbounded, FreeLimit -1 means
// no addon of the group is free.
type CatalogAddonGroup struct {
	ID        int            `json:"addon_group_id"`
	Name      string         `json:"addon_group_name"`
	MinLimit  int            `json:"min_limit"`
	MaxLimit  int            `json:"max_limit"`
	FreeLimit int            `json:"free_limit"`
	Addons    []CatalogAddon `json:"addons"`
}

type CatalogAddon struct {
	ID                 int                 `json:"addon_id"`
	Name               string              `json:"addon_name"`
	Price              decimal.NullDecimal `json:"price"`
	CGSTRate           decimal.NullDecimal `json:"cgst_rate"`
	SGSTRate           decimal.NullDecimal `json:"sgst_rate"`
	IGSTRate           decimal.NullDecimal `json:"igst_rate"`
	GSTInclusive       bool                `json:"gst_inclusive"`
	InStock            bool                `json:"in_stock"`
	NextAvailableAfter *time.Time          `json:"next_available_after"`
}
