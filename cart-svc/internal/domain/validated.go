package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MatchedVariant struct {
	CatalogVariant
	IsSelected bool `json:"is_selected"`
}

type MatchedVariantGroup struct {
	ID         int              `json:"variant_group_id"`
	Name       string           `json:"variant_group_name"`
	IsSelected bool             `json:"is_selected"`
	Variants   []MatchedVariant `json:"variants"`
}

type MatchedAddon struct {
	CatalogAddon
	IsSelected bool `json:"is_selected"`
}

type MatchedAddonGroup struct {
	ID         int            `json:"addon_group_id"`
	Name       string         `json:"addon_group_name"`
	MinLimit   int            `json:"min_limit"`
	MaxLimit   int            `json:"max_limit"`
	FreeLimit  int            `json:"free_limit"`
	IsSelected bool           `json:"is_selected"`
	Addons     []MatchedAddon `json:"addons"`
}

type UnavailableKind string

const (
	UnavailableMenuItem UnavailableKind = "menu_item"
	UnavailableVariant  UnavailableKind = "variant"
	UnavailableAddon    UnavailableKind = "addon"
)

// UnavailableEntry reports a selected line that cannot be purchased right now.
type UnavailableEntry struct {
	Kind            UnavailableKind `json:"kind"`
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Reason          string          `json:"reason"`
	NextAvailableAt *time.Time      `json:"next_available_at,omitempty"`
}

type AddonGroupCost struct {
	AddonGroupID    int             `json:"addon_group_id"`
	Name            string          `json:"addon_group_name"`
	FreeAddonIDs    []int           `json:"free_addon_ids"`
	ChargedAddonIDs []int           `json:"charged_addon_ids"`
	Price           decimal.Decimal `json:"price"`
	Tax             decimal.Decimal `json:"tax"`
}

// MenuItemCost is the audited cost record of one cart line. Addon group
// amounts are per unit, the Total* fields are scaled by Quantity.
type MenuItemCost struct {
	MenuItemID                  int              `json:"menu_item_id"`
	Name                        string           `json:"menu_item_name"`
	Sequence                    int              `json:"sequence"`
	Quantity                    int              `json:"quantity"`
	ItemPrice                   decimal.Decimal  `json:"item_price"`
	TotalVariantCost            decimal.Decimal  `json:"total_variant_cost"`
	AddonGroups                 []AddonGroupCost `json:"addon_groups"`
	TotalAddonGroupPrice        decimal.Decimal  `json:"total_addon_group_price"`
	TotalAddonGroupTaxAmount    decimal.Decimal  `json:"total_addon_group_tax_amount"`
	TotalItemAmount             decimal.Decimal  `json:"total_item_amount"`
	ItemPackingCharges          decimal.Decimal  `json:"item_packing_charges"`
	ItemTaxAmount               decimal.Decimal  `json:"item_tax_amount"`
	TotalIndividualFoodItemCost decimal.Decimal  `json:"total_individual_food_item_cost"`
	TotalIndividualFoodItemTax  decimal.Decimal  `json:"total_individual_food_item_tax"`

	// Percentage carried from the catalog; not part of any total.
	ServiceChargePercentage decimal.Decimal `json:"service_charge_percentage"`
}

// ValidatedMenuItem is a request-scoped copy of a catalog item with every
// variant and addon carrying an explicit selection flag.
type ValidatedMenuItem struct {
	Sequence      int                 `json:"sequence"`
	MenuItemID    int                 `json:"menu_item_id"`
	RestaurantID  int                 `json:"restaurant_id"`
	Name          string              `json:"menu_item_name"`
	Quantity      int                 `json:"quantity"`
	Price         decimal.NullDecimal `json:"price"`
	CGSTRate      decimal.Decimal     `json:"cgst_rate"`
	SGSTRate      decimal.Decimal     `json:"sgst_rate"`
	IGSTRate      decimal.Decimal     `json:"igst_rate"`
	TaxInclusive  bool                `json:"tax_inclusive"`
	TaxBasis      TaxBasis            `json:"tax_applied_on"`
	PackingCharge decimal.Decimal     `json:"packing_charges"`
	ServiceCharge decimal.Decimal     `json:"service_charges"`

	VariantGroups []MatchedVariantGroup `json:"variant_groups"`
	AddonGroups   []MatchedAddonGroup   `json:"addon_groups"`

	InStock         bool               `json:"in_stock"`
	NextAvailableAt *time.Time         `json:"next_available_at,omitempty"`
	Unavailable     []UnavailableEntry `json:"unavailable"`

	VariantsTotalCostWithoutTax decimal.Decimal `json:"variants_total_cost_without_tax"`
	AddonsTotalCostWithoutTax   decimal.Decimal `json:"addons_total_cost_without_tax"`
	AddonsTotalTax              decimal.Decimal `json:"addons_total_tax"`
	TotalTax                    decimal.Decimal `json:"total_tax"`
	TotalCostWithoutTax         decimal.Decimal `json:"total_cost_without_tax"`

	Cost MenuItemCost `json:"cost"`
}
