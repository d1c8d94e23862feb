package domain

import "github.com/shopspring/decimal"

type VariantChoice struct {
	GroupID   int `json:"variant_group_id"`
	VariantID int `json:"variant_id"`
}

type AddonChoice struct {
	GroupID  int   `json:"addon_group_id"`
	AddonIDs []int `json:"addons"`
}

type MenuItemSelection struct {
	MenuItemID    int             `json:"menu_item_id"`
	Quantity      int             `json:"quantity"`
	VariantGroups []VariantChoice `json:"variant_groups"`
	AddonGroups   []AddonChoice   `json:"addon_groups"`
}

type CartRequest struct {
	RestaurantID    int                 `json:"restaurant_id"`
	MenuItems       []MenuItemSelection `json:"menu_items"`
	CouponCode      string              `json:"coupon_code,omitempty"`
	DeliveryCharges decimal.Decimal     `json:"delivery_charges"`
}
