package pricing

import (
	"time"

	"speedyy-pricing/cart-svc/internal/domain"
)

// ValidateMenuItem matches sel against the catalog item, resolves the
// availability of the item and of every selected variant and addon, and
// prices the line. A structural problem aborts the item with a
// *ValidationError. Unavailability does not: it is reported on the result.
func ValidateMenuItem(item domain.CatalogMenuItem, sel domain.MenuItemSelection, sequence int, restaurant domain.Restaurant, now time.Time, notaDisplayName string) (domain.ValidatedMenuItem, error) {
	if sel.Quantity < 1 {
		return domain.ValidatedMenuItem{}, newValidationError(ErrInvalidQuantity, "menu item %s has quantity %d", item.Name, sel.Quantity)
	}

	variantGroups, err := MatchVariantGroups(item.VariantGroups, sel.VariantGroups, notaDisplayName)
	if err != nil {
		return domain.ValidatedMenuItem{}, err
	}
	addonGroups, err := MatchAddonGroups(item.AddonGroups, sel.AddonGroups, notaDisplayName)
	if err != nil {
		return domain.ValidatedMenuItem{}, err
	}

	validated := domain.ValidatedMenuItem{
		Sequence:      sequence,
		MenuItemID:    item.ID,
		RestaurantID:  item.RestaurantID,
		Name:          item.Name,
		Quantity:      sel.Quantity,
		Price:         item.Price,
		CGSTRate:      item.CGSTRate,
		SGSTRate:      item.SGSTRate,
		IGSTRate:      item.IGSTRate,
		TaxInclusive:  item.TaxInclusive,
		TaxBasis:      item.TaxBasis,
		PackingCharge: item.PackingCharge,
		ServiceCharge: item.ServiceCharge,
		VariantGroups: variantGroups,
		AddonGroups:   addonGroups,
		InStock:       true,
		Unavailable:   []domain.UnavailableEntry{},
	}
	resolveStock(&validated, item, now)

	cost, err := PriceMenuItem(&validated, sel.Quantity, restaurant)
	if err != nil {
		return domain.ValidatedMenuItem{}, err
	}
	validated.Cost = cost
	validated.VariantsTotalCostWithoutTax = cost.TotalVariantCost
	validated.AddonsTotalCostWithoutTax = cost.TotalAddonGroupPrice
	validated.AddonsTotalTax = cost.TotalAddonGroupTaxAmount
	validated.TotalCostWithoutTax = cost.TotalIndividualFoodItemCost
	validated.TotalTax = cost.TotalIndividualFoodItemTax
	return validated, nil
}

func resolveStock(v *domain.ValidatedMenuItem, item domain.CatalogMenuItem, now time.Time) {
	report := func(kind domain.UnavailableKind, id int, name string, a Availability) {
		v.InStock = false
		v.Unavailable = append(v.Unavailable, domain.UnavailableEntry{
			Kind:            kind,
			ID:              id,
			Name:            name,
			Reason:          a.Reason,
			NextAvailableAt: a.NextAvailableAt,
		})
		if a.NextAvailableAt != nil && (v.NextAvailableAt == nil || a.NextAvailableAt.After(*v.NextAvailableAt)) {
			at := *a.NextAvailableAt
			v.NextAvailableAt = &at
		}
	}

	if a := ResolveMenuItemAvailability(item, now); !a.Available {
		report(domain.UnavailableMenuItem, item.ID, item.Name, a)
	}
	for _, group := range v.VariantGroups {
		for _, variant := range group.Variants {
			if !variant.IsSelected {
				continue
			}
			if a := ResolveAvailability(variant.InStock, variant.NextAvailableAfter, now); !a.Available {
				report(domain.UnavailableVariant, variant.ID, variant.Name, a)
			}
		}
	}
	for _, group := range v.AddonGroups {
		for _, addon := range group.Addons {
			if !addon.IsSelected {
				continue
			}
			if a := ResolveAvailability(addon.InStock, addon.NextAvailableAfter, now); !a.Available {
				report(domain.UnavailableAddon, addon.ID, addon.Name, a)
			}
		}
	}
}
