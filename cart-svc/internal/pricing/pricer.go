package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"speedyy-pricing/cart-svc/internal/domain"
)

// PriceMenuItem computes the cost and tax of one validated cart line.
//
// Variant and base prices are added per unit and scaled by quantity once.
// Addon groups are priced per unit and their totals are scaled separately.
func PriceMenuItem(item *domain.ValidatedMenuItem, quantity int, restaurant domain.Restaurant) (domain.MenuItemCost, error) {
	if quantity < 1 {
		return domain.MenuItemCost{}, newValidationError(ErrInvalidQuantity, "menu item %s has quantity %d", item.Name, quantity)
	}
	if !item.Price.Valid {
		return domain.MenuItemCost{}, newValidationError(ErrMissingPrice, "menu item %s has no price", item.Name)
	}
	qty := decimal.NewFromInt(int64(quantity))
	itemRate := sumRates(item.CGSTRate, item.SGSTRate, item.IGSTRate)
	itemTaxable := !item.TaxInclusive && !itemRate.IsZero()

	variantCost := decimal.Zero
	for _, group := range item.VariantGroups {
		if !group.IsSelected {
			continue
		}
		for _, variant := range group.Variants {
			if !variant.IsSelected {
				continue
			}
			if !variant.Price.Valid {
				return domain.MenuItemCost{}, newValidationError(ErrMissingPrice, "variant %s in variant group %s has no price", variant.Name, group.Name)
			}
			variantCost = variantCost.Add(variant.Price.Decimal)
		}
	}

	addonPrice, addonTax := decimal.Zero, decimal.Zero
	addonGroups := make([]domain.AddonGroupCost, 0, len(item.AddonGroups))
	for _, group := range item.AddonGroups {
		if !group.IsSelected {
			continue
		}
		groupCost, err := priceAddonGroup(group, itemTaxable)
		if err != nil {
			return domain.MenuItemCost{}, err
		}
		addonGroups = append(addonGroups, groupCost)
		addonPrice = addonPrice.Add(groupCost.Price)
		addonTax = addonTax.Add(groupCost.Tax)
	}

	cost := domain.MenuItemCost{
		MenuItemID:               item.MenuItemID,
		Name:                     item.Name,
		Sequence:                 item.Sequence,
		Quantity:                 quantity,
		ItemPrice:                item.Price.Decimal,
		TotalVariantCost:         variantCost,
		AddonGroups:              addonGroups,
		TotalAddonGroupPrice:     Round2(addonPrice.Mul(qty)),
		TotalAddonGroupTaxAmount: Round2(addonTax.Mul(qty)),
		TotalItemAmount:          Round2(item.Price.Decimal.Add(variantCost).Mul(qty)),
		ItemTaxAmount:            decimal.Zero,
		ServiceChargePercentage:  item.ServiceCharge,
	}
	cost.ItemPackingCharges = itemPackingCharge(item, qty, cost.TotalItemAmount.Add(cost.TotalAddonGroupPrice), restaurant)

	if itemTaxable {
		taxBase := cost.TotalItemAmount
		if item.TaxBasis == domain.TaxBasisTotal {
			taxBase = taxBase.Add(cost.ItemPackingCharges)
		}
		cost.ItemTaxAmount = percentOf(taxBase, itemRate)
	}

	cost.TotalIndividualFoodItemCost = cost.TotalItemAmount.Add(cost.TotalAddonGroupPrice)
	cost.TotalIndividualFoodItemTax = cost.ItemTaxAmount.Add(cost.TotalAddonGroupTaxAmount)
	return cost, nil
}

// itemPackingCharge is non-zero only under the restaurant's item packing
// policy. Fixed charges are per unit, percent charges apply to the line's
// item and addon amount.
func itemPackingCharge(item *domain.ValidatedMenuItem, qty, lineAmount decimal.Decimal, restaurant domain.Restaurant) decimal.Decimal {
	if restaurant.PackingChargeType != domain.PackingChargeItem {
		return decimal.Zero
	}
	if restaurant.PackingChargeMode == domain.PackingChargePercent {
		return percentOf(lineAmount, item.PackingCharge)
	}
	return Round2(item.PackingCharge.Mul(qty))
}

// priceAddonGroup prices the selected addons of one group for a single unit.
// The cheapest FreeLimit addons are free.
func priceAddonGroup(group domain.MatchedAddonGroup, itemTaxable bool) (domain.AddonGroupCost, error) {
	selected := make([]domain.MatchedAddon, 0, len(group.Addons))
	for _, addon := range group.Addons {
		if !addon.IsSelected {
			continue
		}
		if !addon.Price.Valid {
			return domain.AddonGroupCost{}, newValidationError(ErrMissingPrice, "addon %s in addon group %s has no price", addon.Name, group.Name)
		}
		selected = append(selected, addon)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Price.Decimal.LessThan(selected[j].Price.Decimal)
	})

	free := 0
	if group.FreeLimit > 0 {
		free = min(group.FreeLimit, len(selected))
	}

	cost := domain.AddonGroupCost{
		AddonGroupID:    group.ID,
		Name:            group.Name,
		FreeAddonIDs:    make([]int, 0, free),
		ChargedAddonIDs: make([]int, 0, len(selected)-free),
		Price:           decimal.Zero,
		Tax:             decimal.Zero,
	}
	for i, addon := range selected {
		if i < free {
			cost.FreeAddonIDs = append(cost.FreeAddonIDs, addon.ID)
			continue
		}
		cost.ChargedAddonIDs = append(cost.ChargedAddonIDs, addon.ID)
		cost.Price = cost.Price.Add(addon.Price.Decimal)
		if addon.GSTInclusive {
			continue
		}
		if !addon.CGSTRate.Valid && !addon.SGSTRate.Valid && !addon.IGSTRate.Valid {
			if itemTaxable {
				return domain.AddonGroupCost{}, newValidationError(ErrMissingTaxRate, "addon %s in addon group %s has no tax rates", addon.Name, group.Name)
			}
			continue
		}
		rate := sumRates(addon.CGSTRate.Decimal, addon.SGSTRate.Decimal, addon.IGSTRate.Decimal)
		cost.Tax = cost.Tax.Add(percentOf(addon.Price.Decimal, rate))
	}
	return cost, nil
}
