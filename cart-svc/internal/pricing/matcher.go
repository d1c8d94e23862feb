package pricing

import "speedyy-pricing/cart-svc/internal/domain"

// notaGroupName marks a "none of the above" group in the catalog.
const notaGroupName = "NOTA"

func displayGroupName(name, notaDisplayName string) string {
	if name == notaGroupName && notaDisplayName != "" {
		return notaDisplayName
	}
	return name
}

// MatchVariantGroups copies the catalog variant groups and flags the groups
// and variants named in requested. Every returned group and variant carries
// an explicit IsSelected; the catalog slice is not modified.
func MatchVariantGroups(groups []domain.CatalogVariantGroup, requested []domain.VariantChoice, notaDisplayName string) ([]domain.MatchedVariantGroup, error) {
	matched := make([]domain.MatchedVariantGroup, len(groups))
	index := make(map[int]int, len(groups))
	for i, group := range groups {
		variants := make([]domain.MatchedVariant, len(group.Variants))
		for j, variant := range group.Variants {
			variants[j] = domain.MatchedVariant{CatalogVariant: variant, IsSelected: false}
		}
		matched[i] = domain.MatchedVariantGroup{
			ID:         group.ID,
			Name:       displayGroupName(group.Name, notaDisplayName),
			IsSelected: false,
			Variants:   variants,
		}
		index[group.ID] = i
	}

	for _, choice := range requested {
		i, ok := index[choice.GroupID]
		if !ok {
			return nil, newValidationError(ErrInvalidVariantGroup, "variant group %d does not exist", choice.GroupID)
		}
		group := &matched[i]
		if group.IsSelected {
			return nil, newValidationError(ErrDuplicateVariantGroup, "variant group %s is selected more than once", group.Name)
		}
		group.IsSelected = true

		found := false
		for j := range group.Variants {
			if group.Variants[j].ID == choice.VariantID {
				group.Variants[j].IsSelected = true
				found = true
				break
			}
		}
		if !found {
			return nil, newValidationError(ErrInvalidVariant, "variant %d does not exist in variant group %s", choice.VariantID, group.Name)
		}
	}
	return matched, nil
}

// MatchAddonGroups copies the catalog addon groups, flags the requested
// addons and enforces each selected group's min/max limits.
func MatchAddonGroups(groups []domain.CatalogAddonGroup, requested []domain.AddonChoice, notaDisplayName string) ([]domain.MatchedAddonGroup, error) {
	matched := make([]domain.MatchedAddonGroup, len(groups))
	index := make(map[int]int, len(groups))
	for i, group := range groups {
		addons := make([]domain.MatchedAddon, len(group.Addons))
		for j, addon := range group.Addons {
			addons[j] = domain.MatchedAddon{CatalogAddon: addon, IsSelected: false}
		}
		matched[i] = domain.MatchedAddonGroup{
			ID:         group.ID,
			Name:       displayGroupName(group.Name, notaDisplayName),
			MinLimit:   group.MinLimit,
			MaxLimit:   group.MaxLimit,
			FreeLimit:  group.FreeLimit,
			IsSelected: false,
			Addons:     addons,
		}
		index[group.ID] = i
	}

	for _, choice := range requested {
		i, ok := index[choice.GroupID]
		if !ok {
			return nil, newValidationError(ErrInvalidAddonGroup, "addon group %d does not exist", choice.GroupID)
		}
		group := &matched[i]
		if group.IsSelected {
			return nil, newValidationError(ErrDuplicateAddonGroup, "addon group %s is selected more than once", group.Name)
		}
		group.IsSelected = true

		for _, addonID := range choice.AddonIDs {
			if err := selectAddon(group, addonID); err != nil {
				return nil, err
			}
		}

		count := len(choice.AddonIDs)
		if group.MaxLimit != -1 {
			if count > group.MaxLimit {
				return nil, newValidationError(ErrTooManyAddons,
					"maximum %d addons from %s can be selected, minimum %d", group.MaxLimit, group.Name, group.MinLimit)
			}
			if count < group.MinLimit {
				return nil, newValidationError(ErrTooFewAddons,
					"minimum %d addons from %s should be selected, maximum %d", group.MinLimit, group.Name, group.MaxLimit)
			}
		}
	}
	return matched, nil
}

func selectAddon(group *domain.MatchedAddonGroup, addonID int) error {
	for j := range group.Addons {
		addon := &group.Addons[j]
		if addon.ID != addonID {
			continue
		}
		if addon.IsSelected {
			return newValidationError(ErrDuplicateAddon, "addon %s in addon group %s is selected more than once", addon.Name, group.Name)
		}
		addon.IsSelected = true
		return nil
	}
	return newValidationError(ErrInvalidAddon, "addon %d does not exist in addon group %s", addonID, group.Name)
}
