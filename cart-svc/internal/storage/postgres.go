package storage

import (
	"database/sql"
	"time"

	"speedyy-pricing/cart-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetRestaurant(restaurantID int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, packing_charge_type, packing_charge_mode, order_packing_charge,
			packing_charge_taxable, packing_cgst_rate, packing_sgst_rate, packing_igst_rate
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&rest.ID, &rest.Name, &rest.PackingChargeType, &rest.PackingChargeMode,
		&rest.OrderPackingCharge, &rest.PackingChargeTaxable,
		&rest.PackingCGSTRate, &rest.PackingSGSTRate, &rest.PackingIGSTRate)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetMenuItems loads the menu items with their slots, variant groups and
// addon groups. Items that do not exist are left out of the result.
func (r *PostgresRepository) GetMenuItems(menuItemIDs []int) ([]domain.CatalogMenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price, cgst_rate, sgst_rate, igst_rate, tax_inclusive,
			tax_applied_on, disable, next_available_after, packing_charges, service_charges
		FROM menu_items
		WHERE id = ANY($1)
		ORDER BY id
	`, pq.Array(menuItemIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CatalogMenuItem
	index := make(map[int]int)
	for rows.Next() {
		var item domain.CatalogMenuItem
		var nextAvailable sql.NullTime
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price,
			&item.CGSTRate, &item.SGSTRate, &item.IGSTRate, &item.TaxInclusive,
			&item.TaxBasis, &item.Disabled, &nextAvailable, &item.PackingCharge, &item.ServiceCharge); err != nil {
			return nil, err
		}
		item.NextAvailableAfter = timePtr(nextAvailable)
		item.Slots = []domain.AvailabilitySlot{}
		item.VariantGroups = []domain.CatalogVariantGroup{}
		item.AddonGroups = []domain.CatalogAddonGroup{}
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	if err := r.loadSlots(menuItemIDs, items, index); err != nil {
		return nil, err
	}
	if err := r.loadVariantGroups(menuItemIDs, items, index); err != nil {
		return nil, err
	}
	if err := r.loadAddonGroups(menuItemIDs, items, index); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) loadSlots(menuItemIDs []int, items []domain.CatalogMenuItem, index map[int]int) error {
	rows, err := r.DB.Query(`
		SELECT menu_item_id, weekday, open_time, close_time
		FROM menu_item_slots
		WHERE menu_item_id = ANY($1)
		ORDER BY menu_item_id, weekday, open_time
	`, pq.Array(menuItemIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var menuItemID, weekday int
		var slot domain.AvailabilitySlot
		if err := rows.Scan(&menuItemID, &weekday, &slot.OpenTime, &slot.CloseTime); err != nil {
			return err
		}
		slot.Weekday = time.Weekday(weekday)
		if i, ok := index[menuItemID]; ok {
			items[i].Slots = append(items[i].Slots, slot)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) loadVariantGroups(menuItemIDs []int, items []domain.CatalogMenuItem, index map[int]int) error {
	rows, err := r.DB.Query(`
		SELECT vg.menu_item_id, vg.id, vg.name, v.id, v.name, v.price, v.in_stock, v.next_available_after
		FROM variant_groups vg
		JOIN variants v ON v.variant_group_id = vg.id
		WHERE vg.menu_item_id = ANY($1)
		ORDER BY vg.menu_item_id, vg.id, v.id
	`, pq.Array(menuItemIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var menuItemID, groupID int
		var groupName string
		var variant domain.CatalogVariant
		var nextAvailable sql.NullTime
		if err := rows.Scan(&menuItemID, &groupID, &groupName, &variant.ID, &variant.Name,
			&variant.Price, &variant.InStock, &nextAvailable); err != nil {
			return err
		}
		variant.NextAvailableAfter = timePtr(nextAvailable)

		i, ok := index[menuItemID]
		if !ok {
			continue
		}
		groups := items[i].VariantGroups
		if n := len(groups); n == 0 || groups[n-1].ID != groupID {
			groups = append(groups, domain.CatalogVariantGroup{ID: groupID, Name: groupName})
		}
		last := &groups[len(groups)-1]
		last.Variants = append(last.Variants, variant)
		items[i].VariantGroups = groups
	}
	return rows.Err()
}

func (r *PostgresRepository) loadAddonGroups(menuItemIDs []int, items []domain.CatalogMenuItem, index map[int]int) error {
	rows, err := r.DB.Query(`
		SELECT mag.menu_item_id, ag.id, ag.name, mag.min_limit, mag.max_limit, mag.free_limit,
			a.id, a.name, a.price, a.cgst_rate, a.sgst_rate, a.igst_rate, a.gst_inclusive,
			a.in_stock, a.next_available_after
		FROM menu_item_addon_groups mag
		JOIN addon_groups ag ON ag.id = mag.addon_group_id
		JOIN addons a ON a.addon_group_id = ag.id
		WHERE mag.menu_item_id = ANY($1)
		ORDER BY mag.menu_item_id, ag.id, a.id
	`, pq.Array(menuItemIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var menuItemID int
		var group domain.CatalogAddonGroup
		var addon domain.CatalogAddon
		var nextAvailable sql.NullTime
		if err := rows.Scan(&menuItemID, &group.ID, &group.Name, &group.MinLimit, &group.MaxLimit, &group.FreeLimit,
			&addon.ID, &addon.Name, &addon.Price, &addon.CGSTRate, &addon.SGSTRate, &addon.IGSTRate,
			&addon.GSTInclusive, &addon.InStock, &nextAvailable); err != nil {
			return err
		}
		addon.NextAvailableAfter = timePtr(nextAvailable)

		i, ok := index[menuItemID]
		if !ok {
			continue
		}
		groups := items[i].AddonGroups
		if n := len(groups); n == 0 || groups[n-1].ID != group.ID {
			groups = append(groups, group)
		}
		last := &groups[len(groups)-1]
		last.Addons = append(last.Addons, addon)
		items[i].AddonGroups = groups
	}
	return rows.Err()
}

// GetCouponByCode returns sql.ErrNoRows when no coupon with the code applies
// to the restaurant.
func (r *PostgresRepository) GetCouponByCode(code string, restaurantID int) (*domain.Coupon, error) {
	var coupon domain.Coupon
	var couponType domain.CouponType
	var percentage, amount, maxDiscount decimal.NullDecimal
	err := r.DB.QueryRow(`
		SELECT id, code, type, discount_percentage, discount_amount_rupees, max_discount_rupees,
			min_order_value_rupees, discount_share_percent_vendor, discount_share_percent_speedyy
		FROM coupons
		WHERE code = $1 AND (restaurant_id IS NULL OR restaurant_id = $2)
		ORDER BY restaurant_id NULLS LAST
		LIMIT 1
	`, code, restaurantID).Scan(&coupon.ID, &coupon.Code, &couponType, &percentage, &amount, &maxDiscount,
		&coupon.MinOrderValue, &coupon.DiscountSharePercentVendor, &coupon.DiscountSharePercentSpeedyy)
	if err != nil {
		return nil, err
	}

	coupon.Discount, err = domain.NewCouponDiscount(couponType, percentage, amount, maxDiscount)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
