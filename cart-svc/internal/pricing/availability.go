package pricing

import (
	"time"

	"speedyy-pricing/cart-svc/internal/domain"
)

const (
	ReasonOutOfStock    = "out_of_stock"
	ReasonNotYetInStock = "next_available_after"
	ReasonDisabled      = "disabled"
	ReasonOutsideSlot   = "outside_availability_slot"
)

type Availability struct {
	Available       bool
	Reason          string
	NextAvailableAt *time.Time
}

// ResolveAvailability applies the stock flag and the next-available-after
// timestamp of a variant, addon or menu item.
func ResolveAvailability(inStock bool, nextAvailableAfter *time.Time, now time.Time) Availability {
	if !inStock {
		return Availability{Reason: ReasonOutOfStock, NextAvailableAt: nextAvailableAfter}
	}
	if nextAvailableAfter != nil && nextAvailableAfter.After(now) {
		return Availability{Reason: ReasonNotYetInStock, NextAvailableAt: nextAvailableAfter}
	}
	return Availability{Available: true}
}

// ResolveMenuItemAvailability adds the disabled flag and the weekly slots on
// top of ResolveAvailability.
func ResolveMenuItemAvailability(item domain.CatalogMenuItem, now time.Time) Availability {
	if item.Disabled {
		return Availability{Reason: ReasonDisabled}
	}
	if a := ResolveAvailability(true, item.NextAvailableAfter, now); !a.Available {
		return a
	}
	if next := NextSlotStart(item.Slots, now); next != nil && next.After(now) {
		return Availability{Reason: ReasonOutsideSlot, NextAvailableAt: next}
	}
	return Availability{Available: true}
}

// NextSlotStart returns now when now falls inside a slot, otherwise the
// earliest slot opening within the coming week. It returns nil when there are
// no usable slots.
func NextSlotStart(slots []domain.AvailabilitySlot, now time.Time) *time.Time {
	var next *time.Time
	for offset := 0; offset <= 7; offset++ {
		day := now.AddDate(0, 0, offset)
		for _, slot := range slots {
			if slot.Weekday != day.Weekday() || !validSlot(slot) {
				continue
			}
			start := atHHMM(day, slot.OpenTime)
			end := atHHMM(day, slot.CloseTime)
			if offset == 0 && !now.Before(start) && now.Before(end) {
				current := now
				return &current
			}
			if start.Before(now) {
				continue
			}
			if next == nil || start.Before(*next) {
				candidate := start
				next = &candidate
			}
		}
	}
	return next
}

func validSlot(slot domain.AvailabilitySlot) bool {
	return validHHMM(slot.OpenTime) && validHHMM(slot.CloseTime) && slot.OpenTime < slot.CloseTime
}

func validHHMM(v int) bool {
	hour, minute := v/100, v%100
	if v < 0 || minute >= 60 {
		return false
	}
	return hour < 24 || (hour == 24 && minute == 0)
}

func atHHMM(day time.Time, hhmm int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hhmm/100, hhmm%100, 0, 0, day.Location())
}
