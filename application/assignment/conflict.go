package assignment

import (
	"sort"

	"github.com/muhammadheryan/item-location/model"
)

// evaluateConflicts compares the product's current assignments and the
// target location's current assignments against a proposed pair. It does
// not consider leases or the mixed flag; callers fill those in.
func evaluateConflicts(itemID string, locationID uint64, byItem, atLocation []model.ItemLocation) *model.ConflictResult {
	result := &model.ConflictResult{}

	others := make(map[uint64]struct{})
	for _, row := range byItem {
		if row.ItemID == itemID && row.LocationID != locationID {
			others[row.LocationID] = struct{}{}
		}
	}
	if len(others) > 0 {
		result.ProductHasOtherLocations = true
		result.OtherLocations = make([]uint64, 0, len(others))
		for id := range others {
			result.OtherLocations = append(result.OtherLocations, id)
		}
		sort.Slice(result.OtherLocations, func(i, j int) bool { return result.OtherLocations[i] < result.OtherLocations[j] })
	}

	for _, row := range atLocation {
		if row.LocationID == locationID && row.ItemID != itemID {
			result.LocationHasOtherProducts = true
			result.ConflictingProduct = &model.Product{Code: row.ItemID}
			break
		}
	}
	return result
}

// sameClient treats two nil clients (general sale) as equal.
func sameClient(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func findDuplicate(rows []model.ItemLocation, itemID string, clientID *string, skipID uint64) *model.ItemLocation {
	for i := range rows {
		if rows[i].ID != skipID && rows[i].ItemID == itemID && sameClient(rows[i].ClientID, clientID) {
			return &rows[i]
		}
	}
	return nil
}

func uniqueSorted(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
