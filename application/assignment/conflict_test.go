package assignment

import (
	"testing"

	"github.com/muhammadheryan/item-location/model"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateConflicts(t *testing.T) {
	tests := []struct {
		name       string
		itemID     string
		byItem     []model.ItemLocation
		atLocation []model.ItemLocation
		want       *model.ConflictResult
	}{
		{
			name:   "empty location, new product",
			itemID: "A1",
			want:   &model.ConflictResult{},
		},
		{
			name:   "product already at the target only",
			itemID: "A1",
			byItem: []model.ItemLocation{{ID: 1, ItemID: "A1", LocationID: 3}},
			atLocation: []model.ItemLocation{
				{ID: 1, ItemID: "A1", LocationID: 3},
			},
			want: &model.ConflictResult{},
		},
		{
			name:   "product elsewhere",
			itemID: "A1",
			byItem: []model.ItemLocation{
				{ID: 1, ItemID: "A1", LocationID: 9},
				{ID: 2, ItemID: "A1", LocationID: 4},
				{ID: 3, ItemID: "A1", LocationID: 9},
			},
			want: &model.ConflictResult{ProductHasOtherLocations: true, OtherLocations: []uint64{4, 9}},
		},
		{
			name:   "location holds another product",
			itemID: "B2",
			atLocation: []model.ItemLocation{
				{ID: 5, ItemID: "A1", LocationID: 3},
				{ID: 6, ItemID: "C3", LocationID: 3},
			},
			want: &model.ConflictResult{LocationHasOtherProducts: true, ConflictingProduct: &model.Product{Code: "A1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluateConflicts(tt.itemID, 3, tt.byItem, tt.atLocation))
		})
	}
}

func TestSameClient(t *testing.T) {
	a, b := "C1", "C1"
	c := "C2"
	assert.True(t, sameClient(nil, nil))
	assert.True(t, sameClient(&a, &b))
	assert.False(t, sameClient(&a, &c))
	assert.False(t, sameClient(nil, &a))
}

func TestUniqueSorted(t *testing.T) {
	assert.Equal(t, []uint64{1, 3, 7}, uniqueSorted([]uint64{7, 3, 7, 1}))
	assert.Equal(t, []uint64{}, uniqueSorted(nil))
}
