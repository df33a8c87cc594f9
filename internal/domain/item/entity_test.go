//go:build unit

package item_test

import (
	"testing"

	"gearshare/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		reqID := int64(9)
		i, err := item.NewItem("Drill", "Cordless drill", true, 4, &reqID)
		require.NoError(t, err)
		assert.Equal(t, "Drill", i.Name())
		assert.Equal(t, "Cordless drill", i.Description())
		assert.True(t, i.Available())
		assert.Equal(t, int64(4), i.OwnerID())
		require.NotNil(t, i.RequestID())
		assert.Equal(t, reqID, *i.RequestID())
	})

	t.Run("request reference is optional", func(t *testing.T) {
		i, err := item.NewItem("Drill", "Cordless drill", false, 4, nil)
		require.NoError(t, err)
		assert.Nil(t, i.RequestID())
		assert.False(t, i.Available())
	})

	tests := []struct {
		name     string
		itemName string
		desc     string
		errIs    error
	}{
		{name: "blank name", itemName: "", desc: "something", errIs: item.ErrBlankName},
		{name: "whitespace name", itemName: "  ", desc: "something", errIs: item.ErrBlankName},
		{name: "blank description", itemName: "Drill", desc: "", errIs: item.ErrBlankDescription},
		{name: "whitespace description", itemName: "Drill", desc: "   ", errIs: item.ErrBlankDescription},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := item.NewItem(tc.itemName, tc.desc, true, 4, nil)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestIsOwnedBy(t *testing.T) {
	i := item.ReconstructItem(1, "Drill", "Cordless drill", true, 4, nil)
	assert.True(t, i.IsOwnedBy(4))
	assert.False(t, i.IsOwnedBy(5))
}
