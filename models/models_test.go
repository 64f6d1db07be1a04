package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		ok    []string
		bad   []string
	}{
		{"gender", ValidGender, []string{"male", "female", "other"}, []string{"", "Male", "x"}},
		{"activity", ValidActivityLevel, []string{"sedentary", "very-active"}, []string{"very active", "extreme"}},
		{"goal type", ValidGoalType, []string{"muscle-building", "health-conditions"}, []string{"weight-loss"}},
		{"priority", ValidGoalPriority, []string{"low", "medium", "high"}, []string{"urgent", ""}},
		{"order status", ValidOrderStatus, []string{"pending", "processing", "shipped", "delivered"}, []string{"cancelled", "PENDING"}},
		{"vendor", ValidVendor, []string{"amazon", "walmart", "local"}, []string{"ebay"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				assert.True(t, tt.check(v), v)
			}
			for _, v := range tt.bad {
				assert.False(t, tt.check(v), v)
			}
		})
	}
}

func TestAllListsUsersFirst(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)
	_, ok := all[0].(*User)
	assert.True(t, ok)
}

func TestEveryModelCarriesTimestamps(t *testing.T) {
	for _, m := range All() {
		t.Run(fmt.Sprintf("%T", m), func(t *testing.T) {
			raw, err := json.Marshal(m)
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(raw, &fields))
			for _, key := range []string{"id", "created_at", "updated_at"} {
				assert.Contains(t, fields, key)
			}
		})
	}
}
