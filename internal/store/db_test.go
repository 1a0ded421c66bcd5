package store

import (
	"testing"
	"time"

	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestWindowConds(t *testing.T) {
	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	t.Run("bounded", func(t *testing.T) {
		params := map[string]any{}
		conds := windowConds("sale_date", entity.Window(from, to), params)
		assert.Equal(t, []string{"sale_date >= :from", "sale_date <= :to"}, conds)
		assert.Equal(t, "2024-06-01", params["from"])
		assert.Equal(t, "2024-06-30", params["to"])
	})

	t.Run("from only", func(t *testing.T) {
		params := map[string]any{}
		conds := windowConds("expense_date", entity.DateWindow{From: &from}, params)
		assert.Equal(t, []string{"expense_date >= :from"}, conds)
		_, hasTo := params["to"]
		assert.False(t, hasTo)
	})

	t.Run("to only", func(t *testing.T) {
		params := map[string]any{}
		conds := windowConds("expense_date", entity.DateWindow{To: &to}, params)
		assert.Equal(t, []string{"expense_date <= :to"}, conds)
	})

	t.Run("open", func(t *testing.T) {
		params := map[string]any{}
		conds := windowConds("purchase_date", entity.DateWindow{}, params)
		assert.Empty(t, conds)
		assert.Empty(t, params)
	})
}

func TestWhereClause(t *testing.T) {
	assert.Equal(t, "", whereClause(nil))
	assert.Equal(t, " WHERE a = 1", whereClause([]string{"a = 1"}))
	assert.Equal(t, " WHERE a = 1 AND b = 2", whereClause([]string{"a = 1", "b = 2"}))
}
