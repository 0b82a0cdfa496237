package transaction

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByBudgetQuery_NewestFirst(t *testing.T) {
	sql, args, err := listByBudgetQuery(7).Build(context.Background())
	require.NoError(t, err)

	query := strings.Join(strings.Fields(sql), " ")
	assert.Contains(t, query, "FROM transactions")
	assert.Contains(t, query, `"budget_id" = $1`)
	assert.Contains(t, query, "ORDER BY transaction_date DESC, id DESC")
	assert.Equal(t, []any{int64(7)}, args)
}
