package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoryRevenueQuery = `
	SELECT
		p.category AS category,
		SUM(oi.quantity) AS units_sold
	FROM order_items oi
	JOIN products p ON p.product_id = oi.product_id
	GROUP BY p.category
	ORDER BY units_sold DESC
`

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	ds := writeDataset(t, dir)
	db := openTestDB(t)

	ctx := context.Background()
	_, err := Load(ctx, db, dir)
	require.NoError(t, err)

	result, err := RunReport(ctx, db, categoryRevenueQuery)
	require.NoError(t, err)

	assert.Equal(t, []string{"category", "units_sold"}, result.Columns)
	assert.False(t, result.Empty())

	totalUnits := 0
	for _, item := range ds.Items {
		totalUnits += item.Quantity
	}
	gotUnits := 0
	for _, row := range result.Rows {
		require.Len(t, row, 2)
		n, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		gotUnits += n
	}
	assert.Equal(t, totalUnits, gotUnits)
}

func TestRunReport_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	db := openTestDB(t)

	ctx := context.Background()
	_, err := Load(ctx, db, dir)
	require.NoError(t, err)

	result, err := RunReport(ctx, db, "SELECT order_id FROM orders WHERE 1 = 0")
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Equal(t, []string{"order_id"}, result.Columns)
}

func TestRunReport_EmptyQuery(t *testing.T) {
	db := openTestDB(t)

	_, err := RunReport(context.Background(), db, "   \n")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRunReport_BadQuery(t *testing.T) {
	db := openTestDB(t)

	_, err := RunReport(context.Background(), db, "SELECT * FROM no_such_table")
	assert.Error(t, err)
}
