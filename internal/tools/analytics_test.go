package tools

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCustomer(t *testing.T, deps Deps, id, email string) {
	t.Helper()
	_, err := deps.Store.Exec(context.Background(),
		`INSERT INTO customers (id, first_name, last_name, email) VALUES (?, ?, ?, ?)`,
		id, "Test", "Customer", email)
	require.NoError(t, err)
}

func TestAnalyzeCustomersByIndustryEmpty(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, analyzeCustomersByIndustry(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, "No industry data available", msg)
}

func TestAnalyzeCustomersByIndustry(t *testing.T) {
	deps := testDeps(t)
	require.NoError(t, SeedSampleData(context.Background(), deps.Store))

	msg, err := invoke(t, analyzeCustomersByIndustry(deps), nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msg, "Customer Analysis by Industry:"), "got %q", msg)

	var rows []map[string]any
	payloadOf(t, msg, &rows)
	assert.Len(t, rows, 5, "each sample customer has a distinct industry")

	for _, row := range rows {
		assert.EqualValues(t, 1, row["customer_count"])
		assert.NotNil(t, row["avg_revenue"])
		assert.NotNil(t, row["total_revenue"])
		assert.NotNil(t, row["avg_employees"])
	}
}

func TestAnalyzeCustomersByIndustrySkipsBlankIndustry(t *testing.T) {
	deps := testDeps(t)
	seedCustomer(t, deps, "c-blank", "blank@example.com")

	msg, err := invoke(t, analyzeCustomersByIndustry(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, "No industry data available", msg,
		"customers without an industry should not form a group")
}

func TestAnalyzeDealPipelineEmpty(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, analyzeDealPipeline(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, "No deals in pipeline", msg)
}

func TestAnalyzeDealPipelineStageOrder(t *testing.T) {
	deps := testDeps(t)
	seedCustomer(t, deps, "c-1", "one@example.com")

	// Insert out of pipeline order on purpose.
	for i, stage := range []string{"closed-won", "prospecting", "negotiation"} {
		_, err := deps.Store.Exec(context.Background(),
			`INSERT INTO deals (id, customer_id, deal_name, value, stage, probability)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			fmt.Sprintf("d-%d", i), "c-1", "Deal", 10000.0*float64(i+1), stage, 0.5)
		require.NoError(t, err)
	}

	msg, err := invoke(t, analyzeDealPipeline(deps), nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msg, "Deal Pipeline Analysis:"), "got %q", msg)

	var rows []map[string]any
	payloadOf(t, msg, &rows)
	require.Len(t, rows, 3)

	// Pipeline position, not alphabetical (that would put closed-won first).
	assert.Equal(t, "prospecting", rows[0]["stage"])
	assert.Equal(t, "negotiation", rows[1]["stage"])
	assert.Equal(t, "closed-won", rows[2]["stage"])
}

func TestAnalyzeDealPipelineAggregates(t *testing.T) {
	deps := testDeps(t)
	seedCustomer(t, deps, "c-1", "one@example.com")

	for i, v := range []float64{10000, 30000} {
		_, err := deps.Store.Exec(context.Background(),
			`INSERT INTO deals (id, customer_id, deal_name, value, stage, probability)
			 VALUES (?, ?, ?, ?, 'proposal', 0.5)`,
			fmt.Sprintf("d-%d", i), "c-1", "Deal", v)
		require.NoError(t, err)
	}

	msg, err := invoke(t, analyzeDealPipeline(deps), nil)
	require.NoError(t, err)

	var rows []map[string]any
	payloadOf(t, msg, &rows)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.EqualValues(t, 2, row["deal_count"])
	assert.Equal(t, 40000.0, row["total_value"])
	assert.Equal(t, 20000.0, row["avg_deal_size"])
	assert.Equal(t, 0.5, row["avg_probability"])
	assert.Equal(t, 20000.0, row["weighted_value"])
}

func TestGetTopCustomersByRevenue(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, getTopCustomersByRevenue(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, "No customers with revenue data found", msg)

	// Twelve with revenue, one without; only the top ten appear.
	for i := 1; i <= 12; i++ {
		_, err := deps.Store.Exec(context.Background(),
			`INSERT INTO customers (id, first_name, last_name, email, annual_revenue)
			 VALUES (?, ?, ?, ?, ?)`,
			fmt.Sprintf("c-%d", i), "Cust", fmt.Sprintf("Num%02d", i),
			fmt.Sprintf("cust%d@example.com", i), float64(i)*1000)
		require.NoError(t, err)
	}
	seedCustomer(t, deps, "c-zero", "zero@example.com")

	msg, err = invoke(t, getTopCustomersByRevenue(deps), nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msg, "Top Customers by Revenue:"), "got %q", msg)

	var rows []map[string]any
	payloadOf(t, msg, &rows)
	require.Len(t, rows, 10)
	assert.Equal(t, 12000.0, rows[0]["annual_revenue"])
	assert.Equal(t, 3000.0, rows[9]["annual_revenue"])
	for _, row := range rows {
		assert.NotEqual(t, "zero@example.com", row["email"])
	}
}

func TestGetRecentInteractionsWindow(t *testing.T) {
	deps := testDeps(t)
	ctx := context.Background()

	msg, err := invoke(t, getRecentInteractions(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, "No interactions found in the last 7 days", msg)

	seedCustomer(t, deps, "c-1", "one@example.com")
	_, err = deps.Store.Exec(ctx,
		`INSERT INTO interactions (id, customer_id, interaction_type, subject, interaction_date)
		 VALUES ('i-new', 'c-1', 'call', 'fresh call', datetime('now'))`)
	require.NoError(t, err)
	_, err = deps.Store.Exec(ctx,
		`INSERT INTO interactions (id, customer_id, interaction_type, subject, interaction_date)
		 VALUES ('i-old', 'c-1', 'email', 'stale mail', datetime('now', '-2 days'))`)
	require.NoError(t, err)

	msg, err = invoke(t, getRecentInteractions(deps), map[string]any{"days": float64(1)})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msg, "Recent Interactions (Last 1 days):"), "got %q", msg)
	assert.Contains(t, msg, "fresh call")
	assert.NotContains(t, msg, "stale mail")

	msg, err = invoke(t, getRecentInteractions(deps), map[string]any{"days": float64(7)})
	require.NoError(t, err)

	var rows []map[string]any
	payloadOf(t, msg, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "fresh call", rows[0]["subject"], "newest first")
	assert.Equal(t, "Test", rows[0]["first_name"], "joined customer columns present")
}
