package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/switchboard/pkg/domain"
)

// payloadOf splits a "<header>\n\n<json>" message and parses the JSON part.
func payloadOf(t *testing.T, msg string, into any) {
	t.Helper()
	parts := strings.SplitN(msg, "\n\n", 2)
	require.Len(t, parts, 2, "message should carry a payload: %q", msg)
	require.NoError(t, json.Unmarshal([]byte(parts[1]), into))
}

func addedID(t *testing.T, msg, prefix string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(msg, prefix), "got %q", msg)
	return strings.TrimPrefix(msg, prefix)
}

func TestAddCustomerThenGetCustomer(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, addCustomer(deps), map[string]any{
		"first_name":     "Ada",
		"last_name":      "Lovelace",
		"email":          "ada@example.com",
		"company":        "Analytical Engines",
		"annual_revenue": 1200000.0,
		"employee_count": float64(3),
	})
	require.NoError(t, err)
	id := addedID(t, msg, "Customer successfully added with ID: ")
	require.NotEmpty(t, id)

	msg, err = invoke(t, getCustomer(deps), map[string]any{"customer_id": id})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msg, "Customer Details:"))

	var row map[string]any
	payloadOf(t, msg, &row)
	assert.Equal(t, "Ada", row["first_name"])
	assert.Equal(t, "ada@example.com", row["email"])
	assert.Equal(t, "active", row["status"])
	assert.EqualValues(t, 3, row["employee_count"])
}

func TestGetCustomerUnknownID(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, getCustomer(deps), map[string]any{"customer_id": "nope"})
	require.NoError(t, err)
	assert.Equal(t, "No customer found with ID: nope", msg)
}

func TestAddCustomerDuplicateEmail(t *testing.T) {
	deps := testDeps(t)
	bag := map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	}

	_, err := invoke(t, addCustomer(deps), bag)
	require.NoError(t, err)

	_, err = invoke(t, addCustomer(deps), bag)
	require.Error(t, err)
	assert.Equal(t, "Error: Customer with email ada@example.com already exists", err.Error())
	assert.Equal(t, domain.KindDuplicateKey, domain.KindOf(err))

	// The first row survives untouched.
	rows, err := deps.Store.Query(context.Background(),
		`SELECT COUNT(*) as n FROM customers WHERE email = ?`, "ada@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows[0]["n"])
}

func TestSearchCustomersNoMatch(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, searchCustomers(deps), map[string]any{"search_term": "zzz"})
	require.NoError(t, err)
	assert.Equal(t, "No customers found matching 'zzz' in all", msg)
}

func TestSearchCustomersOrdering(t *testing.T) {
	deps := testDeps(t)
	for _, c := range []struct{ first, last, email string }{
		{"Ada", "Walker", "walker@corp.example"},
		{"Zed", "Adams", "adams@corp.example"},
		{"Mia", "Nguyen", "nguyen@corp.example"},
	} {
		_, err := invoke(t, addCustomer(deps), map[string]any{
			"first_name": c.first, "last_name": c.last, "email": c.email,
			"company": "SharedCorp",
		})
		require.NoError(t, err)
	}

	msg, err := invoke(t, searchCustomers(deps), map[string]any{
		"search_term": "SharedCorp", "search_field": "company",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msg, "Found 3 customers:"), "got %q", msg)

	var rows []map[string]any
	payloadOf(t, msg, &rows)
	require.Len(t, rows, 3)

	// all/name use last_name, first_name; company orders by company, so
	// run the default field too and check the name ordering there.
	msg, err = invoke(t, searchCustomers(deps), map[string]any{"search_term": "corp.example"})
	require.NoError(t, err)
	payloadOf(t, msg, &rows)
	require.Len(t, rows, 3)
	assert.Equal(t, "Adams", rows[0]["last_name"])
	assert.Equal(t, "Nguyen", rows[1]["last_name"])
	assert.Equal(t, "Walker", rows[2]["last_name"])
}

func TestSearchCustomersByNameMatchesEitherPart(t *testing.T) {
	deps := testDeps(t)
	_, err := invoke(t, addCustomer(deps), map[string]any{
		"first_name": "Grace", "last_name": "Hopper", "email": "grace@example.com",
	})
	require.NoError(t, err)

	msg, err := invoke(t, searchCustomers(deps), map[string]any{
		"search_term": "Hopp", "search_field": "name",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg, "Found 1 customers:"), "got %q", msg)

	msg, err = invoke(t, searchCustomers(deps), map[string]any{
		"search_term": "Grac", "search_field": "name",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg, "Found 1 customers:"), "got %q", msg)
}

func TestAddInteraction(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, addInteraction(deps), map[string]any{
		"customer_id":      "c-1",
		"interaction_type": "call",
		"subject":          "Quarterly review",
	})
	require.NoError(t, err)
	id := addedID(t, msg, "Interaction successfully added with ID: ")

	rows, err := deps.Store.Query(context.Background(),
		`SELECT interaction_type, subject, notes, interaction_date FROM interactions WHERE id = ?`, id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "call", rows[0]["interaction_type"])
	assert.Equal(t, "Quarterly review", rows[0]["subject"])
	assert.Equal(t, "", rows[0]["notes"])
	assert.NotNil(t, rows[0]["interaction_date"], "the store stamps the interaction date")
}

func TestAddDealDefaults(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, addDeal(deps), map[string]any{
		"customer_id": "c-1",
		"deal_name":   "Pilot",
		"value":       25000.0,
	})
	require.NoError(t, err)
	id := addedID(t, msg, "Deal successfully added with ID: ")

	rows, err := deps.Store.Query(context.Background(),
		`SELECT stage, probability, expected_close_date, value FROM deals WHERE id = ?`, id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "prospecting", rows[0]["stage"])
	assert.Equal(t, 0.0, rows[0]["probability"])
	assert.Nil(t, rows[0]["expected_close_date"], "omitted close date stays NULL")
	assert.Equal(t, 25000.0, rows[0]["value"])
}

func TestAddDealExplicitStage(t *testing.T) {
	deps := testDeps(t)

	msg, err := invoke(t, addDeal(deps), map[string]any{
		"customer_id":         "c-1",
		"deal_name":           "Expansion",
		"value":               90000.0,
		"stage":               "negotiation",
		"probability":         0.6,
		"expected_close_date": "2026-09-30",
	})
	require.NoError(t, err)
	id := addedID(t, msg, "Deal successfully added with ID: ")

	rows, err := deps.Store.Query(context.Background(),
		`SELECT stage, probability, expected_close_date FROM deals WHERE id = ?`, id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "negotiation", rows[0]["stage"])
	assert.Equal(t, 0.6, rows[0]["probability"])
	assert.Equal(t, "2026-09-30", rows[0]["expected_close_date"])
}

func TestPopulateSampleData(t *testing.T) {
	deps := testDeps(t)
	want := fmt.Sprintf("Sample data populated successfully! Added %d sample customers.", len(sampleCustomers))

	msg, err := invoke(t, populateSampleData(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, want, msg)

	// Seeding again skips existing emails instead of failing.
	msg, err = invoke(t, populateSampleData(deps), nil)
	require.NoError(t, err)
	assert.Equal(t, want, msg)

	rows, err := deps.Store.Query(context.Background(), `SELECT COUNT(*) as n FROM customers`)
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleCustomers), rows[0]["n"])
}
