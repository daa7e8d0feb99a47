package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
	"github.com/aretw0/switchboard/pkg/registry"
	"github.com/aretw0/switchboard/pkg/schema"
)

type sampleCustomer struct {
	firstName     string
	lastName      string
	email         string
	phone         string
	company       string
	industry      string
	annualRevenue float64
	employeeCount int
	leadSource    string
}

var sampleCustomers = []sampleCustomer{
	{"John", "Doe", "john.doe@techcorp.com", "+1-555-0101", "TechCorp", "Technology", 5000000, 50, "website"},
	{"Jane", "Smith", "jane.smith@retailplus.com", "+1-555-0102", "RetailPlus", "Retail", 2000000, 25, "referral"},
	{"Bob", "Johnson", "bob@manufacturing.com", "+1-555-0103", "ManufacturingCo", "Manufacturing", 10000000, 100, "trade_show"},
	{"Alice", "Williams", "alice@healthsys.com", "+1-555-0104", "HealthSystems", "Healthcare", 15000000, 200, "cold_call"},
	{"Charlie", "Brown", "charlie@fintech.com", "+1-555-0105", "FinTech Solutions", "Financial", 8000000, 75, "linkedin"},
}

// SeedSampleData loads the fixed demo dataset. Rows whose email already
// exists are skipped, so seeding twice leaves one copy of each customer.
func SeedSampleData(ctx context.Context, store ports.Store) error {
	for _, c := range sampleCustomers {
		_, err := store.Exec(ctx, `
			INSERT OR IGNORE INTO customers
			(id, first_name, last_name, email, phone, company, industry,
			 annual_revenue, employee_count, lead_source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), c.firstName, c.lastName, c.email, c.phone, c.company,
			c.industry, c.annualRevenue, c.employeeCount, c.leadSource)
		if err != nil {
			return err
		}
	}
	return nil
}

func populateSampleData(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "populate_sample_data",
			Description: "Populate the database with sample customer data for testing",
			Schema:      schema.Schema{},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			if err := SeedSampleData(ctx, deps.Store); err != nil {
				return "", &domain.Error{
					Kind:    domain.KindOf(err),
					Message: fmt.Sprintf("Error populating sample data: %v", err),
					Err:     err,
				}
			}
			return fmt.Sprintf("Sample data populated successfully! Added %d sample customers.", len(sampleCustomers)), nil
		},
	}
}
