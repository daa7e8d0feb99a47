package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/registry"
	"github.com/aretw0/switchboard/pkg/schema"
)

type addCustomerArgs struct {
	FirstName     string  `mapstructure:"first_name"`
	LastName      string  `mapstructure:"last_name"`
	Email         string  `mapstructure:"email"`
	Phone         string  `mapstructure:"phone"`
	Company       string  `mapstructure:"company"`
	Industry      string  `mapstructure:"industry"`
	AnnualRevenue float64 `mapstructure:"annual_revenue"`
	EmployeeCount int     `mapstructure:"employee_count"`
	LeadSource    string  `mapstructure:"lead_source"`
}

func addCustomer(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "add_customer",
			Description: "Add a new customer to the CRM system",
			Schema: schema.Schema{
				{Key: "first_name", Kind: schema.String, Required: true, Description: "Customer's first name"},
				{Key: "last_name", Kind: schema.String, Required: true, Description: "Customer's last name"},
				{Key: "email", Kind: schema.String, Required: true, Description: "Customer's email address"},
				{Key: "phone", Kind: schema.String, Description: "Customer's phone number"},
				{Key: "company", Kind: schema.String, Description: "Customer's company name"},
				{Key: "industry", Kind: schema.String, Description: "Customer's industry"},
				{Key: "annual_revenue", Kind: schema.Number, Description: "Company's annual revenue"},
				{Key: "employee_count", Kind: schema.Integer, Description: "Number of employees"},
				{Key: "lead_source", Kind: schema.String, Description: "How the lead was acquired"},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in addCustomerArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error adding customer: %v", err)
			}

			id := uuid.NewString()
			_, err := deps.Store.Exec(ctx, `
				INSERT INTO customers
				(id, first_name, last_name, email, phone, company, industry,
				 annual_revenue, employee_count, lead_source)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, in.FirstName, in.LastName, in.Email, in.Phone, in.Company,
				in.Industry, in.AnnualRevenue, in.EmployeeCount, in.LeadSource)
			if err != nil {
				var derr *domain.Error
				if errors.As(err, &derr) && derr.Kind == domain.KindDuplicateKey {
					if strings.Contains(derr.Message, "customers.email") {
						return "", domain.Errf(domain.KindDuplicateKey,
							"Error: Customer with email %s already exists", in.Email)
					}
					return "", domain.Errf(domain.KindDuplicateKey, "Database error: %v", err)
				}
				return "", domain.Errf(domain.KindBackendFailure, "Error adding customer: %v", err)
			}
			return fmt.Sprintf("Customer successfully added with ID: %s", id), nil
		},
	}
}

type searchCustomersArgs struct {
	SearchTerm  string `mapstructure:"search_term"`
	SearchField string `mapstructure:"search_field"`
}

func searchCustomers(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "search_customers",
			Description: "Search for customers by name, email, company, or industry",
			Schema: schema.Schema{
				{Key: "search_term", Kind: schema.String, Required: true, Description: "The term to search for"},
				{Key: "search_field", Kind: schema.String, Description: "Field to search in", Default: "all",
					Allowed: []string{"all", "name", "email", "company", "industry"}},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in searchCustomersArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error searching customers: %v", err)
			}

			pattern := "%" + in.SearchTerm + "%"
			var (
				query  string
				params []any
			)
			switch in.SearchField {
			case "all":
				query = `
					SELECT * FROM customers
					WHERE first_name LIKE ? OR last_name LIKE ? OR email LIKE ?
					OR company LIKE ? OR industry LIKE ?
					ORDER BY last_name, first_name`
				params = []any{pattern, pattern, pattern, pattern, pattern}
			case "name":
				query = `
					SELECT * FROM customers
					WHERE first_name LIKE ? OR last_name LIKE ?
					ORDER BY last_name, first_name`
				params = []any{pattern, pattern}
			case "email":
				query = `SELECT * FROM customers WHERE email LIKE ? ORDER BY email`
				params = []any{pattern}
			case "company":
				query = `SELECT * FROM customers WHERE company LIKE ? ORDER BY company`
				params = []any{pattern}
			case "industry":
				query = `SELECT * FROM customers WHERE industry LIKE ? ORDER BY industry`
				params = []any{pattern}
			default:
				// unreachable through dispatch, the schema enum catches it first
				return "", domain.Errf(domain.KindValidation,
					"Invalid search field: %s. Use: all, name, email, company, or industry", in.SearchField)
			}

			rows, err := deps.Store.Query(ctx, query, params...)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error searching customers: %v", err)
			}
			if len(rows) == 0 {
				return fmt.Sprintf("No customers found matching '%s' in %s", in.SearchTerm, in.SearchField), nil
			}

			payload, err := renderJSON(rows)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error searching customers: %v", err)
			}
			return fmt.Sprintf("Found %d customers:\n\n%s", len(rows), payload), nil
		},
	}
}

type getCustomerArgs struct {
	CustomerID string `mapstructure:"customer_id"`
}

func getCustomer(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "get_customer",
			Description: "Get detailed information about a specific customer",
			Schema: schema.Schema{
				{Key: "customer_id", Kind: schema.String, Required: true, Description: "The unique customer identifier"},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in getCustomerArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error retrieving customer: %v", err)
			}

			rows, err := deps.Store.Query(ctx, `SELECT * FROM customers WHERE id = ?`, in.CustomerID)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error retrieving customer: %v", err)
			}
			if len(rows) == 0 {
				return fmt.Sprintf("No customer found with ID: %s", in.CustomerID), nil
			}

			payload, err := renderJSON(rows[0])
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error retrieving customer: %v", err)
			}
			return fmt.Sprintf("Customer Details:\n\n%s", payload), nil
		},
	}
}

type addInteractionArgs struct {
	CustomerID      string `mapstructure:"customer_id"`
	InteractionType string `mapstructure:"interaction_type"`
	Subject         string `mapstructure:"subject"`
	Notes           string `mapstructure:"notes"`
}

func addInteraction(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "add_interaction",
			Description: "Add a customer interaction record",
			Schema: schema.Schema{
				{Key: "customer_id", Kind: schema.String, Required: true, Description: "The customer's unique identifier"},
				{Key: "interaction_type", Kind: schema.String, Required: true, Description: "Type of interaction (call, email, meeting, etc.)"},
				{Key: "subject", Kind: schema.String, Description: "Brief subject of the interaction"},
				{Key: "notes", Kind: schema.String, Description: "Detailed notes about the interaction"},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in addInteractionArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error adding interaction: %v", err)
			}

			id := uuid.NewString()
			_, err := deps.Store.Exec(ctx, `
				INSERT INTO interactions (id, customer_id, interaction_type, subject, notes)
				VALUES (?, ?, ?, ?, ?)`,
				id, in.CustomerID, in.InteractionType, in.Subject, in.Notes)
			if err != nil {
				return "", &domain.Error{
					Kind:    domain.KindOf(err),
					Message: fmt.Sprintf("Error adding interaction: %v", err),
					Err:     err,
				}
			}
			return fmt.Sprintf("Interaction successfully added with ID: %s", id), nil
		},
	}
}

type addDealArgs struct {
	CustomerID        string  `mapstructure:"customer_id"`
	DealName          string  `mapstructure:"deal_name"`
	Value             float64 `mapstructure:"value"`
	Stage             string  `mapstructure:"stage"`
	Probability       float64 `mapstructure:"probability"`
	ExpectedCloseDate string  `mapstructure:"expected_close_date"`
}

func addDeal(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "add_deal",
			Description: "Add a new deal for a customer",
			Schema: schema.Schema{
				{Key: "customer_id", Kind: schema.String, Required: true, Description: "The customer's unique identifier"},
				{Key: "deal_name", Kind: schema.String, Required: true, Description: "Name/description of the deal"},
				{Key: "value", Kind: schema.Number, Required: true, Description: "Monetary value of the deal"},
				{Key: "stage", Kind: schema.String, Description: "Current stage", Default: "prospecting",
					Allowed: []string{"prospecting", "qualification", "proposal", "negotiation", "closed-won", "closed-lost"}},
				{Key: "probability", Kind: schema.Number, Description: "Probability of closing (0.0 to 1.0)", Default: 0.0},
				{Key: "expected_close_date", Kind: schema.String, Description: "Expected close date (YYYY-MM-DD format)"},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in addDealArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error adding deal: %v", err)
			}

			id := uuid.NewString()
			_, err := deps.Store.Exec(ctx, `
				INSERT INTO deals (id, customer_id, deal_name, value, stage, probability, expected_close_date)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				id, in.CustomerID, in.DealName, in.Value, in.Stage, in.Probability,
				nullIfEmpty(in.ExpectedCloseDate))
			if err != nil {
				return "", &domain.Error{
					Kind:    domain.KindOf(err),
					Message: fmt.Sprintf("Error adding deal: %v", err),
					Err:     err,
				}
			}
			return fmt.Sprintf("Deal successfully added with ID: %s", id), nil
		},
	}
}

// nullIfEmpty keeps an omitted close date out of the DATE column.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
