package tools

import (
	"context"
	"fmt"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/registry"
	"github.com/aretw0/switchboard/pkg/schema"
)

func analyzeCustomersByIndustry(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "analyze_customers_by_industry",
			Description: "Analyze customer distribution by industry",
			Schema:      schema.Schema{},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			rows, err := deps.Store.Query(ctx, `
				SELECT
					industry,
					COUNT(*) as customer_count,
					AVG(annual_revenue) as avg_revenue,
					SUM(annual_revenue) as total_revenue,
					AVG(employee_count) as avg_employees
				FROM customers
				WHERE industry != ''
				GROUP BY industry
				ORDER BY customer_count DESC`)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error analyzing industries: %v", err)
			}
			if len(rows) == 0 {
				return "No industry data available", nil
			}

			payload, err := renderJSON(rows)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error analyzing industries: %v", err)
			}
			return fmt.Sprintf("Customer Analysis by Industry:\n\n%s", payload), nil
		},
	}
}

func analyzeDealPipeline(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "analyze_deal_pipeline",
			Description: "Analyze the sales deal pipeline",
			Schema:      schema.Schema{},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			// Stages order by pipeline position, never alphabetically.
			rows, err := deps.Store.Query(ctx, `
				SELECT
					stage,
					COUNT(*) as deal_count,
					SUM(value) as total_value,
					AVG(value) as avg_deal_size,
					AVG(probability) as avg_probability,
					SUM(value * probability) as weighted_value
				FROM deals
				GROUP BY stage
				ORDER BY
					CASE stage
						WHEN 'prospecting' THEN 1
						WHEN 'qualification' THEN 2
						WHEN 'proposal' THEN 3
						WHEN 'negotiation' THEN 4
						WHEN 'closed-won' THEN 5
						WHEN 'closed-lost' THEN 6
						ELSE 7
					END`)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error analyzing pipeline: %v", err)
			}
			if len(rows) == 0 {
				return "No deals in pipeline", nil
			}

			payload, err := renderJSON(rows)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error analyzing pipeline: %v", err)
			}
			return fmt.Sprintf("Deal Pipeline Analysis:\n\n%s", payload), nil
		},
	}
}

func getTopCustomersByRevenue(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "get_top_customers_by_revenue",
			Description: "Get top customers by annual revenue",
			Schema:      schema.Schema{},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			rows, err := deps.Store.Query(ctx, `
				SELECT
					first_name,
					last_name,
					company,
					industry,
					annual_revenue,
					email
				FROM customers
				WHERE annual_revenue > 0
				ORDER BY annual_revenue DESC
				LIMIT 10`)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error retrieving top customers: %v", err)
			}
			if len(rows) == 0 {
				return "No customers with revenue data found", nil
			}

			payload, err := renderJSON(rows)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error retrieving top customers: %v", err)
			}
			return fmt.Sprintf("Top Customers by Revenue:\n\n%s", payload), nil
		},
	}
}

type recentInteractionsArgs struct {
	Days int `mapstructure:"days"`
}

func getRecentInteractions(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "get_recent_interactions",
			Description: "Get recent customer interactions",
			Schema: schema.Schema{
				{Key: "days", Kind: schema.Integer, Description: "Number of days back to search (default: 7)", Default: 7},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in recentInteractionsArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error retrieving recent interactions: %v", err)
			}

			rows, err := deps.Store.Query(ctx, `
				SELECT
					i.*,
					c.first_name,
					c.last_name,
					c.company
				FROM interactions i
				JOIN customers c ON i.customer_id = c.id
				WHERE i.interaction_date >= datetime('now', '-' || ? || ' days')
				ORDER BY i.interaction_date DESC`, in.Days)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error retrieving recent interactions: %v", err)
			}
			if len(rows) == 0 {
				return fmt.Sprintf("No interactions found in the last %d days", in.Days), nil
			}

			payload, err := renderJSON(rows)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error retrieving recent interactions: %v", err)
			}
			return fmt.Sprintf("Recent Interactions (Last %d days):\n\n%s", in.Days, payload), nil
		},
	}
}
