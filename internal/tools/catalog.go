// Package tools implements the CRM and filesystem tool catalog.
//
// Each tool is a self-contained registration: its wire definition plus
// the handler closure that serves it. Handlers receive validated
// arguments and compose the capability providers in Deps into the text
// payloads clients see.
package tools

import (
	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
	"github.com/aretw0/switchboard/pkg/registry"
)

// Deps carries the capability providers handlers compose.
type Deps struct {
	Store ports.Store
	Files ports.FileSystem
}

// Catalog returns the full tool table in its canonical order.
func Catalog(deps Deps) []registry.Registration {
	return []registry.Registration{
		addCustomer(deps),
		searchCustomers(deps),
		getCustomer(deps),
		addInteraction(deps),
		addDeal(deps),
		populateSampleData(deps),
		analyzeCustomersByIndustry(deps),
		analyzeDealPipeline(deps),
		getTopCustomersByRevenue(deps),
		getRecentInteractions(deps),
		readFile(deps),
		listFiles(deps),
	}
}

// Register wires the catalog into reg in canonical order.
func Register(reg *registry.Registry, deps Deps) error {
	for _, r := range Catalog(deps) {
		if err := reg.Register(r.Definition, r.Handler); err != nil {
			return err
		}
	}
	return nil
}

// Definitions lists the catalog without binding any providers, for
// listings that never execute a handler.
func Definitions() []domain.ToolDefinition {
	regs := Catalog(Deps{})
	out := make([]domain.ToolDefinition, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.Definition)
	}
	return out
}
