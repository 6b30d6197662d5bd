// Package plan holds the purchase plan catalog: a fixed mapping from plan id
// to validity duration and price.
package plan

import (
	"errors"
	"sort"

	"github.com/swajayfour/swajay_go_server/config"
)

var ErrInvalidPlan = errors.New("invalid plan")

type Plan struct {
	ID           string `json:"id"`
	DurationDays int    `json:"duration_days"`
	Price        int64  `json:"price"`
}

// Defaults returns the stock plan set. Prices in TZS.
func Defaults() map[string]config.PlanConfig {
	return map[string]config.PlanConfig{
		"daily":      {DurationDays: 1, Price: 200},
		"weekly":     {DurationDays: 7, Price: 1000},
		"monthly":    {DurationDays: 30, Price: 2500},
		"bimonthly":  {DurationDays: 60, Price: 4000},
		"semiannual": {DurationDays: 180, Price: 10000},
		"annual":     {DurationDays: 365, Price: 18000},
	}
}

type Catalog struct {
	plans map[string]Plan
}

// NewCatalog builds the catalog from config, falling back to the stock plans
// when the config section is empty.
func NewCatalog(cfg map[string]config.PlanConfig) *Catalog {
	if len(cfg) == 0 {
		cfg = Defaults()
	}

	plans := make(map[string]Plan, len(cfg))
	for id, p := range cfg {
		plans[id] = Plan{
			ID:           id,
			DurationDays: p.DurationDays,
			Price:        p.Price,
		}
	}
	return &Catalog{plans: plans}
}

// Resolve looks up a plan by id.
func (c *Catalog) Resolve(id string) (Plan, error) {
	p, ok := c.plans[id]
	if !ok {
		return Plan{}, ErrInvalidPlan
	}
	return p, nil
}

// IDs returns all plan ids, sorted for stable listings.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.plans))
	for id := range c.plans {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns the catalog in id order. The payment page renders this.
func (c *Catalog) List() []Plan {
	ids := c.IDs()
	plans := make([]Plan, 0, len(ids))
	for _, id := range ids {
		plans = append(plans, c.plans[id])
	}
	return plans
}
