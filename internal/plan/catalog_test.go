package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swajayfour/swajay_go_server/config"
)

func TestCatalog_Resolve_Defaults(t *testing.T) {
	c := NewCatalog(nil)

	cases := []struct {
		id    string
		days  int
		price int64
	}{
		{"daily", 1, 200},
		{"weekly", 7, 1000},
		{"monthly", 30, 2500},
		{"bimonthly", 60, 4000},
		{"semiannual", 180, 10000},
		{"annual", 365, 18000},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			p, err := c.Resolve(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.days, p.DurationDays)
			assert.Equal(t, tc.price, p.Price)
		})
	}
}

func TestCatalog_Resolve_Unknown(t *testing.T) {
	c := NewCatalog(nil)

	_, err := c.Resolve("lifetime")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	_, err = c.Resolve("")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestCatalog_ConfigOverride(t *testing.T) {
	c := NewCatalog(map[string]config.PlanConfig{
		"promo": {DurationDays: 3, Price: 500},
	})

	p, err := c.Resolve("promo")
	require.NoError(t, err)
	assert.Equal(t, 3, p.DurationDays)
	assert.Equal(t, int64(500), p.Price)

	// Overriding replaces the stock set entirely.
	_, err = c.Resolve("daily")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestCatalog_IDs(t *testing.T) {
	c := NewCatalog(nil)

	ids := c.IDs()
	assert.Len(t, ids, 6)
	assert.Equal(t, []string{"annual", "bimonthly", "daily", "monthly", "semiannual", "weekly"}, ids)
}

func TestCatalog_List(t *testing.T) {
	c := NewCatalog(nil)

	plans := c.List()
	require.Len(t, plans, 6)
	assert.Equal(t, "annual", plans[0].ID)
	assert.Equal(t, int64(18000), plans[0].Price)
	assert.Equal(t, "weekly", plans[5].ID)
	assert.Equal(t, 7, plans[5].DurationDays)
}
