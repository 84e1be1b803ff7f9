package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

type Config struct {
	// DSN selects the Postgres-backed directory. Empty keeps the in-memory seed.
	DSN     string        `envconfig:"DSN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
	// Seed creates the tables and loads the demo customers on startup.
	Seed bool `envconfig:"SEED" split_words:"true" default:"false"`
}

var _ contractx.CustomerDirectory = (*Memory)(nil)

// Memory is an immutable in-process directory. Records are copied on the way
// in and out so callers never share purchase slices.
type Memory struct {
	order []string
	byID  map[string]contractx.Customer
}

func NewMemory(customers []contractx.Customer) *Memory {
	m := &Memory{
		order: make([]string, 0, len(customers)),
		byID:  make(map[string]contractx.Customer, len(customers)),
	}
	for _, c := range customers {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			continue
		}
		if _, dup := m.byID[id]; !dup {
			m.order = append(m.order, id)
		}
		m.byID[id] = cloneCustomer(c)
	}
	return m
}

func (m *Memory) Get(ctx context.Context, customerID string) (contractx.Customer, error) {
	if err := ctx.Err(); err != nil {
		return contractx.Customer{}, err
	}
	c, ok := m.byID[strings.TrimSpace(customerID)]
	if !ok {
		return contractx.Customer{}, fmt.Errorf("%w: id=%s", contractx.ErrCustomerNotFound, customerID)
	}
	return cloneCustomer(c), nil
}

// List returns customers in seed order. An empty region lists everyone.
// Stored regions are normalized the same way runs route them.
func (m *Memory) List(ctx context.Context, region contractx.Region) ([]contractx.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := contractx.Region(strings.ToUpper(strings.TrimSpace(string(region))))
	out := make([]contractx.Customer, 0, len(m.order))
	for _, id := range m.order {
		c := m.byID[id]
		if want != "" && contractx.NormalizeRegion(c.Region) != want {
			continue
		}
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

func cloneCustomer(c contractx.Customer) contractx.Customer {
	c.Purchases = append([]contractx.Purchase(nil), c.Purchases...)
	return c
}

// Open picks the directory backend from cfg. The returned close func is a
// no-op for the in-memory backend.
func Open(ctx context.Context, cfg Config) (contractx.CustomerDirectory, func() error, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return NewMemory(SeedCustomers()), func() error { return nil }, nil
	}
	db := OpenPostgres(cfg.DSN)
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping customer directory: %w", err)
	}
	if cfg.Seed {
		if err := EnsureSchema(ctx, db, SeedCustomers()); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("seed customer directory: %w", err)
		}
	}
	return NewPostgres(db), db.Close, nil
}
