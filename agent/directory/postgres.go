package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type customerRow struct {
	bun.BaseModel `bun:"table:customers,alias:c"`

	ID               string        `bun:"id,pk"`
	Name             string        `bun:"name,notnull"`
	Email            string        `bun:"email"`
	Region           string        `bun:"region,notnull"`
	Tier             string        `bun:"tier,notnull"`
	Language         string        `bun:"language"`
	GDPRConsent      bool          `bun:"gdpr_consent,notnull"`
	LastContact      string        `bun:"last_contact"`
	PreferredChannel string        `bun:"preferred_channel"`
	Purchases        []purchaseRow `bun:"rel:has-many,join:id=customer_id"`
}

type purchaseRow struct {
	bun.BaseModel `bun:"table:purchases,alias:p"`

	ID         string  `bun:"id,pk"`
	CustomerID string  `bun:"customer_id,notnull"`
	Position   int     `bun:"position,notnull"` // order within the customer's history
	Product    string  `bun:"product,notnull"`
	Amount     float64 `bun:"amount"`
	Date       string  `bun:"purchased_on"`
	Status     string  `bun:"status"`
}

var _ contractx.CustomerDirectory = (*Postgres)(nil)

// Postgres reads customers from the customers/purchases tables.
type Postgres struct {
	db *bun.DB
}

func OpenPostgres(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func NewPostgres(db *bun.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, customerID string) (contractx.Customer, error) {
	var row customerRow
	err := p.db.NewSelect().
		Model(&row).
		Relation("Purchases", orderPurchases).
		Where("c.id = ?", strings.TrimSpace(customerID)).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return contractx.Customer{}, fmt.Errorf("%w: id=%s", contractx.ErrCustomerNotFound, customerID)
	}
	if err != nil {
		return contractx.Customer{}, fmt.Errorf("select customer: %w", err)
	}
	return row.toCustomer(), nil
}

func (p *Postgres) List(ctx context.Context, region contractx.Region) ([]contractx.Customer, error) {
	var rows []customerRow
	q := p.db.NewSelect().
		Model(&rows).
		Relation("Purchases", orderPurchases).
		Order("c.id ASC")
	switch contractx.Region(strings.ToUpper(strings.TrimSpace(string(region)))) {
	case "":
	case contractx.RegionEU:
		q = q.Where("UPPER(TRIM(c.region)) = ?", string(contractx.RegionEU))
	case contractx.RegionUS:
		q = q.Where("UPPER(TRIM(c.region)) <> ?", string(contractx.RegionEU))
	default:
		return []contractx.Customer{}, nil
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}

	out := make([]contractx.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toCustomer())
	}
	return out, nil
}

// EnsureSchema creates the directory tables when missing and loads customers
// that are not present yet.
func EnsureSchema(ctx context.Context, db *bun.DB, seed []contractx.Customer) error {
	for _, model := range []any{(*customerRow)(nil), (*purchaseRow)(nil)} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	if len(seed) == 0 {
		return nil
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, c := range seed {
			row := fromCustomer(c)
			if _, err := tx.NewInsert().Model(&row).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return fmt.Errorf("insert customer id=%s: %w", c.ID, err)
			}
			if len(row.Purchases) == 0 {
				continue
			}
			if _, err := tx.NewInsert().Model(&row.Purchases).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return fmt.Errorf("insert purchases customer=%s: %w", c.ID, err)
			}
		}
		return nil
	})
}

func orderPurchases(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("p.position ASC")
}

func (r customerRow) toCustomer() contractx.Customer {
	purchases := append([]purchaseRow(nil), r.Purchases...)
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Position < purchases[j].Position
	})

	c := contractx.Customer{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Region:           contractx.Region(r.Region),
		Tier:             contractx.Tier(r.Tier),
		Language:         r.Language,
		GDPRConsent:      r.GDPRConsent,
		LastContact:      r.LastContact,
		PreferredChannel: r.PreferredChannel,
		Purchases:        make([]contractx.Purchase, 0, len(purchases)),
	}
	for _, p := range purchases {
		c.Purchases = append(c.Purchases, contractx.Purchase{
			ID:      p.ID,
			Product: p.Product,
			Amount:  p.Amount,
			Date:    p.Date,
			Status:  p.Status,
		})
	}
	return c
}

func fromCustomer(c contractx.Customer) customerRow {
	row := customerRow{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Region:           string(c.Region),
		Tier:             string(c.Tier),
		Language:         c.Language,
		GDPRConsent:      c.GDPRConsent,
		LastContact:      c.LastContact,
		PreferredChannel: c.PreferredChannel,
	}
	for i, p := range c.Purchases {
		row.Purchases = append(row.Purchases, purchaseRow{
			ID:         p.ID,
			CustomerID: c.ID,
			Position:   i,
			Product:    p.Product,
			Amount:     p.Amount,
			Date:       p.Date,
			Status:     p.Status,
		})
	}
	return row
}
