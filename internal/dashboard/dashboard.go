package dashboard

import (
	"context"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gymwear/storeadmin/internal/domain"
)

const recentCount = 5

// Lister is the read side of a resource client.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Stats is one fully-joined dashboard snapshot.
type Stats struct {
	Categories   int
	Products     int
	Users        int
	Orders       int
	TotalRevenue float64
	AverageOrder float64

	RecentProducts []domain.Product
	RecentOrders   []domain.Order
}

// Aggregator fans out one list read per resource and joins all four before
// computing anything.
type Aggregator struct {
	categories Lister[domain.Category]
	products   Lister[domain.Product]
	users      Lister[domain.User]
	orders     Lister[domain.Order]
}

func NewAggregator(
	categories Lister[domain.Category],
	products Lister[domain.Product],
	users Lister[domain.User],
	orders Lister[domain.Order],
) *Aggregator {
	return &Aggregator{categories: categories, products: products, users: users, orders: orders}
}

// Load issues the four reads concurrently and waits for all of them. If any
// one fails the whole load fails; no partial stats are ever produced.
func (a *Aggregator) Load(ctx context.Context) (*Stats, error) {
	var (
		categories []domain.Category
		products   []domain.Product
		users      []domain.User
		orders     []domain.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = a.categories.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = a.products.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = a.users.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = a.orders.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("dashboard load failed", zap.Error(err))
		return nil, err
	}

	totals := make([]float64, len(orders))
	for i, o := range orders {
		totals[i] = o.GrandTotal
	}
	revenue, average := 0.0, 0.0
	if len(totals) > 0 {
		revenue, _ = stats.Sum(totals)
		average, _ = stats.Mean(totals)
	}

	return &Stats{
		Categories:     len(categories),
		Products:       len(products),
		Users:          len(users),
		Orders:         len(orders),
		TotalRevenue:   revenue,
		AverageOrder:   average,
		RecentProducts: lastReversed(products, recentCount),
		RecentOrders:   lastReversed(orders, recentCount),
	}, nil
}

// lastReversed returns the last n entries in reverse arrival order. The
// backend's return order is what it is; no date sorting happens here.
func lastReversed[T any](rows []T, n int) []T {
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]T, 0, n)
	for i := len(rows) - 1; i >= len(rows)-n; i-- {
		out = append(out, rows[i])
	}
	return out
}
