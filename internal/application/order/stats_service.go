package order

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/infrastructure/remote"
)

const (
	topItemsLimit = 5
	statsDays     = 7
)

// StatsService aggregates the admin dashboard numbers from local order data
// plus catalog lookups for display names.
type StatsService struct {
	orderRepo     order.OrderRepository
	catalogClient *remote.CatalogClient
	logger        *zap.Logger
}

// NewStatsService creates a new statistics service
func NewStatsService(orderRepo order.OrderRepository, catalogClient *remote.CatalogClient, logger *zap.Logger) *StatsService {
	return &StatsService{
		orderRepo:     orderRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Overview computes the dashboard summary. Every order counts toward
// revenue and the average, cancelled ones included. Top items whose catalog
// entry cannot be resolved are skipped rather than shown without a name.
func (s *StatsService) Overview(ctx context.Context) (*StatsOverview, error) {
	orders, err := s.orderRepo.FindAll(ctx, order.OrderFilter{RestaurantID: catalog.DefaultRestaurantID})
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromInt(o.TotalPrice))
	}

	average := decimal.Zero
	if len(orders) > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Floor()
	}

	active, err := s.orderRepo.CountByStatuses(ctx, catalog.DefaultRestaurantID, order.ActiveStatuses())
	if err != nil {
		return nil, err
	}

	topItems, err := s.topItems(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsOverview{
		Orders:       int64(len(orders)),
		Revenue:      revenue.IntPart(),
		AverageOrder: average.IntPart(),
		ActiveOrders: active,
		TopItems:     topItems,
	}, nil
}

// topItems ranks menu items by how many orders contain them and resolves
// display names from the catalog. An entry whose name cannot be resolved is
// dropped from the ranking; the others still come through.
func (s *StatsService) topItems(ctx context.Context) ([]TopItem, error) {
	items, err := s.orderRepo.FindItemsByRestaurant(ctx, catalog.DefaultRestaurantID)
	if err != nil {
		return nil, err
	}

	type tally struct {
		orders map[uint]struct{}
		sold   int
	}
	tallies := make(map[uint]*tally)
	for _, item := range items {
		t, ok := tallies[item.MenuItemID]
		if !ok {
			t = &tally{orders: make(map[uint]struct{})}
			tallies[item.MenuItemID] = t
		}
		t.orders[item.OrderID] = struct{}{}
		t.sold += item.Quantity
	}

	ids := make([]uint, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := tallies[ids[i]], tallies[ids[j]]
		if len(a.orders) != len(b.orders) {
			return len(a.orders) > len(b.orders)
		}
		if a.sold != b.sold {
			return a.sold > b.sold
		}
		return ids[i] < ids[j]
	})

	top := make([]TopItem, 0, topItemsLimit)
	for _, id := range ids {
		if len(top) == topItemsLimit {
			break
		}
		ref, err := s.catalogClient.GetMenuItem(ctx, id)
		if err != nil {
			s.logger.Warn("skipping unresolvable top item",
				zap.Uint("menu_item_id", id),
				zap.Error(err))
			continue
		}
		t := tallies[id]
		top = append(top, TopItem{
			ID:     id,
			Name:   ref.Name,
			Orders: len(t.orders),
			Sold:   t.sold,
		})
	}
	return top, nil
}

// OrdersByDay returns daily order counts for the last week, oldest day
// first, labeled dd/mm.
func (s *StatsService) OrdersByDay(ctx context.Context) ([]DayCount, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	series := make([]DayCount, 0, statsDays)
	for i := statsDays - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		count, err := s.orderRepo.CountByDay(ctx, catalog.DefaultRestaurantID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		series = append(series, DayCount{
			Label: dayStart.Format("02/01"),
			Count: count,
		})
	}
	return series, nil
}
