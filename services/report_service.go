package services

import (
	"context"
	"sort"
	"time"

	"storeapi/dto"
	"storeapi/pagination"
	"storeapi/services/logger"
	"storeapi/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService computes the revenue and best-customer reports. Orders
// are fetched once, then grouped, ranked and paged in memory.
type ReportService struct {
	orders   ReportOrderSource
	logger   logger.Logger
	location *time.Location
}

type ReportServiceOptions struct {
	Orders ReportOrderSource
	Logger logger.Logger
	// Location decides which calendar month an order falls into. Defaults to UTC.
	Location *time.Location
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &ReportService{
		orders:   opts.Orders,
		logger:   opts.Logger,
		location: opts.Location,
	}
}

type periodKey struct {
	year  int
	month time.Month
}

type periodTotals struct {
	key     periodKey
	orders  int
	revenue decimal.Decimal
}

// RevenueByPeriod groups the orders created in [StartPeriod, EndPeriod] by
// calendar month, oldest first. TotalCount is the number of months with orders.
func (s *ReportService) RevenueByPeriod(ctx context.Context, params dto.RevenueByPeriodParams) (pagination.PagedResult[dto.RevenuePeriodEntry], error) {
	if err := validator.ValidatePeriod(params.StartPeriod, params.EndPeriod); err != nil {
		return pagination.PagedResult[dto.RevenuePeriodEntry]{}, err
	}

	orders, err := s.orders.FindByPeriod(ctx, params.StartPeriod, params.EndPeriod)
	if err != nil {
		return pagination.PagedResult[dto.RevenuePeriodEntry]{}, err
	}

	groups := make(map[periodKey]*periodTotals)
	for _, order := range orders {
		created := order.CreatedAt.In(s.location)
		key := periodKey{year: created.Year(), month: created.Month()}
		g, ok := groups[key]
		if !ok {
			g = &periodTotals{key: key, revenue: decimal.Zero}
			groups[key] = g
		}
		g.orders++
		g.revenue = g.revenue.Add(order.Total())
	}

	periods := make([]*periodTotals, 0, len(groups))
	for _, g := range groups {
		periods = append(periods, g)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].key.year != periods[j].key.year {
			return periods[i].key.year < periods[j].key.year
		}
		return periods[i].key.month < periods[j].key.month
	})

	entries := make([]dto.RevenuePeriodEntry, 0, len(periods))
	for _, g := range periods {
		entries = append(entries, dto.RevenuePeriodEntry{
			Year:         g.key.year,
			Month:        g.key.month.String(),
			TotalOrders:  g.orders,
			TotalRevenue: g.revenue,
		})
	}
	s.logger.Debug("revenue report: %d orders in %d periods", len(orders), len(entries))

	return pagination.New(
		pagination.Slice(entries, params.PageNumber, params.PageSize),
		len(entries), params.PageNumber, params.PageSize,
	), nil
}

type customerTotals struct {
	id     uuid.UUID
	name   string
	email  string
	orders int
	spent  decimal.Decimal
}

// BestCustomers ranks customers by total spend, keeps the first Top of them
// and pages within that list. TotalCount is min(Top, customers with orders).
func (s *ReportService) BestCustomers(ctx context.Context, params dto.BestCustomersParams) (pagination.PagedResult[dto.CustomerSpendEntry], error) {
	orders, err := s.orders.FindAllWithCustomerAndLines(ctx)
	if err != nil {
		return pagination.PagedResult[dto.CustomerSpendEntry]{}, err
	}

	groups := make(map[uuid.UUID]*customerTotals)
	for _, order := range orders {
		g, ok := groups[order.CustomerID]
		if !ok {
			g = &customerTotals{
				id:    order.CustomerID,
				name:  order.Customer.Name,
				email: order.Customer.Email,
				spent: decimal.Zero,
			}
			groups[order.CustomerID] = g
		}
		g.orders++
		g.spent = g.spent.Add(order.Total())
	}

	ranked := make([]*customerTotals, 0, len(groups))
	for _, g := range groups {
		ranked = append(ranked, g)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].spent.Cmp(ranked[j].spent); c != 0 {
			return c > 0
		}
		return ranked[i].id.String() < ranked[j].id.String()
	})

	// truncate before counting and paging
	top := max(params.Top, 0)
	if top < len(ranked) {
		ranked = ranked[:top]
	}

	entries := make([]dto.CustomerSpendEntry, 0, len(ranked))
	for _, g := range ranked {
		entries = append(entries, dto.CustomerSpendEntry{
			CustomerName:  g.name,
			CustomerEmail: g.email,
			TotalOrders:   g.orders,
			SpentAmount:   g.spent,
		})
	}
	s.logger.Debug("best customers: %d of %d customers kept", len(entries), len(groups))

	return pagination.New(
		pagination.Slice(entries, params.PageNumber, params.PageSize),
		len(entries), params.PageNumber, params.PageSize,
	), nil
}
