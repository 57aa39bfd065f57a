package jobs

import (
	"context"
	"time"

	"storeapi/dto"
	"storeapi/pagination"
	"storeapi/services/logger"

	"github.com/robfig/cron/v3"
)

// MonthlyDigestSchedule fires at 00:05 on the first day of every month.
const MonthlyDigestSchedule = "5 0 1 * *"

// RevenueReporter is implemented by services.ReportService.
type RevenueReporter interface {
	RevenueByPeriod(ctx context.Context, params dto.RevenueByPeriodParams) (pagination.PagedResult[dto.RevenuePeriodEntry], error)
}

// PreviousMonth returns the first and last instant of the calendar month
// before now, in loc.
func PreviousMonth(now time.Time, loc *time.Location) (time.Time, time.Time) {
	now = now.In(loc)
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return thisMonth.AddDate(0, -1, 0), thisMonth.Add(-time.Nanosecond)
}

// RunMonthlyRevenueDigest logs the revenue of the month before now.
func RunMonthlyRevenueDigest(ctx context.Context, reporter RevenueReporter, log logger.Logger, now time.Time, loc *time.Location) error {
	start, end := PreviousMonth(now, loc)
	page, err := reporter.RevenueByPeriod(ctx, dto.RevenueByPeriodParams{
		StartPeriod: start,
		EndPeriod:   end,
		PageParams:  dto.PageParams{PageNumber: 1, PageSize: 1},
	})
	if err != nil {
		log.Error("monthly revenue digest for %s %d failed: %v", start.Month(), start.Year(), err)
		return err
	}

	if len(page.Items) == 0 {
		log.Info("monthly revenue digest: no orders in %s %d", start.Month(), start.Year())
		return nil
	}
	entry := page.Items[0]
	log.Info("monthly revenue digest: %s %d, %d orders, revenue %s",
		entry.Month, entry.Year, entry.TotalOrders, entry.TotalRevenue.StringFixed(2))
	return nil
}

// InitCronJobs schedules the jobs on c and starts it.
func InitCronJobs(c *cron.Cron, reporter RevenueReporter, log logger.Logger, loc *time.Location) error {
	_, err := c.AddFunc("CRON_TZ="+loc.String()+" "+MonthlyDigestSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_ = RunMonthlyRevenueDigest(ctx, reporter, log, time.Now(), loc)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
