package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"storeapi/dto"
	"storeapi/pagination"
	"storeapi/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubReporter struct {
	got   dto.RevenueByPeriodParams
	items []dto.RevenuePeriodEntry
	err   error
}

func (s *stubReporter) RevenueByPeriod(_ context.Context, p dto.RevenueByPeriodParams) (pagination.PagedResult[dto.RevenuePeriodEntry], error) {
	s.got = p
	if s.err != nil {
		return pagination.PagedResult[dto.RevenuePeriodEntry]{}, s.err
	}
	return pagination.New(s.items, len(s.items), p.PageNumber, p.PageSize), nil
}

func TestPreviousMonth(t *testing.T) {
	start, end := PreviousMonth(time.Date(2025, time.March, 1, 0, 5, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 59, 999999999, time.UTC), end)

	start, _ = PreviousMonth(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)

	// still January 31st in UTC, already February 1st at UTC+7
	plus7 := time.FixedZone("UTC+7", 7*60*60)
	start, _ = PreviousMonth(time.Date(2025, time.January, 31, 20, 0, 0, 0, time.UTC), plus7)
	assert.Equal(t, time.January, start.Month())
}

func TestRunMonthlyRevenueDigest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core))
	reporter := &stubReporter{items: []dto.RevenuePeriodEntry{
		{Year: 2025, Month: "February", TotalOrders: 3, TotalRevenue: decimal.RequireFromString("120.5")},
	}}

	err := RunMonthlyRevenueDigest(context.Background(), reporter, log, time.Date(2025, time.March, 1, 0, 5, 0, 0, time.UTC), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.February, reporter.got.StartPeriod.Month())
	assert.Equal(t, 1, reporter.got.PageNumber)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "monthly revenue digest: February 2025, 3 orders, revenue 120.50", logs.All()[0].Message)
}

func TestRunMonthlyRevenueDigestEmptyAndFailing(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core))
	now := time.Date(2025, time.March, 1, 0, 5, 0, 0, time.UTC)

	require.NoError(t, RunMonthlyRevenueDigest(context.Background(), &stubReporter{}, log, now, time.UTC))
	assert.Equal(t, "monthly revenue digest: no orders in February 2025", logs.All()[0].Message)

	boom := errors.New("db down")
	err := RunMonthlyRevenueDigest(context.Background(), &stubReporter{err: boom}, log, now, time.UTC)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, &stubReporter{}, logger.NewNop(), time.UTC))
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 1)
	next := entries[0].Schedule.Next(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 5, 0, 0, time.UTC), next)
}
