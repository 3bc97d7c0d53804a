package usecase

import (
	"context"
	"sort"
	"time"

	"oficina_pro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	expectedPaymentDelayDays = 3
	recentOrdersLimit        = 6
)

// RevenueSummary holds the dashboard metrics of one user.
type RevenueSummary struct {
	Today         string
	Day           float64
	Week          float64
	Month         float64
	ExpectedWeek  float64
	ExpectedMonth float64
	OverdueCount  int
	OverdueValue  float64
	OverdueIDs    []string
	TotalOrders   int
	OpenOrders    int
	Recent        []entities.ServiceOrder
}

type IRevenueUseCase interface {
	Summary(ctx context.Context, userID string) (RevenueSummary, error)
}

type RevenueUseCase struct {
	ws  *Workspace
	loc *time.Location
}

var _ IRevenueUseCase = (*RevenueUseCase)(nil)

func NewRevenueUseCase(ws *Workspace, loc *time.Location) *RevenueUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &RevenueUseCase{ws: ws, loc: loc}
}

func (u *RevenueUseCase) Summary(ctx context.Context, userID string) (RevenueSummary, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return RevenueSummary{}, err
	}
	orders := make([]entities.ServiceOrder, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		if ownedBy(o.UserID, userID) {
			orders = append(orders, o)
		}
	}
	return ComputeRevenue(orders, u.ws.now(), u.loc), nil
}

// dateWindow is a half-open [From, To) range of YYYY-MM-DD local dates.
type dateWindow struct {
	From string
	To   string
}

func (w dateWindow) contains(ymd string) bool {
	return ymd >= w.From && ymd < w.To
}

func ymd(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateOnlyLayout)
}

// weekWindow starts on Monday.
func weekWindow(now time.Time, loc *time.Location) dateWindow {
	local := now.In(loc)
	offset := (int(local.Weekday()) + 6) % 7
	start := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
	return dateWindow{From: start.Format(dateOnlyLayout), To: start.AddDate(0, 0, 7).Format(dateOnlyLayout)}
}

func monthWindow(now time.Time, loc *time.Location) dateWindow {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return dateWindow{From: start.Format(dateOnlyLayout), To: start.AddDate(0, 1, 0).Format(dateOnlyLayout)}
}

// ExpectedPaymentDate is the delivery estimate when set, otherwise the local
// creation date plus three days.
func ExpectedPaymentDate(o entities.ServiceOrder, loc *time.Location) string {
	if o.DeliveryEstimate != nil && *o.DeliveryEstimate != "" {
		return *o.DeliveryEstimate
	}
	c := o.CreatedAt.In(loc)
	return time.Date(c.Year(), c.Month(), c.Day()+expectedPaymentDelayDays, 0, 0, 0, 0, loc).Format(dateOnlyLayout)
}

// ComputeRevenue derives the dashboard metrics from orders at instant now.
// Every comparison is made on local calendar dates.
func ComputeRevenue(orders []entities.ServiceOrder, now time.Time, loc *time.Location) RevenueSummary {
	today := ymd(now, loc)
	week := weekWindow(now, loc)
	month := monthWindow(now, loc)

	var day, wk, mo, expWk, expMo, overdue decimal.Decimal
	s := RevenueSummary{Today: today, TotalOrders: len(orders), OverdueIDs: []string{}}

	for _, o := range orders {
		value := decimal.NewFromFloat(o.TotalValue)
		if !o.Status.IsFinished() {
			s.OpenOrders++
		}

		if o.IsPaid() {
			if !o.Status.IsFinished() {
				continue
			}
			paid := ymd(*o.PaidAt, loc)
			if paid == today {
				day = day.Add(value)
			}
			if week.contains(paid) {
				wk = wk.Add(value)
			}
			if month.contains(paid) {
				mo = mo.Add(value)
			}
			continue
		}

		expected := ExpectedPaymentDate(o, loc)
		if week.contains(expected) {
			expWk = expWk.Add(value)
		}
		if month.contains(expected) {
			expMo = expMo.Add(value)
		}
		if expected < today {
			overdue = overdue.Add(value)
			s.OverdueCount++
			s.OverdueIDs = append(s.OverdueIDs, o.ID)
		}
	}

	s.Day = day.Round(2).InexactFloat64()
	s.Week = wk.Round(2).InexactFloat64()
	s.Month = mo.Round(2).InexactFloat64()
	s.ExpectedWeek = expWk.Round(2).InexactFloat64()
	s.ExpectedMonth = expMo.Round(2).InexactFloat64()
	s.OverdueValue = overdue.Round(2).InexactFloat64()

	recent := append([]entities.ServiceOrder(nil), orders...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	s.Recent = recent
	return s
}
