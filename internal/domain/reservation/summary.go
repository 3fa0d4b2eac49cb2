package reservation

import "sort"

type PaymentSummary struct {
	Total     Money
	Paid      Money
	Remaining Money
}

func (r *Reservation) Summary() PaymentSummary {
	return PaymentSummary{
		Total:     r.total,
		Paid:      r.PaidAmount(),
		Remaining: r.RemainingAmount(),
	}
}

// MonthlyTotal aggregates reservations by the month of their start date.
type MonthlyTotal struct {
	Month   string // yyyy-MM
	Count   int
	Total   Money
	Paid    Money
	Pending Money
}

// MonthlyTotals groups by start month, newest month first.
func MonthlyTotals(rs []*Reservation) []MonthlyTotal {
	byMonth := make(map[string]*MonthlyTotal)
	for _, r := range rs {
		key := r.dates.Start().Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyTotal{Month: key}
			byMonth[key] = m
		}
		m.Count++
		m.Total = m.Total.Add(r.total)
		m.Paid = m.Paid.Add(r.PaidAmount())
	}

	out := make([]MonthlyTotal, 0, len(byMonth))
	for _, m := range byMonth {
		m.Pending = m.Total.Sub(m.Paid)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

// SortByStartDate orders reservations by start date, oldest first. Ties keep
// creation order.
func SortByStartDate(rs []*Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if !a.dates.Start().Equal(b.dates.Start()) {
			return a.dates.Start().Before(b.dates.Start())
		}
		return a.createdAt.Before(b.createdAt)
	})
}
