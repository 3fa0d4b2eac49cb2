package export

import (
	"io"
	"time"

	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	MonthlySheet      = "Monthly"
	ReservationsSheet = "Reservations"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	monthlyHeader      = []any{"Month", "Reservations", "Total", "Paid", "Pending"}
	reservationsHeader = []any{
		"Property", "Client", "Phone", "Start", "End", "Nights",
		"Total", "Paid", "Remaining", "Created by", "Payment notes",
	}
)

// WriteReport renders monthly totals and the reservation list as a workbook.
func WriteReport(w io.Writer, monthly []queries.MonthlyTotalView, reservations []queries.ReservationView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MonthlySheet); err != nil {
		return errs.Wrap(err, "rename default sheet")
	}
	if _, err := f.NewSheet(ReservationsSheet); err != nil {
		return errs.Wrap(err, "create reservations sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E5DEFF"}},
	})
	if err != nil {
		return errs.Wrap(err, "create header style")
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return errs.Wrap(err, "create money style")
	}

	if err = writeMonthly(f, monthly, headerStyle, moneyStyle); err != nil {
		return err
	}
	if err = writeReservations(f, reservations, headerStyle, moneyStyle); err != nil {
		return err
	}

	if err = f.Write(w); err != nil {
		return errs.Wrap(err, "write workbook")
	}
	return nil
}

func writeMonthly(f *excelize.File, rows []queries.MonthlyTotalView, headerStyle, moneyStyle int) error {
	if err := writeHeader(f, MonthlySheet, monthlyHeader, headerStyle); err != nil {
		return err
	}
	for i, m := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(MonthlySheet, cell, &[]any{m.Month, m.Count, m.Total, m.Paid, m.Pending}); err != nil {
			return errs.Wrap(err, "write monthly row")
		}
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(MonthlySheet, "C2", lastCell("E", len(rows)+1), moneyStyle); err != nil {
			return errs.Wrap(err, "style monthly amounts")
		}
	}
	return f.SetColWidth(MonthlySheet, "A", "E", 14)
}

func writeReservations(f *excelize.File, rows []queries.ReservationView, headerStyle, moneyStyle int) error {
	if err := writeHeader(f, ReservationsSheet, reservationsHeader, headerStyle); err != nil {
		return err
	}
	for i, r := range rows {
		notes := ""
		if r.PaymentNotes != nil {
			notes = *r.PaymentNotes
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			r.Property.Name,
			r.ClientName,
			r.ClientPhone,
			r.StartDate.Format(time.DateOnly),
			r.EndDate.Format(time.DateOnly),
			r.Nights,
			r.TotalAmount,
			r.PaidAmount,
			r.RemainingAmount,
			r.CreatedBy,
			notes,
		}
		if err := f.SetSheetRow(ReservationsSheet, cell, &values); err != nil {
			return errs.Wrap(err, "write reservation row")
		}
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(ReservationsSheet, "G2", lastCell("I", len(rows)+1), moneyStyle); err != nil {
			return errs.Wrap(err, "style reservation amounts")
		}
	}
	return f.SetColWidth(ReservationsSheet, "A", "K", 16)
}

func writeHeader(f *excelize.File, sheet string, header []any, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errs.Wrap(err, "write header")
	}
	end, _ := excelize.CoordinatesToCellName(len(header), 1)
	return f.SetCellStyle(sheet, "A1", end, style)
}

func lastCell(col string, row int) string {
	cell, _ := excelize.JoinCellName(col, row)
	return cell
}
