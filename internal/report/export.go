package report

import (
	"strconv"
	"strings"

	"payrollpro/internal/payroll"
)

// Urutan kolom export tetap; konsumen downstream bergantung pada posisi.
var exportHeader = []string{
	"Employee",
	"Month",
	"Basic Salary",
	"Overtime Hours",
	"Gross Pay",
	"Total Deductions",
	"Net Pay",
}

type ExportRow struct {
	Employee        string
	Month           string
	BasicSalary     float64
	OvertimeHours   float64
	GrossPay        float64
	TotalDeductions float64
	NetPay          float64
}

// BuildExportRows memproyeksikan record ledger ke baris export datar.
// Murni transformasi bentuk, tanpa logika bisnis.
func BuildExportRows(records []payroll.PayrollRecord) []ExportRow {
	rows := make([]ExportRow, len(records))
	for i, r := range records {
		rows[i] = ExportRow{
			Employee:        r.EmployeeName,
			Month:           r.Month,
			BasicSalary:     r.BasicSalary,
			OvertimeHours:   r.OvertimeHours,
			GrossPay:        r.GrossPay,
			TotalDeductions: r.TotalDeductions,
			NetPay:          r.NetPay,
		}
	}
	return rows
}

// RenderCSV menghasilkan teks CSV: satu baris header lalu satu baris per
// record, digabung dengan koma. Field TIDAK di-escape; koma atau kutip di
// dalam nilai akan merusak kolom. Limitasi ini disengaja supaya output
// byte-per-byte stabil untuk konsumen yang sudah ada.
func RenderCSV(rows []ExportRow) []byte {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(exportHeader, ","))

	for _, row := range rows {
		fields := []string{
			row.Employee,
			row.Month,
			formatNumber(row.BasicSalary),
			formatNumber(row.OvertimeHours),
			formatNumber(row.GrossPay),
			formatNumber(row.TotalDeductions),
			formatNumber(row.NetPay),
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
