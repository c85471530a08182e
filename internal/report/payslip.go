package report

import (
	"fmt"
	"strings"
	"time"

	"payrollpro/internal/employee"
	"payrollpro/internal/payroll"
)

// RenderPayslipHTML membuat dokumen payslip statis untuk print/export.
// Pure function: deterministik terhadap kedua inputnya; layer presentasi yang
// bertugas menampilkan dan memicu print.
func RenderPayslipHTML(empl employee.Employee, record payroll.PayrollRecord) string {
	periodLabel := record.Month
	if t, err := time.Parse("2006-01", record.Month); err == nil {
		periodLabel = t.Format("January 2006")
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(fmt.Sprintf("  <title>Payslip - %s</title>\n", empl.Name))
	b.WriteString("  <style>\n")
	b.WriteString("    body { font-family: Arial, sans-serif; margin: 20px; }\n")
	b.WriteString("    .header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 10px; }\n")
	b.WriteString("    .section { margin: 20px 0; }\n")
	b.WriteString("    .row { display: flex; justify-content: space-between; margin: 5px 0; }\n")
	b.WriteString("    .total { font-weight: bold; font-size: 1.2em; border-top: 1px solid #333; padding-top: 10px; }\n")
	b.WriteString("  </style>\n</head>\n<body>\n")

	b.WriteString("  <div class=\"header\">\n")
	b.WriteString("    <h1>PayrollPro Management System</h1>\n")
	b.WriteString(fmt.Sprintf("    <h2>Payslip for %s</h2>\n", periodLabel))
	b.WriteString("  </div>\n")

	b.WriteString("  <div class=\"section\">\n    <h3>Employee Details</h3>\n")
	writeRow(&b, "Name:", empl.Name)
	writeRow(&b, "ID Number:", empl.IDNumber)
	writeRow(&b, "Position:", empl.Position)
	writeRow(&b, "Phone:", empl.PhoneNumber)
	b.WriteString("  </div>\n")

	b.WriteString("  <div class=\"section\">\n    <h3>Earnings</h3>\n")
	writeRow(&b, "Basic Salary:", "KSh "+formatMoney(record.BasicSalary))
	writeRow(&b,
		fmt.Sprintf("Overtime (%s hrs @ KSh %s/hr):", formatNumber(record.OvertimeHours), formatNumber(record.OvertimeRate)),
		"KSh "+formatMoney(record.OvertimeHours*record.OvertimeRate),
	)
	writeRow(&b, "Bonuses:", "KSh "+formatMoney(record.Bonuses))
	writeTotalRow(&b, "Gross Pay:", "KSh "+formatMoney(record.GrossPay))
	b.WriteString("  </div>\n")

	b.WriteString("  <div class=\"section\">\n    <h3>Deductions</h3>\n")
	writeRow(&b, "NHIF:", "KSh "+formatMoney(record.NHIFDeduction))
	writeRow(&b, "NSSF:", "KSh "+formatMoney(record.NSSFDeduction))
	writeRow(&b, "Advances:", "KSh "+formatMoney(record.Advances))
	writeRow(&b, "Other Deductions:", "KSh "+formatMoney(record.OtherDeductions))
	writeTotalRow(&b, "Total Deductions:", "KSh "+formatMoney(record.TotalDeductions))
	b.WriteString("  </div>\n")

	b.WriteString("  <div class=\"section\">\n")
	b.WriteString("    <div class=\"row total\" style=\"color: green; font-size: 1.5em;\">\n")
	b.WriteString(fmt.Sprintf("      <span>Net Pay:</span><span>KSh %s</span>\n", formatMoney(record.NetPay)))
	b.WriteString("    </div>\n  </div>\n")

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("    <div class=\"row\"><span>%s</span><span>%s</span></div>\n", label, value))
}

func writeTotalRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("    <div class=\"row total\"><span>%s</span><span>%s</span></div>\n", label, value))
}

// formatMoney meniru toLocaleString: pemisah ribuan pada bagian integer,
// pecahan ditulis seperlunya.
func formatMoney(v float64) string {
	s := formatNumber(v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
