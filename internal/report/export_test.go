package report_test

import (
	"strings"
	"testing"

	"payrollpro/internal/payroll"
	"payrollpro/internal/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildExportRows(t *testing.T) {
	records := []payroll.PayrollRecord{
		{
			ID:              uuid.New(),
			EmployeeID:      uuid.New(),
			EmployeeName:    "Jane Doe",
			Month:           "2024-01",
			BasicSalary:     30000,
			OvertimeHours:   10,
			GrossPay:        33500,
			TotalDeductions: 2512.5,
			NetPay:          30987.5,
		},
	}

	rows := report.BuildExportRows(records)

	assert.Len(t, rows, 1)
	assert.Equal(t, report.ExportRow{
		Employee:        "Jane Doe",
		Month:           "2024-01",
		BasicSalary:     30000,
		OvertimeHours:   10,
		GrossPay:        33500,
		TotalDeductions: 2512.5,
		NetPay:          30987.5,
	}, rows[0])
}

func TestRenderCSV(t *testing.T) {
	rows := []report.ExportRow{
		{Employee: "Jane Doe", Month: "2024-01", BasicSalary: 30000, OvertimeHours: 10, GrossPay: 33500, TotalDeductions: 2512.5, NetPay: 30987.5},
		{Employee: "John Smith", Month: "2024-01", BasicSalary: 25000, GrossPay: 25000, TotalDeductions: 1875, NetPay: 23125},
	}

	csv := string(report.RenderCSV(rows))
	lines := strings.Split(csv, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "Employee,Month,Basic Salary,Overtime Hours,Gross Pay,Total Deductions,Net Pay", lines[0])
	assert.Equal(t, "Jane Doe,2024-01,30000,10,33500,2512.5,30987.5", lines[1])
	assert.Equal(t, "John Smith,2024-01,25000,0,25000,1875,23125", lines[2])
}

func TestRenderCSV_NoEscaping(t *testing.T) {
	// Nilai dimasukkan apa adanya, koma di dalam nama tidak di-quote
	rows := []report.ExportRow{
		{Employee: "Doe, Jane", Month: "2024-01"},
	}

	csv := string(report.RenderCSV(rows))
	lines := strings.Split(csv, "\n")

	assert.Equal(t, "Doe, Jane,2024-01,0,0,0,0,0", lines[1])
}

func TestRenderCSV_Empty(t *testing.T) {
	csv := string(report.RenderCSV(nil))
	assert.Equal(t, "Employee,Month,Basic Salary,Overtime Hours,Gross Pay,Total Deductions,Net Pay", csv)
}
