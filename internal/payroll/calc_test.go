package payroll_test

import (
	"testing"

	"payrollpro/internal/payroll"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_NilEmployee(t *testing.T) {
	assert.Nil(t, payroll.Calculate(nil, payroll.PeriodInput{}))
}

func TestCalculate_Breakdown(t *testing.T) {
	empl := &payroll.PayrollEmployee{
		ID:          uuid.New(),
		Name:        "Jane Doe",
		BasicSalary: 30000,
	}

	tests := []struct {
		name string
		in   payroll.PeriodInput
		want payroll.Breakdown
	}{
		{
			name: "overtime dan bonus dengan potongan statutori",
			in: payroll.PeriodInput{
				OvertimeHours: "10",
				OvertimeRate:  "150",
				Bonuses:       "2000",
			},
			want: payroll.Breakdown{
				BasicSalary:     30000,
				OvertimeHours:   10,
				OvertimeRate:    150,
				OvertimeAmount:  1500,
				Bonuses:         2000,
				GrossPay:        33500,
				NHIFDeduction:   502.5,
				NSSFDeduction:   2010,
				TotalDeductions: 2512.5,
				NetPay:          30987.5,
			},
		},
		{
			name: "input kosong jatuh ke nol dan formula statutori",
			in:   payroll.PeriodInput{},
			want: payroll.Breakdown{
				BasicSalary:     30000,
				GrossPay:        30000,
				NHIFDeduction:   450,
				NSSFDeduction:   1800,
				TotalDeductions: 2250,
				NetPay:          27750,
			},
		},
		{
			name: "input non-numerik diperlakukan sebagai nol",
			in: payroll.PeriodInput{
				OvertimeHours: "abc",
				OvertimeRate:  "150",
				Bonuses:       "xx",
			},
			want: payroll.Breakdown{
				BasicSalary:     30000,
				OvertimeRate:    150,
				GrossPay:        30000,
				NHIFDeduction:   450,
				NSSFDeduction:   1800,
				TotalDeductions: 2250,
				NetPay:          27750,
			},
		},
		{
			name: "potongan manual positif dipakai apa adanya",
			in: payroll.PeriodInput{
				NHIFDeduction:   "300",
				NSSFDeduction:   "500",
				Advances:        "1000",
				OtherDeductions: "250",
			},
			want: payroll.Breakdown{
				BasicSalary:     30000,
				GrossPay:        30000,
				NHIFDeduction:   300,
				NSSFDeduction:   500,
				Advances:        1000,
				OtherDeductions: 250,
				TotalDeductions: 2050,
				NetPay:          27950,
			},
		},
		{
			name: "potongan manual nol jatuh kembali ke formula",
			in: payroll.PeriodInput{
				NHIFDeduction: "0",
				NSSFDeduction: "0",
			},
			want: payroll.Breakdown{
				BasicSalary:     30000,
				GrossPay:        30000,
				NHIFDeduction:   450,
				NSSFDeduction:   1800,
				TotalDeductions: 2250,
				NetPay:          27750,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payroll.Calculate(empl, tt.in)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCalculate_NHIFClamps(t *testing.T) {
	low := &payroll.PayrollEmployee{ID: uuid.New(), Name: "Low", BasicSalary: 1000}
	b := payroll.Calculate(low, payroll.PeriodInput{})
	assert.Equal(t, float64(150), b.NHIFDeduction) // floor

	high := &payroll.PayrollEmployee{ID: uuid.New(), Name: "High", BasicSalary: 200000}
	b = payroll.Calculate(high, payroll.PeriodInput{})
	assert.Equal(t, float64(1700), b.NHIFDeduction) // ceiling
	assert.Equal(t, float64(2160), b.NSSFDeduction) // NSSF cap
}

func TestCalculate_NetPayCanBeNegative(t *testing.T) {
	empl := &payroll.PayrollEmployee{ID: uuid.New(), Name: "Indebted", BasicSalary: 1000}

	b := payroll.Calculate(empl, payroll.PeriodInput{Advances: "5000"})

	assert.Equal(t, float64(1000), b.GrossPay)
	assert.Less(t, b.NetPay, float64(0))
	assert.Equal(t, b.GrossPay-b.TotalDeductions, b.NetPay)
}
