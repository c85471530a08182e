package payroll

// ProcessPayrollRequest membawa input form apa adanya; angka dikirim sebagai
// string dan baru diparse oleh kalkulator (kosong/tidak valid -> 0).
type ProcessPayrollRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,uuid"`
	Month           string `json:"month" binding:"required"`
	OvertimeHours   string `json:"overtime_hours"`
	OvertimeRate    string `json:"overtime_rate"`
	Bonuses         string `json:"bonuses"`
	NHIFDeduction   string `json:"nhif_deduction"`
	NSSFDeduction   string `json:"nssf_deduction"`
	Advances        string `json:"advances"`
	OtherDeductions string `json:"other_deductions"`
}

func (r ProcessPayrollRequest) periodInput() PeriodInput {
	return PeriodInput{
		OvertimeHours:   r.OvertimeHours,
		OvertimeRate:    r.OvertimeRate,
		Bonuses:         r.Bonuses,
		NHIFDeduction:   r.NHIFDeduction,
		NSSFDeduction:   r.NSSFDeduction,
		Advances:        r.Advances,
		OtherDeductions: r.OtherDeductions,
	}
}

type BreakdownResponse struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Month           string  `json:"month"`
	BasicSalary     float64 `json:"basic_salary"`
	OvertimeHours   float64 `json:"overtime_hours"`
	OvertimeRate    float64 `json:"overtime_rate"`
	OvertimeAmount  float64 `json:"overtime_amount"`
	Bonuses         float64 `json:"bonuses"`
	GrossPay        float64 `json:"gross_pay"`
	NHIFDeduction   float64 `json:"nhif_deduction"`
	NSSFDeduction   float64 `json:"nssf_deduction"`
	Advances        float64 `json:"advances"`
	OtherDeductions float64 `json:"other_deductions"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
}

type PayrollRecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Month           string  `json:"month"`
	BasicSalary     float64 `json:"basic_salary"`
	OvertimeHours   float64 `json:"overtime_hours"`
	OvertimeRate    float64 `json:"overtime_rate"`
	Bonuses         float64 `json:"bonuses"`
	NHIFDeduction   float64 `json:"nhif_deduction"`
	NSSFDeduction   float64 `json:"nssf_deduction"`
	Advances        float64 `json:"advances"`
	OtherDeductions float64 `json:"other_deductions"`
	GrossPay        float64 `json:"gross_pay"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
	CreatedAt       string  `json:"created_at"`
}
