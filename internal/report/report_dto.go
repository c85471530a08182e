package report

type ReportSummary struct {
	Count      int     `json:"count"`
	TotalGross float64 `json:"total_gross"`
	TotalNet   float64 `json:"total_net"`
}

type ReportRecord struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Month           string  `json:"month"`
	BasicSalary     float64 `json:"basic_salary"`
	OvertimeHours   float64 `json:"overtime_hours"`
	GrossPay        float64 `json:"gross_pay"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
}

type ReportResponse struct {
	Records []ReportRecord `json:"records"`
	Summary ReportSummary  `json:"summary"`
}

type DashboardResponse struct {
	TotalEmployees int     `json:"total_employees"`
	Month          string  `json:"month"`
	TotalNetPay    float64 `json:"total_net_pay"`
	AverageNetPay  float64 `json:"average_net_pay"`
	ProcessedCount int     `json:"processed_count"`
}
