package payroll

import (
	"time"

	"github.com/google/uuid"
)

type PayrollRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_month,unique"`

	// Snapshot nama saat diproses; tidak ikut berubah kalau employee di-rename.
	EmployeeName string `gorm:"not null"`

	// Periode dalam format YYYY-MM
	Month string `gorm:"type:varchar(7);not null;index:idx_employee_month,unique;index"`

	// Input yang di-snapshot saat perhitungan
	BasicSalary     float64 `gorm:"not null;default:0"`
	OvertimeHours   float64 `gorm:"not null;default:0"`
	OvertimeRate    float64 `gorm:"not null;default:0"`
	Bonuses         float64 `gorm:"not null;default:0"`
	NHIFDeduction   float64 `gorm:"column:nhif_deduction;not null;default:0"`
	NSSFDeduction   float64 `gorm:"column:nssf_deduction;not null;default:0"`
	Advances        float64 `gorm:"not null;default:0"`
	OtherDeductions float64 `gorm:"not null;default:0"`

	// Hasil perhitungan, disimpan sekali dan tidak dihitung ulang saat dibaca
	GrossPay        float64 `gorm:"not null;default:0"`
	TotalDeductions float64 `gorm:"not null;default:0"`
	NetPay          float64 `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"<-:create"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

type PayrollEmployee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	BasicSalary float64
}

func (PayrollEmployee) TableName() string {
	return "employees"
}
