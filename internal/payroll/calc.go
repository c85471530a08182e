package payroll

import (
	"math"
	"strconv"
	"strings"
)

// Tarif lembur default per jam, mengikuti form processing.
const DefaultOvertimeRate = 150

// Potongan statutori (formula sederhana, bukan acuan hukum pajak).
const (
	nhifRate = 0.015
	nhifMin  = 150
	nhifMax  = 1700

	nssfRate = 0.06
	nssfCap  = 2160
)

// PeriodInput adalah input per-periode apa adanya dari form.
// Semua field berupa string; kosong/tidak valid dianggap 0.
type PeriodInput struct {
	OvertimeHours   string
	OvertimeRate    string
	Bonuses         string
	NHIFDeduction   string
	NSSFDeduction   string
	Advances        string
	OtherDeductions string
}

type Breakdown struct {
	BasicSalary     float64
	OvertimeHours   float64
	OvertimeRate    float64
	OvertimeAmount  float64
	Bonuses         float64
	GrossPay        float64
	NHIFDeduction   float64
	NSSFDeduction   float64
	Advances        float64
	OtherDeductions float64
	TotalDeductions float64
	NetPay          float64
}

// Calculate menghitung rincian gaji untuk satu employee dan satu periode.
// Pure function: tidak menyimpan state dan tidak punya side effect.
// Mengembalikan nil jika employee tidak teridentifikasi (preview unavailable).
//
// Potongan NHIF/NSSF manual hanya dipakai jika nilainya > 0; kosong, tidak
// valid, atau nol jatuh kembali ke formula statutori.
func Calculate(empl *PayrollEmployee, in PeriodInput) *Breakdown {
	if empl == nil {
		return nil
	}

	basicSalary := empl.BasicSalary
	overtimeHours := parseAmount(in.OvertimeHours)
	overtimeRate := parseAmount(in.OvertimeRate)
	overtimeAmount := overtimeHours * overtimeRate
	bonuses := parseAmount(in.Bonuses)

	grossPay := basicSalary + overtimeAmount + bonuses

	nhif := parseAmount(in.NHIFDeduction)
	if nhif == 0 {
		nhif = math.Min(nhifMax, math.Max(nhifMin, grossPay*nhifRate))
	}
	nssf := parseAmount(in.NSSFDeduction)
	if nssf == 0 {
		nssf = math.Min(nssfCap, grossPay*nssfRate)
	}
	advances := parseAmount(in.Advances)
	otherDeductions := parseAmount(in.OtherDeductions)

	totalDeductions := nhif + nssf + advances + otherDeductions

	return &Breakdown{
		BasicSalary:     basicSalary,
		OvertimeHours:   overtimeHours,
		OvertimeRate:    overtimeRate,
		OvertimeAmount:  overtimeAmount,
		Bonuses:         bonuses,
		GrossPay:        grossPay,
		NHIFDeduction:   nhif,
		NSSFDeduction:   nssf,
		Advances:        advances,
		OtherDeductions: otherDeductions,
		TotalDeductions: totalDeductions,
		// Tidak di-clamp ke nol: net pay negatif tetap terlihat oleh caller
		NetPay: grossPay - totalDeductions,
	}
}

func parseAmount(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}
