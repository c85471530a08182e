package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	IDNumber    string    `gorm:"column:id_number;not null"` // nomor identitas nasional, sengaja tanpa unique index
	PhoneNumber string
	Position    string
	BasicSalary float64   `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"<-:create"`
}
