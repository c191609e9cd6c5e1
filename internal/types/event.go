package types

import (
	"time"

	"github.com/google/uuid"
)

// Event is one accepted lifecycle fact for a contract component. Rows are
// append-only; CreatedAt is the caller-supplied submission timestamp and is
// the ordering key when history is replayed.
type Event struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContractNumber string    `gorm:"column:contract_number;not null;index" json:"contract_number"`
	ComponentName  string    `gorm:"column:component_name;not null;index" json:"component_name"`
	Type           string    `gorm:"column:type;not null" json:"type"`
	Date           Date      `gorm:"column:date;not null" json:"date"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (Event) TableName() string { return "event" }
