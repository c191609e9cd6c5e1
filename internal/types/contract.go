package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Contract struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContractNumber string         `gorm:"column:contract_number;not null;uniqueIndex" json:"contract_number"`
	Components     datatypes.JSON `gorm:"type:jsonb;column:components;not null" json:"components"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Contract) TableName() string { return "contract" }

// ComponentNames decodes the declared component set. A malformed column
// yields an empty set rather than an error; nothing is entitled then.
func (c *Contract) ComponentNames() []string {
	var names []string
	if err := json.Unmarshal(c.Components, &names); err != nil {
		return nil
	}
	return names
}

func (c *Contract) HasComponent(name string) bool {
	for _, n := range c.ComponentNames() {
		if n == name {
			return true
		}
	}
	return false
}
