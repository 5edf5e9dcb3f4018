package plans

import "time"

type Plan struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;uniqueIndex"`
	Description  *string   `gorm:"type:text"`
	PriceInCents int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
