package model

import (
	"time"
)

const (
	KindMain  = "main"
	KindBonus = "bonus"
)

type Draw struct {
	ID        uint   `gorm:"primaryKey"`
	Format    string `gorm:"index"`
	Canonical string
	Date      *time.Time

	Numbers []DrawNumber `gorm:"foreignKey:DrawID"`
}

type DrawNumber struct {
	ID     uint   `gorm:"primaryKey"`
	DrawID uint   `gorm:"index"`
	Kind   string `gorm:"index"` // KindMain or KindBonus
	Value  int
}
