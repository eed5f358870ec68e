package schema

import (
	"time"

	"gorm.io/gorm"
)

// The structs below freeze the layout created by migration 1. They are not
// used for data access and must not change once released; later layout
// changes get their own migration.

type userV1 struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Password  string `gorm:"size:255;not null"`
}

func (userV1) TableName() string { return "users" }

type productV1 struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"not null;index"`
}

func (productV1) TableName() string { return "products" }

type orderV1 struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;index"`
	User      userV1    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID int64     `gorm:"not null;index"`
	Product   productV1 `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	OrderDate time.Time `gorm:"not null"`
	Status    string    `gorm:"size:255;not null"`
}

func (orderV1) TableName() string { return "orders" }

// createShopTables creates users, products and orders. Tables that already
// exist are left as they are so a database created by an earlier tool is adopted.
func createShopTables(tx *gorm.DB) error {
	m := tx.Migrator()
	for _, table := range []any{&userV1{}, &productV1{}, &orderV1{}} {
		if m.HasTable(table) {
			continue
		}
		if err := m.CreateTable(table); err != nil {
			return err
		}
	}
	return nil
}
