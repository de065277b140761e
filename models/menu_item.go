package models

import (
	"zomato/database"
)

type MenuItem struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Description  string  `gorm:"size:500" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Availability bool    `gorm:"default:true" json:"availability"`
	SoldCount    int     `gorm:"default:0" json:"sold_count"`
}

func GetMenuItemByID(id uint) (MenuItem, error) {
	var item MenuItem
	if res := database.MysqlDB.Where("id = ?", id).First(&item); res.Error != nil {
		return MenuItem{}, res.Error
	}
	return item, nil
}
