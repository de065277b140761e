package models

import (
	"zomato/database"
)

// OrderStatusReceived is the status every new order starts in. Later values
// are free text set through the status update endpoint.
const OrderStatusReceived = "received"

type FoodOrder struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string  `gorm:"size:255;not null" json:"customer_name"`
	DishIDs      string  `gorm:"size:255;not null" json:"dish_ids"`
	TotalPrice   float64 `gorm:"not null" json:"total_price"`
	OrderStatus  string  `gorm:"size:50;not null;default:received" json:"order_status"`
}

func GetOrderByID(id uint) (FoodOrder, error) {
	var order FoodOrder
	if res := database.MysqlDB.Where("id = ?", id).First(&order); res.Error != nil {
		return FoodOrder{}, res.Error
	}
	return order, nil
}
