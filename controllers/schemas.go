package controllers

// MenuItemPayload uses pointer fields so that false/zero values still bind
// while absent keys fail the required check.
type MenuItemPayload struct {
	Name         *string  `json:"name" binding:"required"`
	Description  *string  `json:"description" binding:"required"`
	Price        *float64 `json:"price" binding:"required"`
	Availability *bool    `json:"availability" binding:"required"`
	SoldCount    *int     `json:"sold_count" binding:"required"`
}

type CreateOrderPayload struct {
	CustomerName string   `json:"customer_name"`
	DishIDs      []string `json:"dish_ids"`
	TotalPrice   float64  `json:"total_price"`
}

type OrderStatusPayload struct {
	OrderStatus string `json:"order_status"`
}

type OrderSchema struct {
	ID           uint   `json:"id"`
	CustomerName string `gorm:"column:customer_name" json:"customer_name"`
	OrderStatus  string `gorm:"column:order_status" json:"order_status"`
}

type OrdersResponse struct {
	Orders []OrderSchema `json:"orders"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error string `json:"error"`
}
