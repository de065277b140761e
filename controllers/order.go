package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"zomato/database"
	"zomato/models"
)

func CreateOrder(context *gin.Context) {
	var payload CreateOrderPayload
	var err error

	if err = context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	if payload.CustomerName == "" || len(payload.DishIDs) == 0 {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Customer name and dish IDs are required"})
		context.Abort()
		return
	}

	order := models.FoodOrder{
		CustomerName: payload.CustomerName,
		DishIDs:      strings.Join(payload.DishIDs, ","),
		TotalPrice:   payload.TotalPrice,
		OrderStatus:  models.OrderStatusReceived,
	}
	err = database.MysqlDB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	context.JSON(http.StatusCreated, MessageResponse{Message: "Order created successfully"})
}

func UpdateOrderStatus(context *gin.Context) {
	var payload OrderStatusPayload
	var err error

	orderID, err := strconv.ParseUint(context.Param("order_id"), 10, 64)
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	if err = context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	order, getErr := models.GetOrderByID(uint(orderID))
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		} else {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update order status"})
		}
		context.Abort()
		return
	}

	err = database.MysqlDB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&order).Update("OrderStatus", payload.OrderStatus).Error
	})
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update order status"})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, MessageResponse{Message: "Order status updated successfully"})
}

func GetOrdersByCustomer(context *gin.Context) {
	var orders []OrderSchema

	customerName := context.Param("customer_name")

	err := database.MysqlDB.Model(models.FoodOrder{}).
		Select("id, customer_name, order_status").
		Where("customer_name = ?", customerName).
		Scan(&orders).Error
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	if len(orders) == 0 {
		context.JSON(http.StatusOK, MessageResponse{Message: "No orders found for this customer"})
		return
	}

	context.JSON(http.StatusOK, OrdersResponse{Orders: orders})
}

func GetOrdersByStatus(context *gin.Context) {
	var orders []OrderSchema

	orderStatus := context.Param("order_status")

	err := database.MysqlDB.Model(models.FoodOrder{}).
		Select("id, customer_name, order_status").
		Where("order_status = ?", orderStatus).
		Scan(&orders).Error
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	if len(orders) == 0 {
		context.JSON(http.StatusOK, MessageResponse{Message: "No orders found with this status"})
		return
	}

	context.JSON(http.StatusOK, OrdersResponse{Orders: orders})
}
