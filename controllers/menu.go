package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"zomato/database"
	"zomato/models"
)

func AddMenuItem(context *gin.Context) {
	var payload MenuItemPayload

	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	item := models.MenuItem{
		Name:         *payload.Name,
		Description:  *payload.Description,
		Price:        *payload.Price,
		Availability: *payload.Availability,
		SoldCount:    *payload.SoldCount,
	}
	if res := database.MysqlDB.Create(&item); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: res.Error.Error()})
		context.Abort()
		return
	}

	context.JSON(http.StatusCreated, MessageResponse{Message: "Menu item added successfully"})
}

func GetMenuItems(context *gin.Context) {
	items := []models.MenuItem{}

	if res := database.MysqlDB.Find(&items); res.Error != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: res.Error.Error()})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, items)
}

func UpdateMenuItem(context *gin.Context) {
	var payload MenuItemPayload

	itemID, err := strconv.ParseUint(context.Param("item_id"), 10, 64)
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

	item, getErr := models.GetMenuItemByID(uint(itemID))
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Menu item not found"})
		} else {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: getErr.Error()})
		}
		context.Abort()
		return
	}

	item.Name = *payload.Name
	item.Description = *payload.Description
	item.Price = *payload.Price
	item.Availability = *payload.Availability
	item.SoldCount = *payload.SoldCount

	if res := database.MysqlDB.Save(&item); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: res.Error.Error()})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, MessageResponse{Message: "Menu item updated successfully"})
}

func DeleteMenuItem(context *gin.Context) {
	itemID, err := strconv.ParseUint(context.Param("item_id"), 10, 64)
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	item, getErr := models.GetMenuItemByID(uint(itemID))
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Menu item not found"})
		} else {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: getErr.Error()})
		}
		context.Abort()
		return
	}

	if res := database.MysqlDB.Delete(&item); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: res.Error.Error()})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, MessageResponse{Message: "Menu item deleted successfully"})
}
