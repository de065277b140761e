package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"zomato/config"
	"zomato/controllers"
	"zomato/database"
	"zomato/models"
)

func initRouter(r *gin.Engine) {

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})
	r.GET("/healthcheck", func(c *gin.Context) {})

	r.POST("/menu/add", controllers.AddMenuItem)
	r.GET("/menu", controllers.GetMenuItems)
	r.PUT("/menu/update/:item_id", controllers.UpdateMenuItem)
	r.DELETE("/menu/delete/:item_id", controllers.DeleteMenuItem)

	r.POST("/orders", controllers.CreateOrder)
	r.PUT("/orders/:order_id", controllers.UpdateOrderStatus)
	r.GET("/orders/customer/:customer_name", controllers.GetOrdersByCustomer)
	r.GET("/orders/status/:order_status", controllers.GetOrdersByStatus)
}

func MigrateDB() error {
	if err := database.MysqlDB.AutoMigrate(&models.MenuItem{}, &models.FoodOrder{}); err != nil {
		return err
	}
	return nil
}

func main() {
	config.Cfg.Init()
	if err := database.InitDatabase(); err != nil {
		panic(err)
	}
	if err := MigrateDB(); err != nil {
		panic(err)
	}
	r := gin.Default()
	initRouter(r)

	var err error
	if port := config.Cfg.Server.Port; port != "" {
		err = r.Run(fmt.Sprintf(":%s", port))
	} else {
		err = r.Run()
	}
	if err != nil {
		panic("[Error] failed to start Gin server due to: " + err.Error())
	}
}
