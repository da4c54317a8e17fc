package echoServer

import (
	"carrental/app/echoServer/controller/car"
	"carrental/app/echoServer/controller/rental"
	"carrental/app/echoServer/controller/stats"

	"github.com/labstack/echo/v4"
)

type C struct {
	Car    *car.Controller
	Rental *rental.Controller
	Stats  *stats.Controller
}

func Register(e *echo.Echo, c C) {
	// Fleet catalog
	e.GET("/cars", c.Car.ListAvailable)
	e.GET("/cars/statistics", c.Stats.Statistics)
	e.GET("/cars/:id", c.Car.Detail)
	// Admin endpoint
	e.POST("/cars", c.Car.Create)

	// Rental ledger
	e.POST("/rentals", c.Rental.Create)
	e.PUT("/rentals/:id/return", c.Rental.Return)
	e.GET("/:id", c.Rental.Get)
}
