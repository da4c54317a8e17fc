// Package main car rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     car rental booking service (fleet catalog, rentals, statistics).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"carrental/app/echoServer"
	carctrl "carrental/app/echoServer/controller/car"
	rentalctrl "carrental/app/echoServer/controller/rental"
	statsctrl "carrental/app/echoServer/controller/stats"
	"carrental/app/echoServer/validation"
	"carrental/config"
	carrepo "carrental/repository/car"
	rentalrepo "carrental/repository/rental"
	carsvc "carrental/service/car"
	rentalsvc "carrental/service/rental"
	statssvc "carrental/service/stats"
	"carrental/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Error("schema init failed", "err", err)
		os.Exit(1)
	}

	// repos
	cr := carrepo.New(db)
	rr := rentalrepo.New(db)

	// services
	cs := carsvc.New(cr)
	rs := rentalsvc.New(db, rr, cr)
	ss := statssvc.New(rr)

	// controllers
	v := validator.New()
	carC := &carctrl.Controller{Svc: cs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	statsC := &statsctrl.Controller{Svc: ss, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Car:    carC,
		Rental: rentalC,
		Stats:  statsC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
