package car

import (
	"log/slog"
	"net/http"
	"strconv"

	"carrental/model"
	carsvc "carrental/service/car"
	"carrental/util/dates"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc carsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /cars?startDate&endDate&carType&maxDailyRate
func (h *Controller) ListAvailable(c echo.Context) error {
	var f carsvc.Filter

	// The date filter only applies when both ends of the range are given.
	startRaw, endRaw := c.QueryParam("startDate"), c.QueryParam("endDate")
	if startRaw != "" && endRaw != "" {
		start, err := dates.Parse(startRaw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid startDate, use YYYY-MM-DD"})
		}
		end, err := dates.Parse(endRaw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid endDate, use YYYY-MM-DD"})
		}
		f.Start, f.End = &start, &end
	}

	f.Type = c.QueryParam("carType")

	if raw := c.QueryParam("maxDailyRate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid maxDailyRate"})
		}
		f.MaxDailyRate = &rate
	}

	cars, err := h.Svc.ListAvailable(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("car list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if cars == nil {
		cars = []model.Car{}
	}
	return c.JSON(http.StatusOK, echo.Map{"availableCars": cars})
}

// POST /cars  (admin)
func (h *Controller) Create(c echo.Context) error {
	var req CreateCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	car := &model.Car{
		Model:       req.Model,
		Type:        req.Type,
		DailyRate:   req.DailyRate,
		IsAvailable: true,
		Features:    req.Features,
	}
	id, err := h.Svc.Create(c.Request().Context(), car)
	if err != nil {
		if carsvc.Code(err) == carsvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("car create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GET /cars/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	car, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("car detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if car == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
	}
	return c.JSON(http.StatusOK, car)
}
