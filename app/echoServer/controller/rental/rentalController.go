package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	rs "carrental/service/rental"
	"carrental/util/dates"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /rentals
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	start, err := dates.Parse(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid startDate, use YYYY-MM-DD"})
	}
	end, err := dates.Parse(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid endDate, use YYYY-MM-DD"})
	}

	rental, err := h.Svc.Create(c.Request().Context(), rs.CreateParams{
		CarID:          req.CarID,
		CustomerName:   req.CustomerName,
		DrivingLicense: req.DrivingLicense,
		StartDate:      start,
		EndDate:        end,
	})
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case rs.ErrMinPeriod:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "minimum rental period is 1 day"})
		case rs.ErrDatesConflict:
			return c.JSON(http.StatusConflict, echo.Map{"message": "car is not available for the selected dates"})
		default:
			h.Log.Error("rental create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, rental)
}

// GET /:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rental, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if rs.Code(err) == rs.ErrRentalNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		h.Log.Error("rental get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rental)
}

// PUT /rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	returnDate, err := dates.Parse(req.ReturnDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid returnDate, use YYYY-MM-DD"})
	}

	out, err := h.Svc.Return(c.Request().Context(), id, rs.ReturnParams{
		ReturnDate: returnDate,
		FuelLevel:  req.CurrentFuelLevel,
		Mileage:    req.Mileage,
	})
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrAlreadyReturned:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental already returned"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"rentalId":          out.RentalID,
		"totalCost":         out.TotalCost,
		"additionalCharges": out.AdditionalCharges,
	})
}
