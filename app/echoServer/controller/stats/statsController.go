package stats

import (
	"log/slog"
	"net/http"

	ss "carrental/service/stats"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ss.Service
	Log *slog.Logger
}

// GET /cars/statistics?period=YYYY-MM
func (h *Controller) Statistics(c echo.Context) error {
	out, err := h.Svc.Statistics(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		if ss.Code(err) == ss.ErrBadPeriod {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid period format, use YYYY-MM"})
		}
		h.Log.Error("statistics", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}
