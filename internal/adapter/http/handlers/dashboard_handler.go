package handlers

import (
	"errors"
	request "mutual_cartera/internal/adapter/http/dto/request"
	response "mutual_cartera/internal/adapter/http/dto/response"
	"mutual_cartera/internal/usecase"
	"mutual_cartera/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPeriodQuery = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period or date range", http.StatusBadRequest)
)

// DashboardHandler serves the portfolio dashboards.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	loc     *time.Location
	now     func() time.Time
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{usecase: uc, loc: loc, now: time.Now}
}

// GetPeriodMetrics godoc
// @Summary      Portfolio metrics for a period
// @Tags         dashboard
// @Produce      json
// @Param        year    query  int     false  "Year (defaults to the current one)"
// @Param        period  query  string  false  "1..12, current, Q1..Q4, S1, S2 or year"
// @Param        start   query  string  false  "YYYY-MM-DD"
// @Param        end     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  response.PeriodMetricsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /dashboard/period [get]
func (h *DashboardHandler) GetPeriodMetrics(c *gin.Context) {
	var query request.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	start, end, err := query.Resolve(h.now().In(h.loc))
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	metrics, err := h.usecase.Period(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPeriodMetrics(start, end, metrics))
}

// GetDelinquency godoc
// @Summary      Delinquency breakdown of the whole portfolio
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  entities.DelinquencyMetrics
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /dashboard/delinquency [get]
func (h *DashboardHandler) GetDelinquency(c *gin.Context) {
	metrics, err := h.usecase.Delinquency(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetLiquidity godoc
// @Summary      Expected collections from today onwards
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  entities.LiquidityProjection
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /dashboard/liquidity [get]
func (h *DashboardHandler) GetLiquidity(c *gin.Context) {
	projection, err := h.usecase.Liquidity(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, projection)
}

// RefreshClients godoc
// @Summary      Reload the client directory cache
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.RefreshClientsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /dashboard/clients/refresh [post]
func (h *DashboardHandler) RefreshClients(c *gin.Context) {
	n, err := h.usecase.RefreshClients(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RefreshClientsResponse{Clients: n, RefreshedAt: h.now().UTC()})
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return errInvalidPeriodQuery
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
