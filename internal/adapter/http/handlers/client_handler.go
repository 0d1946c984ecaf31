package handlers

import (
	"errors"
	response "mutual_cartera/internal/adapter/http/dto/response"
	"mutual_cartera/internal/usecase"
	"mutual_cartera/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes the client directory.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary      List the client directory
// @Tags         clients
// @Produce      json
// @Success      200  {array}   response.ClientResponse
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary      Get a client by CUIT
// @Tags         clients
// @Produce      json
// @Param        cuit  path      string  true  "Client CUIT"
// @Success      200   {object}  response.ClientResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{cuit} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByCUIT(c.Request.Context(), c.Param("cuit"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCUIT):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
