package handlers

import (
	"errors"
	response "mutual_cartera/internal/adapter/http/dto/response"
	"mutual_cartera/internal/usecase"
	"mutual_cartera/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

const importFileField = "file"

var (
	errMissingImportFile = pkg.NewDomainErrorSimple("INVALID_FILE", "A spreadsheet must be sent in the \"file\" field", http.StatusBadRequest)
)

// ImportHandler receives portfolio spreadsheets.
type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ImportSpreadsheet godoc
// @Summary      Import a portfolio spreadsheet
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Excel workbook (.xlsx)"
// @Success      201  {object}  response.ImportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /imports [post]
func (h *ImportHandler) ImportSpreadsheet(c *gin.Context) {
	header, err := c.FormFile(importFileField)
	if err != nil {
		c.JSON(errMissingImportFile.HTTPStatus, errMissingImportFile.ToHTTPError())
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(errMissingImportFile.HTTPStatus, errMissingImportFile.ToHTTPError())
		return
	}
	defer file.Close()

	summary, err := h.usecase.Import(c.Request.Context(), file)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromImportSummary(summary))
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnreadableSpreadsheet):
		return pkg.NewDomainErrorSimple("INVALID_SPREADSHEET", "The file is not a readable spreadsheet", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptySpreadsheet):
		return pkg.NewDomainErrorSimple("EMPTY_SPREADSHEET", "The spreadsheet has no data rows", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoValidRows):
		return pkg.NewDomainErrorSimple("NO_VALID_ROWS", "No row of the spreadsheet could be imported", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
