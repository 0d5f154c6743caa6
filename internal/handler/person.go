package handler

import (
	"net/http"

	"github.com/Payphone-Digital/roster/internal/constants"
	"github.com/Payphone-Digital/roster/internal/dto"
	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/service"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/Payphone-Digital/roster/pkg/validation"
	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	personService *service.PersonService
}

func NewPersonHandler(service *service.PersonService) *PersonHandler {
	return &PersonHandler{personService: service}
}

// List serves one page of persons for the query string filters.
func (h *PersonHandler) List(c *gin.Context) {
	ctx := ctxutil.WithFunction(c.Request.Context(), "handler", "ListPersons")

	var req dto.ListPersonsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		details := validation.Messages(err)
		logger.WarnWithContext(ctx, "Invalid list persons request").
			String("query", c.Request.URL.RawQuery).
			Strings("validation_errors", details).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildCodedErrorResponse(
			apperrors.ErrInvalidInput.Code, constants.MsgBadRequest, details))
		return
	}

	q := req.ToQuery()
	res, err := h.personService.Query(ctx, q)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to query persons").
			Int("http_status", status).
			String("code", apperrors.GetErrorCode(err)).
			Err(err).
			Log()
		c.JSON(status, errorBody(status, err))
		return
	}

	logger.InfoWithContext(ctx, "Persons listed").
		Int("page", res.Page).
		Int("page_size", res.PageSize).
		Int("total", res.Total).
		Int("returned_count", len(res.Items)).
		Log()

	c.JSON(http.StatusOK, constants.BuildListResponse(res.Items, res.Total, res.Page, res.PageSize, res.TotalPages))
}

// Meta lists the accepted status filters, sort fields and directions.
func (h *PersonHandler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, h.personService.Meta())
}

// errorBody keeps store internals out of 5xx responses.
func errorBody(status int, err error) map[string]any {
	code := apperrors.GetErrorCode(err)

	switch {
	case status == http.StatusServiceUnavailable:
		return constants.BuildCodedErrorResponse(code, constants.MsgServiceUnavailable, apperrors.ErrDataUnavailable.Message)
	case status >= http.StatusInternalServerError:
		if code == "" {
			code = apperrors.ErrInternal.Code
		}
		return constants.BuildCodedErrorResponse(code, constants.MsgInternalError, nil)
	default:
		return constants.BuildCodedErrorResponse(code, constants.MsgQueryFailed, apperrors.GetErrorMessage(err))
	}
}
