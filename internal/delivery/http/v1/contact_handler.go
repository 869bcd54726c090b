package v1

import (
	"errors"
	"net/http"
	"strings"

	"neurodek-backend/internal/domain"
	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const bindErrorMaxLength = 200

type ContactHandler struct {
	contactUC domain.ContactUsecase
	validator *validation.ContactValidator
}

// NewContactHandler registers the contact routes (public, no auth required).
// extra runs before the handler, e.g. a rate limiter.
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase, validator *validation.ContactValidator, extra ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		validator: validator,
	}

	r.POST("/contact", append(extra, handler.SubmitContact)...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact submission and stores it when a database is configured. id is null when nothing was stored.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactInput  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactResult
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input domain.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(apperror.Truncate("Invalid request body: "+err.Error(), bindErrorMaxLength)))
		return
	}

	submission, fieldErrs := h.validator.Validate(&input)
	if fieldErrs != nil {
		msg := "Validation failed: " + strings.Join(fieldErrs.Fields(), ", ")
		c.Error(apperror.Unprocessable(msg, fieldErrs))
		return
	}

	result, err := h.contactUC.Submit(c.Request.Context(), submission)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}
		c.Error(appErr)
		return
	}

	c.JSON(http.StatusOK, result)
}
