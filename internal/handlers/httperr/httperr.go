package httperr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/service"
)

// FromService maps a service error onto an RFC 7807 huma error. message is
// used for failures the caller cannot fix.
func FromService(err error, message string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return huma.NewError(http.StatusBadRequest, "validation failed", &huma.ErrorDetail{
			Location: "body." + verr.Field,
			Message:  verr.Message,
		})
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "not found")
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}

// NextPage is the X-Next-Page header value for a listing, empty on the last page.
func NextPage(page int, hasMore bool) string {
	if !hasMore {
		return ""
	}
	if page < 0 {
		page = 0
	}
	return strconv.Itoa(page + 1)
}
