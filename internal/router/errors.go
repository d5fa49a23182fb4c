package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/schema"
)

// HTTPErrorHandler is the single place where error kinds become status
// codes. Handlers raise errors where they detect them; everything unknown
// is downgraded to a generic 500 so a store failure never crashes the
// request task or leaks internals beyond the error string.
//
// Mapping: tenant miss -> 404, echo.HTTPError -> its own code, validation
// -> 422 with the field list, anything else -> 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var detail any = fmt.Sprintf("Request failed: %s", err.Error())

	var tnf *repository.TenantNotFoundError
	var verrs *schema.ValidationErrors
	var he *echo.HTTPError

	switch {
	case errors.As(err, &tnf):
		code = http.StatusNotFound
		detail = tnf.Error()
	case errors.As(err, &verrs):
		code = http.StatusUnprocessableEntity
		detail = verrs.Fields
	case errors.As(err, &he):
		code = he.Code
		detail = he.Message
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, echo.Map{"detail": detail})
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}
