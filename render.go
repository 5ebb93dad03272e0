package folio

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes cmp as a 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus renders cmp in memory before anything is sent, so a component
// that fails part way reaches the error handler instead of leaving a
// truncated page. A component that writes nothing yields an empty body,
// which is how a closed viewer answers.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// renderXML writes v as an indented XML document.
func renderXML(c echo.Context, contentType string, v any) error {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	return c.Blob(http.StatusOK, contentType, append([]byte(xml.Header), out...))
}
