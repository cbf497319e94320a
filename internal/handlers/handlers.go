package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, class, message string) error {
	return c.SendString(
		`<div class="alert ` + class + `" role="alert">` + html.EscapeString(message) + `</div>`,
	)
}

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
