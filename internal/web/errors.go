package web

import (
	"bytes"
	"net/http"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/pkg/logger"
)

// User-facing failure messages, one per error route.
const (
	msgServerDown  = "The server is taking a break, try again soon"
	msgServer      = "Something went wrong on our end"
	msgBadInput    = "We could not make sense of that submission"
	msgNotFound    = "That page does not exist"
	msgNoProduct   = "We could not find that product"
	msgNoFarm      = "We could not find that farm"
	msgNoCategory  = "We could not find that category"
	msgNoEditMatch = "We could not find the record you are trying to edit"
)

// Error page illustrations, served from the static assets.
const (
	imgServerError = "/images/undraw_fixing_bugs.svg"
	imgUserError   = "/images/undraw_location_search.svg"
	imgServerDown  = "/images/undraw_server_down.svg"
)

// renderError renders the error view: status code, human message, and a
// contextual navigation link. Never a raw stack trace.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	link, linkText, imageSource := "/", "Home", imgUserError
	if status >= 500 {
		link, linkText, imageSource = "/contact", "Contact us", imgServerDown
	}

	// Render into a buffer first so a template failure can still produce a
	// clean plain-text response with a single status write.
	var buf bytes.Buffer
	err := h.renderer.Render(&buf, "error", map[string]any{
		"pageName":    http.StatusText(status),
		"status":      status,
		"message":     message,
		"link":        link,
		"linkText":    linkText,
		"imageSource": imageSource,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to render error page")
		http.Error(w, message, status)
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to write error page")
	}
}

// fail maps a service-layer error onto the error page, substituting the given
// not-found message when the id did not resolve.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	status := apperr.HTTPStatus(err)
	message := msgServer
	switch {
	case apperr.IsValidation(err):
		message = msgBadInput
	case apperr.IsNotFound(err):
		message = notFoundMsg
	case apperr.IsPersistence(err):
		message = msgServerDown
		status = http.StatusServiceUnavailable
	}
	h.renderError(w, r, status, message)
}
