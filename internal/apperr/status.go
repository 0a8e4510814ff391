package apperr

import "net/http"

// HTTPStatus maps an error from the service layer to a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsPersistence(err):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
