package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"user-hobbies/internal/service"
)

// ServerError is the JSON error envelope returned for every failed request.
type ServerError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func newServerError(status int, message string) *ServerError {
	return &ServerError{Status: status, Message: message}
}

var (
	errBadJSON     = newServerError(http.StatusBadRequest, "Bad JSON format")
	errBadRequest  = newServerError(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	errNotFound    = newServerError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	errInvalidUser = newServerError(http.StatusNotFound, "Invalid user id")
	errInternal    = newServerError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
)

// mapError converts a service error into the envelope sent to the client.
// Anything unrecognised is an internal fault.
func mapError(err error) *ServerError {
	var serverErr *ServerError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &serverErr):
		return serverErr
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrHobbyNotFound):
		return errNotFound
	case errors.Is(err, service.ErrOwnerNotFound):
		return errInvalidUser
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidPassionLevel),
		errors.Is(err, service.ErrUnknownHobby):
		return newServerError(http.StatusBadRequest, err.Error())
	default:
		return errInternal
	}
}

func abortWith(c *gin.Context, err *ServerError) {
	c.AbortWithStatusJSON(err.Status, err)
}

// fail maps err, logs internal faults and aborts the request.
func (h *Handler) fail(c *gin.Context, err error) {
	mapped := mapError(err)
	if mapped.Status >= http.StatusInternalServerError {
		h.logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	_ = c.Error(err)
	abortWith(c, mapped)
}

// failList reports store faults on collection reads as bad requests.
func (h *Handler) failList(c *gin.Context, err error) {
	h.logger.WithError(err).WithField("path", c.FullPath()).Warn("list failed")
	_ = c.Error(err)
	abortWith(c, errBadRequest)
}
