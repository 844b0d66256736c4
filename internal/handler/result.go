package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"motor-backend/internal/domain"
	"motor-backend/internal/logger"
	"motor-backend/internal/middleware"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// ResponseError carries the stable error code and a human-readable
// message.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondOK writes a success envelope. Data may be nil.
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// respondError writes an error envelope. Business errors keep their
// code and message; anything else is logged and surfaces as a generic
// internal_error so store details never leak to clients.
func respondError(c *gin.Context, err error) {
	if businessErr, ok := domain.AsError(err); ok {
		c.JSON(statusFor(businessErr.Code), Response{
			Success: false,
			Error:   &ResponseError{Code: string(businessErr.Code), Message: businessErr.Message},
		})
		return
	}

	logger.Error("Request failed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   &ResponseError{Code: string(domain.CodeInternal), Message: "internal server error"},
	})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeInvalidInput:
		return http.StatusBadRequest
	case domain.CodeAuthentication, domain.CodeNoUser:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
