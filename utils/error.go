package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homebook/services/booking"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

var bookingStatus = map[string]int{
	booking.ErrSessionNotFound.Code:      http.StatusNotFound,
	booking.ErrSessionClosed.Code:        http.StatusGone,
	booking.ErrStageMismatch.Code:        http.StatusConflict,
	booking.ErrConversationOpen.Code:     http.StatusConflict,
	booking.ErrDiscoveryRunning.Code:     http.StatusConflict,
	booking.ErrTrackingNotArrived.Code:   http.StatusConflict,
	booking.ErrVendorAlreadyChosen.Code:  http.StatusConflict,
	booking.ErrNoOffers.Code:             http.StatusConflict,
	booking.ErrMissingAddress.Code:       http.StatusBadRequest,
	booking.ErrUnknownOffer.Code:         http.StatusBadRequest,
	booking.ErrInvalidPhone.Code:         http.StatusBadRequest,
	booking.ErrInvalidRating.Code:        http.StatusBadRequest,
	booking.ErrInvalidPaymentMethod.Code: http.StatusBadRequest,
}

// BookingErrorStatus maps a booking error to its HTTP status. Unknown errors are 500.
func BookingErrorStatus(err error) (int, string) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		if status, ok := bookingStatus[be.Code]; ok {
			return status, be.Code
		}
	}
	return http.StatusInternalServerError, ""
}

// BookingError sends the JSON error response for a failed booking operation.
func BookingError(c *gin.Context, message string, err error) {
	status, code := BookingErrorStatus(err)
	if status >= http.StatusInternalServerError {
		GetLogger().Error(message, zap.Error(err))
	} else {
		GetLogger().Debug(message, zap.String("code", code), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Message: message, Code: code, Details: err.Error()})
}
