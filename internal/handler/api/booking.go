package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "barber-booking/internal/handler/dto/request"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// CreateBooking commits a new booking. A slot lost to a concurrent commit is
// a 409: the caller picks another time, nothing is retried here.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.bookingCommands.CommitBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format. Use YYYY-MM-DD")
		case errors.Is(err, commands.ErrInvalidStartTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time must be a whole hour within business hours")
		case errors.Is(err, commands.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration must be at least one hour")
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking input")
		case errors.Is(err, commands.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "This time is already booked. Please choose another time")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// GetAvailableTimes lists bookable start times for a date and duration.
// An omitted date means today in the business timezone; duration defaults
// to one hour.
func (h *BookingHandler) GetAvailableTimes(c *gin.Context) {
	date := c.Query("date")

	duration := 1
	if durationStr := c.Query("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration must be an integer number of hours")
			return
		}
		duration = parsed
	}

	result, err := h.bookingQueries.AvailableTimes(c.Request.Context(), date, duration)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format. Use YYYY-MM-DD")
		case errors.Is(err, queries.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration must be at least one hour")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableTimesResult(result))
}

// ListBookings returns the active bookings for a date, ordered by start time.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrInvalidDate, "Query parameter 'date' is required")
		return
	}

	views, err := h.bookingQueries.ListByDate(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format. Use YYYY-MM-DD")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	responses := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, responses)
}
