package api

import (
	"net/http"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
	clock       clock.Clock
}

func NewRoomHandler(roomQueries queries.RoomQueries, clk clock.Clock) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
		clock:       clk,
	}
}

// @Summary List rooms
// @Description List every room in the catalog
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.roomQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get a room by its number
// @Tags rooms
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{number} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	view, err := h.roomQueries.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Search available rooms
// @Description Search rooms available for a date window, optionally filtered by price class. When the window is fully booked the search retries once with both dates shifted forward and flags the result as a recommendation.
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRoomsRequest true "Search request"
// @Success 200 {object} resdto.SearchRoomsResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/search [post]
func (h *RoomHandler) Search(c *gin.Context) {
	var req reqdto.SearchRoomsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	searchType, err := room.ParseSearchType(req.Type)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Room search type must be one of: free, paid, both", nil)
		return
	}

	span, err := reqdto.ParseStay(req.CheckIn, req.CheckOut, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.roomQueries.Search(c.Request.Context(), span, searchType)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}
