package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
}

func NewAdminHandler(adminCommands commands.AdminCommands) *AdminHandler {
	return &AdminHandler{adminCommands: adminCommands}
}

// @Summary Add rooms
// @Description Add a batch of rooms to the catalog. Rooms whose number already exists are skipped and reported; one bad room never aborts the batch.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AddRoomsRequest true "Rooms to add"
// @Success 200 {object} resdto.IngestReportResponse
// @Failure 400 {object} map[string]string
// @Router /admin/rooms [post]
func (h *AdminHandler) AddRooms(c *gin.Context) {
	var req reqdto.AddRoomsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	batch := make([]commands.RoomInput, len(req.Rooms))
	for i, r := range req.Rooms {
		batch[i] = commands.RoomInput{
			Number: r.Number,
			Price:  r.Price,
			Type:   r.Type,
		}
	}

	report, err := h.adminCommands.AddRooms(c.Request.Context(), batch)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngestReport(report))
}

// @Summary Import rooms from CSV
// @Description Load rooms from a roomNumber,price,roomType line format. Malformed lines and duplicate numbers are reported per line and never abort the rest of the file.
// @Tags admin
// @Accept plain
// @Produce json
// @Success 200 {object} resdto.IngestReportResponse
// @Router /admin/rooms/import [post]
func (h *AdminHandler) ImportCSV(c *gin.Context) {
	report, err := h.adminCommands.ImportCSV(c.Request.Context(), c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read CSV payload", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngestReport(report))
}
