//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// The admin handler is tested against the real in-memory catalog; the
// interesting behavior is the per-room report, not the wiring.
type AdminHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	catalog *memstore.RoomCatalog
	handler *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.catalog = memstore.NewRoomCatalog()
	s.handler = api.NewAdminHandler(commands.NewAdminCommands(s.catalog))

	s.router.POST("/admin/rooms", s.handler.AddRooms)
	s.router.POST("/admin/rooms/import", s.handler.ImportCSV)
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestAddRooms() {
	url := "/admin/rooms"

	s.Run("success: reports added, skipped and failed rooms", func() {
		reqBody := reqdto.AddRoomsRequest{
			Rooms: []reqdto.AddRoomInput{
				builder.NewRoomBuilder().WithNumber("101").BuildAddRequestDTO(),
				builder.NewRoomBuilder().WithNumber("101").BuildAddRequestDTO(),
				builder.NewRoomBuilder().WithNumber("oops").BuildAddRequestDTO(),
			},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var report resdto.IngestReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal([]string{"101"}, report.Added)
		s.Equal([]string{"101"}, report.Skipped)
		s.Require().Len(report.Failed, 1)
		s.Equal("oops", report.Failed[0].Number)
	})

	s.Run("error: 400 Bad Request on empty batch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AddRoomsRequest{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AdminHandlerTestSuite) TestImportCSV() {
	url := "/admin/rooms/import"

	s.Run("success: imports the file and reports per line", func() {
		csv := "201,120.0,double\nbroken-line\n202,0,single\n"

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, csv, "text/csv")

		var report resdto.IngestReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal([]string{"201", "202"}, report.Added)
		s.Require().Len(report.Failed, 1)
		s.Equal(2, report.Failed[0].Line)

		s.NotNil(s.catalog.Find("201"))
		s.NotNil(s.catalog.Find("202"))
	})
}
