package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerCommands   commands.CustomerCommands
	customerQueries    queries.CustomerQueries
	reservationQueries queries.ReservationQueries
}

func NewCustomerHandler(
	customerCommands commands.CustomerCommands,
	customerQueries queries.CustomerQueries,
	reservationQueries queries.ReservationQueries,
) *CustomerHandler {
	return &CustomerHandler{
		customerCommands:   customerCommands,
		customerQueries:    customerQueries,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create customer
// @Description Register a new customer account
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	cust, err := h.customerCommands.Create(c.Request.Context(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDuplicateCustomerEmail):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"A customer with the same email already exists", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomer(cust))
}

// @Summary Get customer
// @Description Get a customer by email
// @Tags customers
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{email} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	view, err := h.customerQueries.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary List customers
// @Description List every known customer
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	views, err := h.customerQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	customers := make([]*resdto.CustomerResponse, len(views))
	for i, view := range views {
		customers[i] = resdto.FromCustomerView(view)
	}
	c.JSON(http.StatusOK, customers)
}

// @Summary Get customer reservations
// @Description List all reservations held by the customer. A customer with no reservations gets an empty list.
// @Tags customers
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{email}/reservations [get]
func (h *CustomerHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationQueries.ListByCustomer(c.Request.Context(), c.Param("email"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
