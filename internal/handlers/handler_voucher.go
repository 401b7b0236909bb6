package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/erp_records_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/middleware"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/SscSPs/erp_records_backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// NextTokenHeader carries the cursor for the next page of vouchers. Pass it
// back as the "after" query parameter.
const NextTokenHeader = "X-Next-Token"

// voucherHandler handles HTTP requests related to ledger vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// RegisterVoucherRoutes registers routes related to vouchers.
func RegisterVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	mustRegisterValidators()
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:uuid", h.getVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Stores a voucher and its ledger items atomically. Items may be nested in the voucher or sent next to it. currency_id is mandatory.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher with at least two items"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or fewer than two items"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Rejected by a store constraint"
// @Failure 500 {object} dto.ErrorResponse "Failed to create voucher"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	id, err := h.voucherService.CreateVoucher(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create voucher")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Voucher created", slog.String("voucher_uuid", id.String()))
	c.JSON(http.StatusCreated, dto.CreatedResponse{UUID: id.String()})
}

// listVouchers godoc
// @Summary List vouchers
// @Description Lists vouchers newest first. Numeric filters accept a comparison prefix such as >=.
// @Tags vouchers
// @Produce  json
// @Param   uuid query string false "Voucher identifier, repeat for several"
// @Param   document_uuid query string false "Source document identifier"
// @Param   project_id query string false "Project"
// @Param   currency_id query string false "Currency"
// @Param   user_id query string false "Author"
// @Param   reference query string false "Reference"
// @Param   description query string false "Substring of the description"
// @Param   account_id query string false "Vouchers touching this account"
// @Param   dateFrom query string false "Start date, requires dateTo"
// @Param   dateTo query string false "End date, requires dateFrom"
// @Param   limit query int false "Maximum number of vouchers"
// @Param   after query string false "Cursor from the X-Next-Token header of the previous page"
// @Success 200 {array} dto.VoucherResponse
// @Header  200 {string} X-Next-Token "Cursor for the next page, set when the page is full"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list vouchers"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	vouchers, err := h.voucherService.ListVouchers(c.Request.Context(), filter.FromQuery(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, "Failed to list vouchers")
		return
	}

	// a full page may have a successor
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && len(vouchers) == limit {
		last := vouchers[len(vouchers)-1]
		c.Header(NextTokenHeader, pagination.EncodeToken(last.Date, last.CreatedAt))
	}
	c.JSON(http.StatusOK, dto.ToListVoucherResponse(vouchers))
}

// getVoucher godoc
// @Summary Get a voucher
// @Description Retrieves a voucher with its items in submission order
// @Tags vouchers
// @Produce  json
// @Param   uuid path string true "Voucher identifier"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed identifier"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve voucher"
// @Security BearerAuth
// @Router /vouchers/{uuid} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
