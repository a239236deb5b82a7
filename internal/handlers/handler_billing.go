package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/billing"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	portssvc "github.com/Alish-p/transport-rewrite-sub001/internal/core/ports/services"
	"github.com/Alish-p/transport-rewrite-sub001/internal/dto"
	"github.com/Alish-p/transport-rewrite-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators hooks decimal support into gin's shared validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			dto.RegisterDecimalTypes(v)
		}
	})
}

// billingHandler handles HTTP requests that compute billing figures
type billingHandler struct {
	billingService portssvc.BillingService
}

func newBillingHandler(bs portssvc.BillingService) *billingHandler {
	return &billingHandler{billingService: bs}
}

// RegisterBillingRoutes registers the billing computation routes under rg.
func RegisterBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingService) {
	registerValidators()
	h := newBillingHandler(billingService)

	billingGroup := rg.Group("/billing")
	{
		billingGroup.GET("/tax-rules", h.getTaxRules)
		billingGroup.POST("/freight-lines", h.computeFreightLine)
		billingGroup.POST("/tax-breakups", h.computeTaxBreakup)
		billingGroup.POST("/transporter-payments/summary", h.computeTransporterPayment)
		billingGroup.POST("/driver-payslips/summary", h.computeDriverPayslip)
		billingGroup.POST("/customer-invoices/summary", h.computeCustomerInvoice)
	}
}

// getTaxRules godoc
// @Summary Show the configured tax rules
// @Tags billing
// @Produce json
// @Success 200 {object} domain.TaxRuleConfig
// @Security BearerAuth
// @Router /billing/tax-rules [get]
func (h *billingHandler) getTaxRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.billingService.TaxRules())
}

// computeFreightLine godoc
// @Summary Compute the freight breakdown of one trip
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.FreightLineRequest true "Trip"
// @Success 200 {object} domain.FreightLine
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /billing/freight-lines [post]
func (h *billingHandler) computeFreightLine(c *gin.Context) {
	var req dto.FreightLineRequest
	if !bindJSON(c, &req) {
		return
	}

	var trip *domain.TripRecord
	if req.Trip != nil {
		t := req.Trip.ToDomain()
		trip = &t
	}
	line, err := h.billingService.ComputeFreightLine(c.Request.Context(), trip)
	if err != nil {
		respondError(c, err, "Failed to compute freight line")
		return
	}
	c.JSON(http.StatusOK, line)
}

// computeTaxBreakup godoc
// @Summary Compute GST and TDS on a taxable base
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.TaxBreakupRequest true "Profile and taxable base"
// @Success 200 {object} dto.TaxBreakupResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /billing/tax-breakups [post]
func (h *billingHandler) computeTaxBreakup(c *gin.Context) {
	var req dto.TaxBreakupRequest
	if !bindJSON(c, &req) {
		return
	}

	profile := req.Profile.ToDomain()
	breakup, err := h.billingService.ComputeTaxBreakup(c.Request.Context(), profile, req.TaxableBase)
	if err != nil {
		respondError(c, err, "Failed to compute tax breakup")
		return
	}
	c.JSON(http.StatusOK, dto.TaxBreakupResponse{
		Regime:     billing.Regime(profile, h.billingService.TaxRules()),
		TaxBreakup: *breakup,
	})
}

// computeTransporterPayment godoc
// @Summary Compute a transporter payment summary
// @Description Sums freight, expense and shortage over the trips, applies TDS on gross freight and layers additional charges on after tax.
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.TransporterPaymentRequest true "Trips, profile and charges"
// @Success 200 {object} dto.TransporterPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /billing/transporter-payments/summary [post]
func (h *billingHandler) computeTransporterPayment(c *gin.Context) {
	var req dto.TransporterPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	profile := req.Profile.ToDomain()
	summary, err := h.billingService.ComputeTransporterPayment(
		c.Request.Context(),
		dto.ToTripRecords(req.Trips),
		profile,
		dto.ToAdditionalCharges(req.AdditionalCharges),
	)
	if err != nil {
		respondError(c, err, "Failed to compute transporter payment")
		return
	}
	c.JSON(http.StatusOK, dto.TransporterPaymentResponse{
		Regime:         billing.Regime(profile, h.billingService.TaxRules()),
		PaymentSummary: *summary,
	})
}

// computeDriverPayslip godoc
// @Summary Compute a driver payslip summary
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.DriverPayslipRequest true "Payslip inputs"
// @Success 200 {object} domain.PayslipSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /billing/driver-payslips/summary [post]
func (h *billingHandler) computeDriverPayslip(c *gin.Context) {
	var req dto.DriverPayslipRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.billingService.ComputeDriverPayslip(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to compute driver payslip")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// computeCustomerInvoice godoc
// @Summary Compute a customer invoice summary
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.CustomerInvoiceRequest true "Invoiced trips"
// @Success 200 {object} domain.InvoiceSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /billing/customer-invoices/summary [post]
func (h *billingHandler) computeCustomerInvoice(c *gin.Context) {
	var req dto.CustomerInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.billingService.ComputeCustomerInvoice(c.Request.Context(), dto.ToTripRecords(req.InvoicedSubtrips))
	if err != nil {
		respondError(c, err, "Failed to compute customer invoice")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// bindJSON binds the request body and writes a 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrInvalidRecord), errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidConfig):
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Billing is misconfigured"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
