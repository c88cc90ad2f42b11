package handlers

import (
	"maps"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/pagination"
	"github.com/ElyRami/Loterias/internal/services"
)

// SaleHandler handles sales ledger requests.
type SaleHandler struct {
	saleService services.SaleServicer
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService services.SaleServicer) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// ListSalesQuery holds the optional filters of the sales listing.
type ListSalesQuery struct {
	LotteryID *uint  `form:"lottery_id" binding:"omitempty,gt=0"`
	From      string `form:"from" binding:"omitempty,iso_date"`
	To        string `form:"to" binding:"omitempty,iso_date"`
}

// CreateSaleRequest represents the request payload for registering a sale.
type CreateSaleRequest struct {
	LotteryID     uint   `json:"lottery_id" binding:"required"`
	FractionsSold int    `json:"fractions_sold" binding:"required"`
	Customer      string `json:"customer" binding:"required,not_blank,max=100"`
	Seller        string `json:"seller" binding:"required,not_blank,max=100"`
	SaleDate      string `json:"sale_date" binding:"omitempty,iso_date" example:"2024-03-15"`
}

// UpdateSaleRequest represents the request payload for editing a sale.
// Omitted fields are left unchanged.
type UpdateSaleRequest struct {
	LotteryID     *uint            `json:"lottery_id" binding:"omitempty,gt=0"`
	FractionsSold *int             `json:"fractions_sold"`
	Customer      *string          `json:"customer" binding:"omitempty,not_blank,max=100"`
	Seller        *string          `json:"seller" binding:"omitempty,not_blank,max=100"`
	SaleDate      *string          `json:"sale_date" binding:"omitempty,iso_date" example:"2024-03-15"`
	Value         *decimal.Decimal `json:"sale_value" swaggertype:"string" example:"15000"`
}

// LotteryTotal is the sales total of one lottery.
type LotteryTotal struct {
	LotteryID uint            `json:"lottery_id"`
	Total     decimal.Decimal `json:"total" swaggertype:"string"`
}

// ListSales handles listing sales.
// @Summary     List sales
// @Description Get a paginated list of sales, optionally filtered by lottery and an inclusive date range
// @Tags        sales
// @Produce     json
// @Param       lottery_id query int    false "Lottery ID"
// @Param       from       query string false "First sale date (YYYY-MM-DD)"
// @Param       to         query string false "Last sale date (YYYY-MM-DD)"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Sale] "Paginated sales"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query ListSalesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.SaleFilter{LotteryID: query.LotteryID}
	var err error
	if filter.From, err = parseOptionalDate(query.From, "from"); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.To, err = parseOptionalDate(query.To, "to"); err != nil {
		respondWithError(c, err)
		return
	}

	sales, err := h.saleService.SearchSales(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Slice(sales, page))
}

// GetSale handles fetching a single sale.
// @Summary     Get sale by ID
// @Tags        sales
// @Produce     json
// @Param       id path int true "Sale ID"
// @Success     200 {object} models.Sale "Sale"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Router      /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sale, err := h.saleService.GetSaleByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": sale})
}

// CreateSale handles registering a sale.
// @Summary     Register a sale
// @Description The sale value is the fractions sold times the lottery's current price. An omitted date means today.
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       request body CreateSaleRequest true "Sale details"
// @Success     201 {object} models.Sale "Sale created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Lottery not found"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	saleDate, err := parseOptionalDate(req.SaleDate, "sale_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	var date models.Date
	if saleDate != nil {
		date = *saleDate
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req.LotteryID, req.FractionsSold, req.Customer, req.Seller, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sale": sale})
}

// UpdateSale handles editing a sale.
// @Summary     Edit a sale
// @Description Changes only the supplied fields. The sale value is not recomputed.
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Sale ID"
// @Param       request body UpdateSaleRequest true "Fields to change"
// @Success     200 {object} models.Sale "Sale updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /sales/{id} [patch]
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.SaleUpdate{
		LotteryID:     req.LotteryID,
		FractionsSold: req.FractionsSold,
		Customer:      req.Customer,
		Seller:        req.Seller,
		Value:         req.Value,
	}
	if req.SaleDate != nil {
		if update.SaleDate, err = parseOptionalDate(*req.SaleDate, "sale_date"); err != nil {
			respondWithError(c, err)
			return
		}
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": sale})
}

// DeleteSale handles removing a sale.
// @Summary     Delete a sale
// @Tags        sales
// @Produce     json
// @Param       id path int true "Sale ID"
// @Success     200 {object} map[string]string "Sale deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}

// GetTotal handles the ledger total.
// @Summary     Total sales
// @Tags        sales
// @Produce     json
// @Success     200 {object} map[string]string "Sum of every sale value"
// @Router      /sales/totals [get]
func (h *SaleHandler) GetTotal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"total": h.saleService.TotalSales()})
}

// GetTotalsByLottery handles per-lottery totals.
// @Summary     Sales totals per lottery
// @Description Only lotteries with at least one sale are listed, ordered by lottery ID
// @Tags        sales
// @Produce     json
// @Success     200 {array} LotteryTotal "Totals"
// @Router      /sales/totals/by-lottery [get]
func (h *SaleHandler) GetTotalsByLottery(c *gin.Context) {
	byLottery := h.saleService.TotalsByLottery()

	totals := make([]LotteryTotal, 0, len(byLottery))
	for _, id := range slices.Sorted(maps.Keys(byLottery)) {
		totals = append(totals, LotteryTotal{LotteryID: id, Total: byLottery[id]})
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// GetStats handles the ledger summary.
// @Summary     Sales statistics
// @Tags        sales
// @Produce     json
// @Success     200 {object} services.SaleStats "Statistics"
// @Router      /sales/stats [get]
func (h *SaleHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.saleService.Stats()})
}
