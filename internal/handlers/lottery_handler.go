package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
	"github.com/ElyRami/Loterias/internal/services"
)

// LotteryHandler handles lottery catalog requests.
type LotteryHandler struct {
	lotteryService services.LotteryServicer
}

// NewLotteryHandler creates a new LotteryHandler.
func NewLotteryHandler(lotteryService services.LotteryServicer) *LotteryHandler {
	return &LotteryHandler{lotteryService: lotteryService}
}

// CreateLotteryRequest represents the request payload for adding a lottery.
type CreateLotteryRequest struct {
	Name               string          `json:"name" binding:"required,not_blank,max=255"`
	FractionsPerTicket int             `json:"fractions_per_ticket" binding:"required"`
	PricePerFraction   decimal.Decimal `json:"price_per_fraction" swaggertype:"string" example:"5000"`
	InitialInventory   int             `json:"initial_inventory"`
}

// UpdatePriceRequest represents the request payload for changing a price.
type UpdatePriceRequest struct {
	PricePerFraction decimal.Decimal `json:"price_per_fraction" swaggertype:"string" example:"5500"`
}

// UpdateInventoryRequest represents the request payload for changing an inventory.
type UpdateInventoryRequest struct {
	InitialInventory *int `json:"initial_inventory" binding:"required"`
}

// ListLotteries handles listing the catalog.
// @Summary     List lotteries
// @Description Get every lottery in the catalog in insertion order
// @Tags        lotteries
// @Produce     json
// @Success     200 {array}  models.Lottery "Lotteries"
// @Router      /lotteries [get]
func (h *LotteryHandler) ListLotteries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lotteries": h.lotteryService.ListLotteries()})
}

// GetLottery handles fetching a single lottery.
// @Summary     Get lottery by ID
// @Tags        lotteries
// @Produce     json
// @Param       id path int true "Lottery ID"
// @Success     200 {object} models.Lottery "Lottery"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Lottery not found"
// @Router      /lotteries/{id} [get]
func (h *LotteryHandler) GetLottery(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	lottery, err := h.lotteryService.GetLotteryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lottery": lottery})
}

// SearchLottery handles name search.
// @Summary     Search a lottery by name
// @Description Returns the first lottery whose name contains the query, ignoring case and accents
// @Tags        lotteries
// @Produce     json
// @Param       name query string true "Part of the lottery name"
// @Success     200 {object} models.Lottery "Lottery"
// @Failure     400 {object} ErrorResponse "Empty query"
// @Failure     404 {object} ErrorResponse "No match"
// @Router      /lotteries/search [get]
func (h *LotteryHandler) SearchLottery(c *gin.Context) {
	lottery, err := h.lotteryService.FindLotteryByName(c.Query("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lottery": lottery})
}

// GetTotals handles the catalog totals.
// @Summary     Catalog totals
// @Description Total tickets and inventory value across the catalog
// @Tags        lotteries
// @Produce     json
// @Success     200 {object} services.CatalogTotals "Totals"
// @Router      /lotteries/totals [get]
func (h *LotteryHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"totals": h.lotteryService.Totals()})
}

// CreateLottery handles adding a lottery.
// @Summary     Add a lottery
// @Tags        lotteries
// @Accept      json
// @Produce     json
// @Param       request body CreateLotteryRequest true "Lottery details"
// @Success     201 {object} models.Lottery "Lottery created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /lotteries [post]
func (h *LotteryHandler) CreateLottery(c *gin.Context) {
	var req CreateLotteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	lottery, err := h.lotteryService.CreateLottery(
		c.Request.Context(), req.Name, req.FractionsPerTicket, req.PricePerFraction, req.InitialInventory,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lottery": lottery})
}

// UpdatePrice handles changing the price per fraction.
// @Summary     Change a lottery price
// @Tags        lotteries
// @Accept      json
// @Produce     json
// @Param       id      path int                true "Lottery ID"
// @Param       request body UpdatePriceRequest true "New price"
// @Success     200 {object} models.Lottery "Lottery updated"
// @Failure     400 {object} ErrorResponse "Invalid price"
// @Failure     404 {object} ErrorResponse "Lottery not found"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /lotteries/{id}/price [put]
func (h *LotteryHandler) UpdatePrice(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	lottery, err := h.lotteryService.UpdatePrice(c.Request.Context(), id, req.PricePerFraction)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lottery": lottery})
}

// UpdateInventory handles changing the inventory.
// @Summary     Change a lottery inventory
// @Tags        lotteries
// @Accept      json
// @Produce     json
// @Param       id      path int                    true "Lottery ID"
// @Param       request body UpdateInventoryRequest true "New inventory in fractions"
// @Success     200 {object} models.Lottery "Lottery updated"
// @Failure     400 {object} ErrorResponse "Invalid inventory"
// @Failure     404 {object} ErrorResponse "Lottery not found"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /lotteries/{id}/inventory [put]
func (h *LotteryHandler) UpdateInventory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	lottery, err := h.lotteryService.UpdateInventory(c.Request.Context(), id, *req.InitialInventory)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lottery": lottery})
}
