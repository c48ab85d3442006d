package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/services"
	"github.com/zefilho/snack-pos/utils"
)

// SalesController exposes the transaction ledger and its statistics.
type SalesController struct {
	sales *services.SalesService
}

func NewSalesController(sales *services.SalesService) *SalesController {
	return &SalesController{sales: sales}
}

// GetTransactions lists the ledger, newest first. With filter parameters it
// queries the store directly; otherwise it serves the cache, reloading when
// ?refresh=true is passed.
func (sc *SalesController) GetTransactions(c *gin.Context) {
	filter := backend.TransactionFilter{
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
		PaymentMethod: c.Query("payment_method"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	if filter != (backend.TransactionFilter{}) {
		transactions, err := sc.sales.Filtered(c.Request.Context(), filter)
		if err != nil {
			utils.RespondWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, newTransactionViews(transactions))
		return
	}

	if c.Query("refresh") == "true" {
		if err := sc.sales.Refresh(c.Request.Context()); err != nil {
			utils.RespondWithDomainError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, newTransactionViews(sc.sales.Transactions()))
}

// GetDailyStats returns today's figures as reported by the store
func (sc *SalesController) GetDailyStats(c *gin.Context) {
	stats, err := sc.sales.DailyStats(c.Request.Context())
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetPeriodStats returns store-computed figures for a date range. Defaults
// to the current month when the bounds are omitted.
func (sc *SalesController) GetPeriodStats(c *gin.Context) {
	now := time.Now()
	startDate := c.DefaultQuery("start_date", utils.DayString(utils.BeginningOfMonth(now)))
	endDate := c.DefaultQuery("end_date", utils.DayString(now))

	start, err := utils.ParseDay(startDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
		return
	}
	if utils.DaysBetween(start, end) < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "start_date must not be after end_date")
		return
	}

	stats, err := sc.sales.PeriodStats(c.Request.Context(), startDate, endDate)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
