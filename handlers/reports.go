package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/reports"
)

// parsePeriod reads ?from= and ?to= as YYYY-MM-DD. A missing from defaults to
// the epoch, a missing to defaults to tomorrow, so an unbounded query covers
// everything.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	from := time.Unix(0, 0)
	to := time.Now().AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func GetProfitAndLoss(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	report, err := reports.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, report)
}

func GetDailyCashFlow(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	entries, err := reports.DailyCashFlow(c.Request.Context(), from, to)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, entries)
}

func GetProductMovement(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	entries, err := reports.ProductMovement(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, entries)
}

func GetInventoryValuation(c *gin.Context) {
	report, err := reports.InventoryValuation(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, report)
}

func GetBestSellers(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	entries, err := reports.BestSellers(c.Request.Context(), from, to, limit)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, entries)
}

func ExportProfitAndLossExcel(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	data, err := reports.ExportProfitAndLossExcel(c.Request.Context(), from, to)
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="profit-and-loss.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func ExportInventoryValuationExcel(c *gin.Context) {
	data, err := reports.ExportInventoryValuationExcel(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventory-valuation.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
