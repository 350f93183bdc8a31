package rest

import (
	"net/http"

	"github.com/Gunvolt24/pos_backend/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) salesReport(c *gin.Context) {
	from, to, err := httpx.ParseRangeQuery(c, "startTime", "endTime")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	report, err := h.reports.SalesReport(ctx, from, to)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) restockReport(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rows, err := h.reports.RestockReport(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	names := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		names = append(names, gin.H{"ingredientName": row.Name})
	}
	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"message":               "Restock report generated successfully",
		"ingredientsLessThan50": names,
	})
}

func (h *Handler) restockList(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rows, err := h.reports.RestockReport(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}
