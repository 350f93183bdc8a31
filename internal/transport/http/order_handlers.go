package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/pkg/httpx"
	"github.com/Gunvolt24/pos_backend/pkg/validate"
	"github.com/gin-gonic/gin"
)

// orderRequest — тело addOrder/updateOrder: items — пары [menu_item, count].
type orderRequest struct {
	Items [][2]int64 `json:"items"`
}

func (r orderRequest) lineItems() []domain.LineItem {
	items := make([]domain.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.LineItem{MenuItemID: it[0], Quantity: it[1]})
	}
	return items
}

// ordersInfoRequest — тело getOrdersInfo: orders — пары [order_key, timestamp].
type ordersInfoRequest struct {
	Orders [][2]int64 `json:"orders"`
}

func (h *Handler) addOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	orderKey, err := h.orders.PlaceOrder(ctx, req.lineItems())
	if err != nil {
		if errors.Is(err, validate.ErrInvalidOrder) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorf(ctx, "PlaceOrder failed: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order_key": orderKey})
}

func (h *Handler) updateOrder(c *gin.Context) {
	orderKey, err := httpx.ParseInt64Param(c, "orderKey")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.orders.ReplaceOrder(ctx, orderKey, req.lineItems()); err != nil {
		if errors.Is(err, validate.ErrInvalidOrder) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorf(ctx, "ReplaceOrder failed key=%d: %v", orderKey, err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) getOrderByKey(c *gin.Context) {
	orderKey, err := httpx.ParseInt64Param(c, "orderKey")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, orderKey)
	if err != nil {
		h.log.Errorf(ctx, "GetOrder failed key=%d: %v", orderKey, err)
		fail(c, http.StatusInternalServerError, "Error retrieving order")
		return
	}
	if order == nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) getOrderComponents(c *gin.Context) {
	orderKey, err := httpx.ParseInt64Param(c, "orderKey")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	components, err := h.orders.OrderComponents(ctx, orderKey)
	if err != nil {
		h.log.Errorf(ctx, "OrderComponents failed key=%d: %v", orderKey, err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Order components retrieved successfully",
		"orderComponents": components,
	})
}

func (h *Handler) getOrders(c *gin.Context) {
	from, to, err := httpx.ParseRangeSeconds(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	orders, err := h.orders.OrdersInRange(ctx, from, to)
	if err != nil {
		h.log.Errorf(ctx, "OrdersInRange failed [%d,%d]: %v", from, to, err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if orders == nil {
		orders = []domain.OrderRef{}
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrdersInfo(c *gin.Context) {
	var req ordersInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request data")
		return
	}

	keys := make([]int64, 0, len(req.Orders))
	for _, o := range req.Orders {
		keys = append(keys, o[0])
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	info, skipped, err := h.orders.OrdersInfo(ctx, keys)
	if err != nil {
		h.log.Errorf(ctx, "OrdersInfo failed: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Header("X-Skipped-Components", strconv.Itoa(skipped))
	c.JSON(http.StatusOK, info)
}
