package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/pos_backend/internal/ports"
	"github.com/Gunvolt24/pos_backend/internal/usecase"
	"github.com/Gunvolt24/pos_backend/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-слой поверх доменных сервисов.
type Handler struct {
	orders         *usecase.OrderService
	menu           *usecase.MenuService
	inventory      *usecase.InventoryService
	accounts       *usecase.AccountService
	reports        *usecase.ReportService
	log            ports.Logger
	handlerTimeout time.Duration
}

func NewHandler(
	orders *usecase.OrderService,
	menu *usecase.MenuService,
	inventory *usecase.InventoryService,
	accounts *usecase.AccountService,
	reports *usecase.ReportService,
	log ports.Logger,
	handlerTimeout time.Duration,
) *Handler {
	return &Handler{
		orders:         orders,
		menu:           menu,
		inventory:      inventory,
		accounts:       accounts,
		reports:        reports,
		log:            log,
		handlerTimeout: handlerTimeout,
	}
}

// reqCtx — контекст запроса с таймаутом обработчика (0 — без таймаута).
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.handlerTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.handlerTimeout)
}

// NewRouter — собирает gin-роутер; otelServiceName непустой включает otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Заказы.
	r.POST("/api/addOrder", h.addOrder)
	r.POST("/api/updateOrder/:orderKey", h.updateOrder)
	r.GET("/getOrderByKey/:orderKey", h.getOrderByKey)
	r.GET("/api/getOrderComponents/:orderKey", h.getOrderComponents)
	r.GET("/api/getOrders", h.getOrders)
	r.POST("/api/getOrdersInfo", h.getOrdersInfo)

	// Меню.
	r.GET("/getMenuItems", h.getMenuItems)
	r.GET("/getMenuComponents", h.getMenuComponents)
	r.GET("/getCategories", h.getCategories)
	r.POST("/populateregions", h.populateRegions)
	r.POST("/populatemenulist", h.populateMenuList)
	r.POST("/populatemenuitems", h.populateMenuItems)
	r.PUT("/api/addMenuItem", h.addMenuItem)
	r.PUT("/api/changePrice/:id", h.changePrice)
	r.PUT("/api/changeName/:id", h.changeName)
	r.PUT("/api/hideItem/:name", h.hideItem)
	r.PUT("/api/activateItem/:name", h.activateItem)
	r.DELETE("/deleteMenuItem/:id", h.deleteMenuItem)

	// Склад.
	r.GET("/getIngredients", h.getIngredients)
	r.GET("/getIngredientsWithData", h.getIngredientsWithData)
	r.POST("/addIngredient/:name", h.addIngredient)
	r.DELETE("/deleteIngredient/:id", h.deleteIngredient)
	r.PUT("/toggleSinker/:id", h.toggleSinker)
	r.PUT("/toggleTopping/:id", h.toggleTopping)
	r.GET("/getBatches", h.getBatches)
	r.GET("/getBatchesByIngredient/:id", h.getBatchesByIngredient)
	r.POST("/addBatch", h.addBatch)
	r.POST("/removeBatch", h.removeBatch)
	r.POST("/addAmountToBatch", h.addAmountToBatch)
	r.POST("/removeAmountToBatch", h.removeAmountToBatch)
	r.POST("/setBatchAmount", h.setBatchAmount)
	r.GET("/getTotalAmount/:ingredientId", h.getTotalAmount)

	// Учётные записи.
	r.GET("/getAccount", h.getAccount)
	r.GET("/viewUsers", h.viewUsers)
	r.POST("/addUser", h.addUser)
	r.POST("/removeUser", h.removeUser)
	r.POST("/editUser", h.editUser)
	r.PUT("/changePermission", h.changePermission)

	// Отчёты.
	r.GET("/salesReport", h.salesReport)
	r.GET("/restockReport", h.restockReport)
	r.GET("/restockList", h.restockList)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// fail — единый формат ошибки: {"success": false, "message": ...}.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// isValidationError — ошибка доменной валидации → 400, а не 500.
func isValidationError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidInput)
}
