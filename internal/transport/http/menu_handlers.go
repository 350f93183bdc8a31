package rest

import (
	"net/http"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// addMenuItemRequest — тело addMenuItem; категория задаётся именем,
// состав — списком ингредиентов с расходом.
type addMenuItemRequest struct {
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	CategoryName        string  `json:"categoryName"`
	Region              int64   `json:"region"`
	SelectedIngredients []struct {
		ID       int64 `json:"id"`
		Quantity int64 `json:"quantity"`
	} `json:"selectedIngredients"`
}

func (h *Handler) getMenuItems(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	items, err := h.menu.MenuItems(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching menu items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) getMenuComponents(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	components, err := h.menu.MenuComponents(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching menu components")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": components})
}

func (h *Handler) getCategories(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	categories, err := h.menu.Categories(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

func (h *Handler) populateRegions(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	regions, err := h.menu.Regions(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching regions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "regions": regions})
}

func (h *Handler) populateMenuList(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	menuCategories, err := h.menu.PopulateMenuList(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error populating menu list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menuCategories": menuCategories})
}

func (h *Handler) populateMenuItems(c *gin.Context) {
	var req struct {
		CategoryName string `json:"categoryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CategoryName == "" {
		fail(c, http.StatusBadRequest, "categoryName is required")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	items, found, err := h.menu.PopulateMenuItems(ctx, req.CategoryName)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error populating menu items")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

func (h *Handler) addMenuItem(c *gin.Context) {
	var req addMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.CategoryName == "" {
		fail(c, http.StatusBadRequest, "invalid request data")
		return
	}

	components := make([]domain.MenuComponent, 0, len(req.SelectedIngredients))
	for _, ing := range req.SelectedIngredients {
		components = append(components, domain.MenuComponent{
			IngredientID: ing.ID,
			Amount:       ing.Quantity,
		})
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	item := domain.MenuItem{
		Name:      req.Name,
		Price:     req.Price,
		RegionID:  req.Region,
		IsVisible: true,
	}
	_, found, err := h.menu.AddMenuItemToCategory(ctx, item, req.CategoryName, components)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added successfully"})
}

func (h *Handler) changePrice(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.menu.ChangePrice(ctx, id, req.Price); err != nil {
		fail(c, http.StatusInternalServerError, "Error updating the price of a menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated successfully"})
}

func (h *Handler) changeName(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		fail(c, http.StatusBadRequest, "invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.menu.ChangeName(ctx, id, req.Name); err != nil {
		fail(c, http.StatusInternalServerError, "Error updating the name of a menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Name updated successfully"})
}

func (h *Handler) hideItem(c *gin.Context) {
	h.setVisibility(c, false, "Menu item removed successfully")
}

func (h *Handler) activateItem(c *gin.Context) {
	h.setVisibility(c, true, "Menu item brought back successfully")
}

func (h *Handler) setVisibility(c *gin.Context, visible bool, okMessage string) {
	name := c.Param("name")
	if name == "" {
		fail(c, http.StatusBadRequest, "empty name")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	found, err := h.menu.SetVisibility(ctx, name, visible)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error updating menu item")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMessage})
}

func (h *Handler) deleteMenuItem(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	found, err := h.menu.DeleteMenuItem(ctx, id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error deleting menu item")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted successfully"})
}
