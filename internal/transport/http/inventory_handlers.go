package rest

import (
	"net/http"

	"github.com/Gunvolt24/pos_backend/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getIngredients(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	ingredients, err := h.inventory.Ingredients(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching ingredients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ingredients})
}

func (h *Handler) getIngredientsWithData(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	ingredients, err := h.inventory.IngredientsWithData(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching ingredients with data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ingredients})
}

func (h *Handler) addIngredient(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		fail(c, http.StatusBadRequest, "empty name")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	// Цена по умолчанию — 1, правится отдельной операцией.
	if _, err := h.inventory.AddIngredient(ctx, name, 1); err != nil {
		fail(c, http.StatusInternalServerError, "Error adding ingredient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ingredient added successfully"})
}

func (h *Handler) deleteIngredient(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.inventory.DeleteIngredient(ctx, id); err != nil {
		fail(c, http.StatusInternalServerError, "Error deleting ingredient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ingredient deleted successfully"})
}

func (h *Handler) toggleSinker(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.inventory.ToggleSinker(ctx, id); err != nil {
		fail(c, http.StatusInternalServerError, "Error toggling sinker value")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sinker value toggled successfully"})
}

func (h *Handler) toggleTopping(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.inventory.ToggleTopping(ctx, id); err != nil {
		fail(c, http.StatusInternalServerError, "Error toggling topping value")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topping value toggled successfully"})
}

func (h *Handler) getBatches(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	batches, err := h.inventory.Batches(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching batches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": batches})
}

func (h *Handler) getBatchesByIngredient(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	batches, err := h.inventory.BatchesByIngredient(ctx, id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch batches by ingredient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": batches})
}

func (h *Handler) addBatch(c *gin.Context) {
	var req struct {
		InDate       int64 `json:"in_date"`
		Amount       int64 `json:"amount"`
		IngredientID int64 `json:"ingredient_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if _, err := h.inventory.AddBatch(ctx, req.InDate, req.Amount, req.IngredientID); err != nil {
		if isValidationError(err) {
			fail(c, http.StatusBadRequest, "Invalid request data")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to add batch")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Batch added successfully"})
}

func (h *Handler) removeBatch(c *gin.Context) {
	var req struct {
		BatchKey int64 `json:"batch_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BatchKey <= 0 {
		fail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	found, err := h.inventory.RemoveBatch(ctx, req.BatchKey)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to remove batch")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "Batch not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Batch removed successfully"})
}

func (h *Handler) addAmountToBatch(c *gin.Context) {
	var req struct {
		AmountToAdd int64 `json:"amountToAdd"`
		BatchKey    int64 `json:"batchKey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AmountToAdd == 0 || req.BatchKey <= 0 {
		fail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.inventory.AddAmount(ctx, req.BatchKey, req.AmountToAdd); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add batch amount")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Batch amount added successfully"})
}

func (h *Handler) removeAmountToBatch(c *gin.Context) {
	var req struct {
		AmountToRemove int64 `json:"amountToRemove"`
		BatchKey       int64 `json:"batchKey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AmountToRemove == 0 || req.BatchKey <= 0 {
		fail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.inventory.AddAmount(ctx, req.BatchKey, -req.AmountToRemove); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to remove batch amount")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Batch amount removed successfully"})
}

func (h *Handler) setBatchAmount(c *gin.Context) {
	var req struct {
		Amount   int64 `json:"amount"`
		BatchKey int64 `json:"batchKey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BatchKey <= 0 {
		fail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.inventory.SetAmount(ctx, req.BatchKey, req.Amount); err != nil {
		if isValidationError(err) {
			fail(c, http.StatusBadRequest, "Invalid request data")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to set batch amount")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Batch amount updated successfully"})
}

func (h *Handler) getTotalAmount(c *gin.Context) {
	id, err := httpx.ParseInt64Param(c, "ingredientId")
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	total, err := h.inventory.TotalAmount(ctx, id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error calculating total amount")
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalAmount": total})
}
