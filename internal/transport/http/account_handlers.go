package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getAccount(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		fail(c, http.StatusBadRequest, "Invalid email parameter")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	account, err := h.accounts.Account(ctx, email)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAccount) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if account == nil {
		fail(c, http.StatusNotFound, "Account not found")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) viewUsers(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	users, err := h.accounts.Accounts(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func (h *Handler) addUser(c *gin.Context) {
	var req struct {
		Email      string `json:"email"`
		Permission int    `json:"permission"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and Permission are required")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	account := domain.Account{Email: req.Email, Permission: req.Permission}
	if err := h.accounts.AddAccount(ctx, account); err != nil {
		if errors.Is(err, usecase.ErrInvalidAccount) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "Error adding user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User added successfully"})
}

func (h *Handler) removeUser(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		fail(c, http.StatusBadRequest, "Email is required")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	found, err := h.accounts.RemoveAccount(ctx, req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAccount) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to remove account")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "Account not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account removed successfully"})
}

// editUser и changePermission — одна операция с разными именами;
// оба маршрута оставлены ради совместимости с фронтендом.
func (h *Handler) editUser(c *gin.Context) {
	h.setPermission(c)
}

func (h *Handler) changePermission(c *gin.Context) {
	h.setPermission(c)
}

func (h *Handler) setPermission(c *gin.Context) {
	var req struct {
		Email         string `json:"email"`
		NewPermission int    `json:"newPermission"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		fail(c, http.StatusBadRequest, "Email and new permission are required")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	found, err := h.accounts.SetPermission(ctx, req.Email, req.NewPermission)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAccount) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully"})
}
