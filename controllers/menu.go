package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/services"
	"github.com/zefilho/snack-pos/utils"
)

// MenuController exposes the catalog cache.
type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// CreateMenuItemInput defines the expected JSON structure for creating a menu item
type CreateMenuItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Category string  `json:"category"`
}

// CreateMenuItem adds a new item to the catalog
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var input CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := mc.menu.Add(c.Request.Context(), input.Name, input.Price, input.Category)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetMenuItems returns the cached catalog, reloading it first when
// ?refresh=true is passed
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if err := mc.menu.Refresh(c.Request.Context()); err != nil {
			utils.RespondWithDomainError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, mc.menu.Items())
}

// GetCategories returns the known category labels
func (mc *MenuController) GetCategories(c *gin.Context) {
	categories, err := mc.menu.Categories(c.Request.Context())
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// DeleteMenuItem removes an item from the catalog
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	if err := mc.menu.Remove(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
