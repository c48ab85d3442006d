package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/services"
	"github.com/zefilho/snack-pos/utils"
)

// TabController exposes the named-tab aggregate operations.
type TabController struct {
	tabs *services.TabService
	menu *services.MenuService
}

func NewTabController(tabs *services.TabService, menu *services.MenuService) *TabController {
	return &TabController{tabs: tabs, menu: menu}
}

// CreateTabInput defines the expected JSON structure for opening a tab
type CreateTabInput struct {
	Name string `json:"name" binding:"required"`
}

// AddItemInput defines the expected JSON structure for adding a line
type AddItemInput struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// CloseInput defines the expected JSON structure for settling an order
type CloseInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// CreateTab opens a new named tab
func (tc *TabController) CreateTab(c *gin.Context) {
	var input CreateTabInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tab, err := tc.tabs.Create(input.Name)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderView(tab))
}

// GetTabs lists every tab of the session
func (tc *TabController) GetTabs(c *gin.Context) {
	c.JSON(http.StatusOK, newOrderViews(tc.tabs.Tabs()))
}

// GetTab returns one tab by identifier
func (tc *TabController) GetTab(c *gin.Context) {
	tab, err := tc.tabs.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(tab))
}

// AddItem adds a quantity of a catalog item to an open tab. The menu item
// is resolved from the catalog cache and snapshotted into the line.
func (tc *TabController) AddItem(c *gin.Context) {
	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	menuItem, err := tc.menu.Get(input.MenuItemID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	tab, err := tc.tabs.AddItem(c.Param("id"), menuItem, input.Quantity)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderView(tab))
}

// RemoveItem drops a whole line from an open tab
func (tc *TabController) RemoveItem(c *gin.Context) {
	tab, err := tc.tabs.RemoveItem(c.Param("id"), c.Param("menuItemId"))
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(tab))
}

// CloseTab settles a tab and records its transaction
func (tc *TabController) CloseTab(c *gin.Context) {
	var input CloseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tab, txn, err := tc.tabs.Close(c.Request.Context(), c.Param("id"), input.PaymentMethod)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tab":         newOrderView(tab),
		"transaction": newTransactionView(txn),
	})
}
