package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/services"
	"github.com/zefilho/snack-pos/utils"
)

// AnnotationController exposes the customer-annotation aggregate operations.
type AnnotationController struct {
	annotations *services.AnnotationService
}

func NewAnnotationController(annotations *services.AnnotationService) *AnnotationController {
	return &AnnotationController{annotations: annotations}
}

// CreateAnnotationInput defines the expected JSON structure for opening an annotation
type CreateAnnotationInput struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// CreateAnnotation opens an annotation for a registered customer
func (ac *AnnotationController) CreateAnnotation(c *gin.Context) {
	var input CreateAnnotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	annotation, err := ac.annotations.Create(c.Request.Context(), input.CustomerID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderView(annotation))
}

// GetAnnotations lists the cached annotations, reloading them first when
// ?refresh=true is passed
func (ac *AnnotationController) GetAnnotations(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if err := ac.annotations.Refresh(c.Request.Context()); err != nil {
			utils.RespondWithDomainError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, newOrderViews(ac.annotations.Annotations()))
}

// GetAnnotation returns one annotation by identifier
func (ac *AnnotationController) GetAnnotation(c *gin.Context) {
	annotation, err := ac.annotations.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(annotation))
}

// AddItem adds a quantity of a catalog item to an open annotation
func (ac *AnnotationController) AddItem(c *gin.Context) {
	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	annotation, err := ac.annotations.AddItem(c.Request.Context(), c.Param("id"), input.MenuItemID, input.Quantity)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderView(annotation))
}

// CloseAnnotation settles an annotation; the store closes it and records
// the transaction in one call
func (ac *AnnotationController) CloseAnnotation(c *gin.Context) {
	var input CloseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	annotation, txn, err := ac.annotations.Close(c.Request.Context(), c.Param("id"), input.PaymentMethod)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"annotation":  newOrderView(annotation),
		"transaction": newTransactionView(txn),
	})
}
