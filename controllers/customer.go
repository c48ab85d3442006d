package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/services"
	"github.com/zefilho/snack-pos/utils"
)

// CustomerController exposes the customer registry cache.
type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CreateCustomer registers a new customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer, err := cc.customers.Add(c.Request.Context(), input.Name, input.Phone)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers returns the cached registry, reloading it first when
// ?refresh=true is passed
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if err := cc.customers.Refresh(c.Request.Context()); err != nil {
			utils.RespondWithDomainError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, cc.customers.Customers())
}

// GetCustomer returns one customer by identifier
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, err := cc.customers.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer; the walk-in sentinel is protected
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := cc.customers.Remove(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
