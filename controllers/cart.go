// controllers/cart.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"salonstore-backend/models"
	"salonstore-backend/services"
	"salonstore-backend/utils"

	"github.com/gin-gonic/gin"
)

// CartController translates cart requests into the cart manager's four
// operations.
type CartController struct {
	Cart *services.CartService
}

type cartResponse struct {
	Items []models.CartItem `json:"items"`
	Total string            `json:"total"`
	Empty bool              `json:"empty"`
}

func (ct *CartController) snapshot() cartResponse {
	items := ct.Cart.Items()
	return cartResponse{
		Items: items,
		Total: ct.Cart.Total().String(),
		Empty: len(items) == 0,
	}
}

// GetCart renders the current cart with its computed total.
func (ct *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, ct.snapshot())
}

// AddItem adds the product to the cart, aggregating quantity on repeats.
func (ct *CartController) AddItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := ct.Cart.Add(productID); err != nil {
		if errors.Is(err, services.ErrUnknownProduct) {
			utils.RespondWithAlert(c, http.StatusNotFound, models.Notification{
				Title:    "Attention",
				Message:  "That product is not in the catalog.",
				Severity: models.SeverityWarning,
			})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cart": ct.snapshot()})
}

// RemoveItem drops the product's line item; removing an absent id succeeds.
func (ct *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	ct.Cart.Remove(productID)
	c.JSON(http.StatusOK, gin.H{"cart": ct.snapshot()})
}

// Checkout clears a non-empty cart.
func (ct *CartController) Checkout(c *gin.Context) {
	if err := ct.Cart.Checkout(); err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondWithAlert(c, http.StatusConflict, models.Notification{
				Title:    "Attention",
				Message:  "There are no products in the cart.",
				Severity: models.SeverityWarning,
			})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Checkout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart": ct.snapshot(),
		"notification": models.Notification{
			Title:    "Purchase complete",
			Message:  "Thank you for your purchase.",
			Severity: models.SeveritySuccess,
		},
	})
}
