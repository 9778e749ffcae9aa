package router

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/internal/service"
	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/global"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// Handler exposes the service layer over HTTP. Ping is optional and
// backs the health endpoint.
type Handler struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Products  *service.ProductService
	Carts     *service.CartService
	Analytics *service.AnalyticsService
	Ping      func(ctx context.Context) error
}

func respondError(c *gin.Context, err error) {
	apiErr := apierror.From(err)
	if apiErr.Status >= http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	c.JSON(apiErr.Status, global.ErrorResponse(apiErr.Message, nil))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if h.Ping != nil {
		if err := h.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
			return
		}
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// Auth

func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_failed"},
		}))
		return
	}

	resp, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, global.SuccessResponse(resp))
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_failed"},
		}))
		return
	}

	resp, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(resp))
}

// Users

// pathUserID parses :userId and enforces that users only reach their own
// record.
func pathUserID(c *gin.Context) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid user id", []global.ValidationError{
			{Field: "userId", Message: "must be a valid mongo id", Code: "invalid_format"},
		}))
		return bson.ObjectID{}, false
	}

	if user := CurrentUser(c); user == nil || user.ID != id {
		c.JSON(http.StatusForbidden, global.ErrorResponse("Forbidden", nil))
		return bson.ObjectID{}, false
	}
	return id, true
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := h.Users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("q") == "address" {
		c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"address": user.Address}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(user))
}

func (h *Handler) SetAddress(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	var req models.SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "address", Message: "address is required and must be at least 20 characters", Code: "validation_failed"},
		}))
		return
	}

	user, err := h.Users.SetAddress(c.Request.Context(), id, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"address": user.Address}))
}

// Products

func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.Products.GetProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(products))
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "productId", Message: "must be a valid mongo id", Code: "invalid_format"},
		}))
		return
	}

	product, err := h.Products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

// Cart

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.Carts.GetCartByUser(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cart))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_failed"},
		}))
		return
	}

	productID, err := bson.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "productId", Message: "must be a valid mongo id", Code: "invalid_format"},
		}))
		return
	}

	cart, err := h.Carts.AddProductToCart(c.Request.Context(), CurrentUser(c), productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cart))
}

// UpdateCart overwrites a line item's quantity. Quantity zero removes
// the line item and responds 204 like an explicit delete.
func (h *Handler) UpdateCart(c *gin.Context) {
	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_failed"},
		}))
		return
	}

	productID, err := bson.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "productId", Message: "must be a valid mongo id", Code: "invalid_format"},
		}))
		return
	}

	if *req.Quantity == 0 {
		if err := h.Carts.DeleteProductFromCart(c.Request.Context(), CurrentUser(c), productID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	cart, err := h.Carts.UpdateProductInCart(c.Request.Context(), CurrentUser(c), productID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cart))
}

func (h *Handler) DeleteFromCart(c *gin.Context) {
	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "productId", Message: "must be a valid mongo id", Code: "invalid_format"},
		}))
		return
	}

	if err := h.Carts.DeleteProductFromCart(c.Request.Context(), CurrentUser(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	if err := h.Carts.Checkout(c.Request.Context(), CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Analytics

func (h *Handler) GetWalletSegments(c *gin.Context) {
	result, err := h.Analytics.WalletSegments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(result))
}

func (h *Handler) GenerateAISpendingReport(c *gin.Context) {
	report, err := h.Analytics.SpendingReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(report))
}
