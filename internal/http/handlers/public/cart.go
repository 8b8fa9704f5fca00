package public

import (
	"strconv"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest 购物车项数量更新请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartItemView 购物车项响应
type CartItemView struct {
	ItemID    uint         `json:"item_id"`
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Size      string       `json:"size"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Image     string       `json:"image"`
}

// CartView 购物车响应
type CartView struct {
	Items    []CartItemView `json:"items"`
	Subtotal models.Money   `json:"subtotal"`
	Shipping models.Money   `json:"shipping"`
	Total    models.Money   `json:"total"`
}

func buildCartView(view *service.CartView) CartView {
	items := make([]CartItemView, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, CartItemView{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Image:     item.Image,
		})
	}
	return CartView{
		Items:    items,
		Subtotal: view.Subtotal,
		Shipping: view.Shipping,
		Total:    view.Total,
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	view, err := h.CartService.Read(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(view))
}

// AddCartItem 加购
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CartService.AddItem(service.AddItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}); err != nil {
		respondCartError(c, err)
		return
	}

	view, err := h.CartService.Read(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(view))
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "cart item id invalid", nil)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CartService.UpdateItem(uid, uint(itemID), req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	view, err := h.CartService.Read(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(view))
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "cart item id invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
		respondCartError(c, err)
		return
	}

	view, err := h.CartService.Read(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(view))
}
