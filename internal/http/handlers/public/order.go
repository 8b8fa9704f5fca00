package public

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemView 订单项响应
type OrderItemView struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Size      string       `json:"size"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Image     string       `json:"image"`
}

// TrackingStepView 物流步骤响应
type TrackingStepView struct {
	ID          uint       `json:"id"`
	SortOrder   int        `json:"sort_order"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// OrderView 订单响应
type OrderView struct {
	ID            uint               `json:"id"`
	OrderNo       string             `json:"order_no"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Subtotal      models.Money       `json:"subtotal"`
	Shipping      models.Money       `json:"shipping"`
	Total         models.Money       `json:"total"`
	CancelledAt   *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []OrderItemView    `json:"items"`
	TrackingSteps []TrackingStepView `json:"tracking_steps"`
}

func buildOrderView(order *models.Order) OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Image:     item.Image,
		})
	}
	steps := make([]TrackingStepView, 0, len(order.TrackingSteps))
	for _, step := range order.TrackingSteps {
		steps = append(steps, TrackingStepView{
			ID:          step.ID,
			SortOrder:   step.SortOrder,
			Label:       step.Label,
			Description: step.Description,
			Completed:   step.Completed,
			CompletedAt: step.CompletedAt,
		})
	}
	return OrderView{
		ID:            order.ID,
		OrderNo:       order.OrderNo,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Total:         order.Total,
		CancelledAt:   order.CancelledAt,
		CreatedAt:     order.CreatedAt,
		Items:         items,
		TrackingSteps: steps,
	}
}

func buildOrderViews(orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, buildOrderView(&orders[i]))
	}
	return views
}

// ListOrders 获取当前用户的订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	pageQuery := c.Query("page")
	pageSizeQuery := c.Query("page_size")
	paginated := pageQuery != "" || pageSizeQuery != ""

	page := 0
	pageSize := 0
	if paginated {
		page, _ = strconv.Atoi(pageQuery)
		pageSize, _ = strconv.Atoi(pageSizeQuery)
		page, pageSize = normalizePagination(page, pageSize)
	}
	status := strings.TrimSpace(c.Query("status"))

	orders, total, err := h.OrderService.List(service.OrderListInput{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   status,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if paginated {
		response.SuccessWithPage(c, buildOrderViews(orders), response.BuildPagination(page, pageSize, total))
		return
	}
	response.Success(c, gin.H{"orders": buildOrderViews(orders), "total": total})
}

// GetOrder 获取当前用户的订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "order id invalid", nil)
		return
	}

	order, err := h.OrderService.Get(uint(orderID), uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, buildOrderView(order))
}

// CancelOrder 取消当前用户的订单
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "order id invalid", nil)
		return
	}

	order, err := h.OrderService.Cancel(uint(orderID), uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, buildOrderView(order))
}

// GetOrderStats 当前用户的订单状态统计
func (h *Handler) GetOrderStats(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	stats, err := h.OrderService.Stats(uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, stats)
}
