package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminOrderDetail 管理端订单返回，补充下单用户信息
type AdminOrderDetail struct {
	models.Order
	UserEmail string `json:"user_email,omitempty"`
	UserName  string `json:"user_name,omitempty"`
}

// UpdateOrderStatusRequest 订单状态流转请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) buildAdminOrderDetail(order *models.Order) AdminOrderDetail {
	detail := AdminOrderDetail{Order: *order}
	user, err := h.UserRepo.GetByID(order.UserID)
	if err == nil && user != nil {
		detail.UserEmail = user.Email
		detail.UserName = user.Name
	}
	return detail
}

// AdminListOrders 管理端订单列表
func (h *Handler) AdminListOrders(c *gin.Context) {
	if _, ok := getAdminID(c); !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	var userID uint
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			userID = uint(parsed)
		}
	}

	orders, total, err := h.OrderService.List(service.OrderListInput{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   status,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrderStatusUnknown) {
			respondError(c, response.CodeBadRequest, "order status unknown", nil)
			return
		}
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}

	items := make([]AdminOrderDetail, 0, len(orders))
	for i := range orders {
		items = append(items, h.buildAdminOrderDetail(&orders[i]))
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// AdminGetOrder 管理端订单详情
func (h *Handler) AdminGetOrder(c *gin.Context) {
	if _, ok := getAdminID(c); !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "order id invalid", nil)
		return
	}

	order, err := h.OrderService.Get(uint(orderID), 0)
	if err != nil {
		h.respondAdminOrderError(c, err)
		return
	}
	response.Success(c, h.buildAdminOrderDetail(order))
}

// AdminUpdateOrderStatus 管理端订单状态流转
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	if _, ok := getAdminID(c); !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "order id invalid", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(uint(orderID), strings.TrimSpace(req.Status))
	if err != nil {
		h.respondAdminOrderError(c, err)
		return
	}
	response.Success(c, h.buildAdminOrderDetail(order))
}

// AdminCompleteTrackingStep 管理端完成物流步骤
func (h *Handler) AdminCompleteTrackingStep(c *gin.Context) {
	if _, ok := getAdminID(c); !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "order id invalid", nil)
		return
	}
	stepID, err := strconv.ParseUint(c.Param("step_id"), 10, 64)
	if err != nil || stepID == 0 {
		respondError(c, response.CodeBadRequest, "tracking step id invalid", nil)
		return
	}

	order, err := h.OrderService.CompleteTrackingStep(uint(orderID), uint(stepID))
	if err != nil {
		h.respondAdminOrderError(c, err)
		return
	}
	response.Success(c, h.buildAdminOrderDetail(order))
}

// AdminOrderStats 管理端订单状态统计
func (h *Handler) AdminOrderStats(c *gin.Context) {
	if _, ok := getAdminID(c); !ok {
		return
	}

	stats, err := h.OrderService.Stats(0)
	if err != nil {
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}
	response.Success(c, stats)
}

func (h *Handler) respondAdminOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(c, response.CodeNotFound, "order not found", nil)
	case errors.Is(err, service.ErrTrackingStepNotFound):
		respondError(c, response.CodeNotFound, "tracking step not found", nil)
	case errors.Is(err, service.ErrOrderStatusUnknown):
		respondError(c, response.CodeBadRequest, "order status unknown", nil)
	case errors.Is(err, service.ErrStatusTransitionInvalid):
		respondError(c, response.CodeConflict, "status transition not allowed", nil)
	case errors.Is(err, service.ErrTrackingStepOutOfOrder):
		respondError(c, response.CodeConflict, "previous tracking steps not completed", nil)
	default:
		respondError(c, response.CodeInternal, "order update failed", err)
	}
}
