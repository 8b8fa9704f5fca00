package service

import (
	"time"

	"github.com/shopnext/internal/constants"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"
)

// OrderListInput 订单列表查询输入。UserID 为 0 表示管理端全量视图。
type OrderListInput struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// OrderStats 按状态统计的订单数量
type OrderStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Shipped   int64 `json:"shipped"`
	Delivered int64 `json:"delivered"`
	Cancelled int64 `json:"cancelled"`
}

// OrderService 订单生命周期服务
type OrderService struct {
	orderRepo repository.OrderRepository
	notifier  OrderNotifier
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{orderRepo: orderRepo, notifier: notifier}
}

// List 查询订单列表，新订单在前。带 UserID 时只返回该用户的订单。
func (s *OrderService) List(input OrderListInput) ([]models.Order, int64, error) {
	if input.Status != "" && !IsValidOrderStatus(input.Status) {
		return nil, 0, ErrOrderStatusUnknown
	}
	orders, total, err := s.orderRepo.List(repository.OrderListFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
		UserID:   input.UserID,
		Status:   input.Status,
	})
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// Get 按 ID 获取订单。userID 非 0 时限定归属，越界查询按不存在处理。
func (s *OrderService) Get(orderID, userID uint) (*models.Order, error) {
	var order *models.Order
	var err error
	if userID != 0 {
		order, err = s.orderRepo.GetByIDAndUser(orderID, userID)
	} else {
		order, err = s.orderRepo.GetByID(orderID)
	}
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus 管理端状态流转：只允许
// pending→shipped、pending→cancelled、shipped→delivered、shipped→cancelled。
// 流转成功后同步物流步骤并投递状态变更邮件。
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !IsValidOrderStatus(status) {
		return nil, ErrOrderStatusUnknown
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !canTransition(order.Status, status) {
		return nil, ErrStatusTransitionInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{}
	if status == constants.OrderStatusCancelled {
		updates["cancelled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(orderID, status, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	s.syncStepsForStatus(order, status, now)
	s.notifyStatus(orderID, status)
	return s.Get(orderID, 0)
}

// Cancel 用户取消自己的订单。取消不受状态机限制，任何状态都可以取消。
func (s *OrderService) Cancel(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}
	if order.Status == constants.OrderStatusCancelled {
		return order, nil
	}

	now := time.Now()
	updates := map[string]interface{}{"cancelled_at": now}
	if err := s.orderRepo.UpdateStatus(orderID, constants.OrderStatusCancelled, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	s.notifyStatus(orderID, constants.OrderStatusCancelled)
	return s.Get(orderID, userID)
}

// CompleteTrackingStep 管理端把某个物流步骤标记完成。
// 步骤只能从前往后推进：前一步未完成时拒绝。已完成的步骤不可回退。
func (s *OrderService) CompleteTrackingStep(orderID, stepID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	step, err := s.orderRepo.GetStep(orderID, stepID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if step == nil {
		return nil, ErrTrackingStepNotFound
	}
	if step.Completed {
		return order, nil
	}
	for _, other := range order.TrackingSteps {
		if other.SortOrder < step.SortOrder && !other.Completed {
			return nil, ErrTrackingStepOutOfOrder
		}
	}
	if err := s.orderRepo.CompleteStep(stepID, time.Now()); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	return s.Get(orderID, 0)
}

// Stats 订单状态统计。userID 非 0 时只统计该用户的订单。
func (s *OrderService) Stats(userID uint) (*OrderStats, error) {
	counts, err := s.orderRepo.CountByStatus(userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	stats := &OrderStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case constants.OrderStatusPending:
			stats.Pending = c.Count
		case constants.OrderStatusShipped:
			stats.Shipped = c.Count
		case constants.OrderStatusDelivered:
			stats.Delivered = c.Count
		case constants.OrderStatusCancelled:
			stats.Cancelled = c.Count
		}
	}
	return stats, nil
}

// syncStepsForStatus 按新状态补齐物流步骤：前 N 步全部标记完成。
// cancelled 不触碰物流步骤，时间线停留在取消那一刻。
func (s *OrderService) syncStepsForStatus(order *models.Order, status string, now time.Time) {
	target := stepIndexForStatus(status)
	if target < 0 {
		return
	}
	for _, step := range order.TrackingSteps {
		if step.SortOrder > target || step.Completed {
			continue
		}
		if err := s.orderRepo.CompleteStep(step.ID, now); err != nil {
			logger.Warnw("sync tracking step failed", "order_id", order.ID, "step_id", step.ID, "error", err)
		}
	}
}

func (s *OrderService) notifyStatus(orderID uint, status string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.EnqueueOrderStatusEmail(orderID, status); err != nil {
		logger.Warnw("enqueue order status email failed", "order_id", orderID, "status", status, "error", err)
	}
}
