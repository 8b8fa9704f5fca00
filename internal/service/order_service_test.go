package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopnext/internal/constants"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB, *recordingNotifier) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	notifier := &recordingNotifier{}
	svc := NewOrderService(repository.NewOrderRepository(db), notifier)
	return svc, db, notifier
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status string, createdAt time.Time) *models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:       fmt.Sprintf("SN%d%d", createdAt.UnixNano(), userID),
		UserID:        userID,
		AddressID:     1,
		PaymentMethod: "cod",
		Status:        status,
		Subtotal:      1000,
		Shipping:      500,
		Total:         1500,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	steps := make([]models.TrackingStep, 0, len(constants.TrackingStepSeeds))
	for i, seed := range constants.TrackingStepSeeds {
		step := models.TrackingStep{
			OrderID:     order.ID,
			SortOrder:   i + 1,
			Label:       seed.Label,
			Description: seed.Description,
		}
		if i == 0 {
			now := createdAt
			step.Completed = true
			step.CompletedAt = &now
		}
		steps = append(steps, step)
	}
	if err := db.Create(&steps).Error; err != nil {
		t.Fatalf("create steps failed: %v", err)
	}
	return &order
}

func TestOrderServiceGetScopedByUser(t *testing.T) {
	svc, db, _ := setupOrderServiceTest(t)
	order := seedOrder(t, db, 1, constants.OrderStatusPending, time.Now())

	got, err := svc.Get(order.ID, 1)
	if err != nil {
		t.Fatalf("get own order failed: %v", err)
	}
	if got.ID != order.ID || len(got.TrackingSteps) != constants.TrackingStepCount {
		t.Fatalf("unexpected order: %+v", got)
	}

	// 他人的订单按不存在处理，不暴露存在性
	if _, err := svc.Get(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got: %v", err)
	}
	if _, err := svc.Get(9999, 1); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got: %v", err)
	}
}

func TestOrderServiceListNewestFirstAndScoped(t *testing.T) {
	svc, db, _ := setupOrderServiceTest(t)
	base := time.Now().Add(-time.Hour)
	oldest := seedOrder(t, db, 1, constants.OrderStatusPending, base)
	middle := seedOrder(t, db, 1, constants.OrderStatusShipped, base.Add(10*time.Minute))
	newest := seedOrder(t, db, 1, constants.OrderStatusPending, base.Add(20*time.Minute))
	seedOrder(t, db, 2, constants.OrderStatusPending, base.Add(30*time.Minute))

	orders, total, err := svc.List(OrderListInput{UserID: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(orders) != 3 {
		t.Fatalf("expected 3 orders for user 1, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ID != newest.ID || orders[2].ID != oldest.ID {
		t.Fatalf("expected newest first ordering, got: %d, %d, %d", orders[0].ID, orders[1].ID, orders[2].ID)
	}

	// 分页
	paged, total, err := svc.List(OrderListInput{UserID: 1, Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if total != 3 || len(paged) != 1 || paged[0].ID != oldest.ID {
		t.Fatalf("unexpected page 2 result: total=%d %+v", total, paged)
	}

	// 状态过滤
	shipped, _, err := svc.List(OrderListInput{UserID: 1, Status: constants.OrderStatusShipped})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(shipped) != 1 || shipped[0].ID != middle.ID {
		t.Fatalf("unexpected filtered result: %+v", shipped)
	}

	if _, _, err := svc.List(OrderListInput{UserID: 1, Status: "paid"}); !errors.Is(err, ErrOrderStatusUnknown) {
		t.Fatalf("expected ErrOrderStatusUnknown, got: %v", err)
	}
}

func TestOrderServiceUpdateStatusTransitions(t *testing.T) {
	svc, db, notifier := setupOrderServiceTest(t)
	order := seedOrder(t, db, 1, constants.OrderStatusPending, time.Now())

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("pending -> shipped failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped, got: %s", updated.Status)
	}
	// 前三步应已完成
	for _, step := range updated.TrackingSteps {
		if step.SortOrder <= 3 && !step.Completed {
			t.Fatalf("expected step %d completed after shipping: %+v", step.SortOrder, step)
		}
		if step.SortOrder > 3 && step.Completed {
			t.Fatalf("expected step %d pending after shipping: %+v", step.SortOrder, step)
		}
	}

	updated, err = svc.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("shipped -> delivered failed: %v", err)
	}
	for _, step := range updated.TrackingSteps {
		if !step.Completed {
			t.Fatalf("expected all steps completed after delivery: %+v", step)
		}
	}

	// delivered 是终态，管理端不能再流转
	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("expected ErrStatusTransitionInvalid, got: %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, "paid"); !errors.Is(err, ErrOrderStatusUnknown) {
		t.Fatalf("expected ErrOrderStatusUnknown, got: %v", err)
	}
	if _, err := svc.UpdateStatus(9999, constants.OrderStatusShipped); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got: %v", err)
	}

	if len(notifier.statuses) != 2 {
		t.Fatalf("expected 2 status emails enqueued, got: %+v", notifier.statuses)
	}
}

func TestOrderServiceUpdateStatusCancelSetsTimestamp(t *testing.T) {
	svc, db, _ := setupOrderServiceTest(t)
	order := seedOrder(t, db, 1, constants.OrderStatusPending, time.Now())

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("pending -> cancelled failed: %v", err)
	}
	if updated.Status != constants.OrderStatusCancelled || updated.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp: %+v", updated)
	}
	// 取消不触碰物流步骤
	for _, step := range updated.TrackingSteps {
		if step.SortOrder > 1 && step.Completed {
			t.Fatalf("cancel must not advance tracking steps: %+v", step)
		}
	}
}

func TestOrderServiceCancelByUser(t *testing.T) {
	svc, db, _ := setupOrderServiceTest(t)
	order := seedOrder(t, db, 1, constants.OrderStatusDelivered, time.Now())

	// 用户取消不受状态机限制，已送达也可以取消
	cancelled, err := svc.Cancel(order.ID, 1)
	if err != nil {
		t.Fatalf("cancel delivered order failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled order: %+v", cancelled)
	}

	// 重复取消幂等
	again, err := svc.Cancel(order.ID, 1)
	if err != nil {
		t.Fatalf("repeat cancel failed: %v", err)
	}
	if again.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected still cancelled: %+v", again)
	}

	other := seedOrder(t, db, 2, constants.OrderStatusPending, time.Now())
	if _, err := svc.Cancel(other.ID, 1); !errors.Is(err, ErrOrderAccessDenied) {
		t.Fatalf("expected ErrOrderAccessDenied, got: %v", err)
	}
	if _, err := svc.Cancel(9999, 1); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got: %v", err)
	}
}

func TestOrderServiceCompleteTrackingStepMonotonic(t *testing.T) {
	svc, db, _ := setupOrderServiceTest(t)
	order := seedOrder(t, db, 1, constants.OrderStatusPending, time.Now())

	loaded, err := svc.Get(order.ID, 0)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	steps := loaded.TrackingSteps

	// 跳步不允许
	if _, err := svc.CompleteTrackingStep(order.ID, steps[2].ID); !errors.Is(err, ErrTrackingStepOutOfOrder) {
		t.Fatalf("expected ErrTrackingStepOutOfOrder, got: %v", err)
	}

	updated, err := svc.CompleteTrackingStep(order.ID, steps[1].ID)
	if err != nil {
		t.Fatalf("complete step 2 failed: %v", err)
	}
	if !updated.TrackingSteps[1].Completed || updated.TrackingSteps[1].CompletedAt == nil {
		t.Fatalf("expected step 2 completed: %+v", updated.TrackingSteps[1])
	}

	// 已完成的步骤重复标记是幂等的
	if _, err := svc.CompleteTrackingStep(order.ID, steps[1].ID); err != nil {
		t.Fatalf("repeat complete failed: %v", err)
	}

	if _, err := svc.CompleteTrackingStep(order.ID, 9999); !errors.Is(err, ErrTrackingStepNotFound) {
		t.Fatalf("expected ErrTrackingStepNotFound, got: %v", err)
	}
	if _, err := svc.CompleteTrackingStep(9999, steps[1].ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got: %v", err)
	}
}

func TestOrderServiceStats(t *testing.T) {
	svc, db, _ := setupOrderServiceTest(t)
	now := time.Now()
	seedOrder(t, db, 1, constants.OrderStatusPending, now)
	seedOrder(t, db, 1, constants.OrderStatusPending, now.Add(time.Minute))
	seedOrder(t, db, 1, constants.OrderStatusShipped, now.Add(2*time.Minute))
	seedOrder(t, db, 2, constants.OrderStatusDelivered, now.Add(3*time.Minute))

	stats, err := svc.Stats(1)
	if err != nil {
		t.Fatalf("user stats failed: %v", err)
	}
	if stats.Total != 3 || stats.Pending != 2 || stats.Shipped != 1 || stats.Delivered != 0 {
		t.Fatalf("unexpected user stats: %+v", stats)
	}

	all, err := svc.Stats(0)
	if err != nil {
		t.Fatalf("global stats failed: %v", err)
	}
	if all.Total != 4 || all.Delivered != 1 {
		t.Fatalf("unexpected global stats: %+v", all)
	}
}
