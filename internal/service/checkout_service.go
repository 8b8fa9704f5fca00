package service

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/shopnext/internal/constants"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"
)

// OrderNotifier 下单后的异步通知入口，可为空（未启用队列时）
type OrderNotifier interface {
	EnqueueOrderStatusEmail(orderID uint, status string) error
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	UserID        uint
	AddressID     uint
	PaymentMethod string
	PaymentProof  string
}

// CheckoutService 结算服务：把购物车原子地转换为订单
type CheckoutService struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	notifier    OrderNotifier
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	notifier OrderNotifier,
) *CheckoutService {
	return &CheckoutService{
		db:          db,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
	}
}

// Checkout 结算：校验输入，冻结商品快照，在单个事务内创建订单并清空购物车。
// 订单金额取购物车当前存储的金额，下单后目录调价不影响已建订单。
func (s *CheckoutService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.PaymentMethod == "" {
		return nil, ErrPaymentMethodMissing
	}

	cart, err := s.cartRepo.GetByUser(input.UserID)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	address, err := s.addressRepo.GetOwned(input.UserID, input.AddressID)
	if err != nil {
		return nil, ErrOrderCreateFailed
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}

	// 冻结快照：商品已下架/删除的购物车项直接丢弃
	now := time.Now()
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		product := cartItem.Product
		if product == nil {
			product, err = s.productRepo.GetByID(cartItem.ProductID)
			if err != nil {
				return nil, ErrOrderCreateFailed
			}
		}
		if product == nil {
			logger.Warnw("checkout skips vanished product", "product_id", cartItem.ProductID, "cart_id", cart.ID)
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: cartItem.ProductID,
			Name:      product.Name,
			Size:      cartItem.Size,
			Quantity:  cartItem.Quantity,
			UnitPrice: product.PriceAmount,
			Image:     product.Image,
			CreatedAt: now,
		})
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		AddressID:       input.AddressID,
		PaymentMethod:   input.PaymentMethod,
		PaymentProofRef: input.PaymentProof,
		Status:          constants.OrderStatusPending,
		Subtotal:        cart.Subtotal,
		Shipping:        cart.Shipping,
		Total:           cart.Total,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	steps := seedTrackingSteps(now)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items, steps); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).Clear(cart.ID)
	})
	if err != nil {
		logger.Errorw("checkout transaction failed", "user_id", input.UserID, "error", err)
		return nil, ErrOrderCreateFailed
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueOrderStatusEmail(order.ID, order.Status); err != nil {
			logger.Warnw("enqueue order status email failed", "order_id", order.ID, "error", err)
		}
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil || created == nil {
		return order, nil
	}
	return created, nil
}

// seedTrackingSteps 生成固定的五步物流时间线，第一步（订单确认）立即完成
func seedTrackingSteps(now time.Time) []models.TrackingStep {
	steps := make([]models.TrackingStep, 0, len(constants.TrackingStepSeeds))
	for i, seed := range constants.TrackingStepSeeds {
		step := models.TrackingStep{
			SortOrder:   i + 1,
			Label:       seed.Label,
			Description: seed.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if i == 0 {
			completedAt := now
			step.Completed = true
			step.CompletedAt = &completedAt
		}
		steps = append(steps, step)
	}
	return steps
}

// generateOrderNo 生成订单号：SN + 时间戳 + 6 位随机数
func generateOrderNo() string {
	return fmt.Sprintf("SN%d%06d", time.Now().UnixNano()/1e6, rand.Intn(1000000))
}
