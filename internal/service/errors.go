package service

import "errors"

// 业务错误按四类语义分组：未找到、参数非法、状态非法、越权访问。
// 处理层据此映射响应码。
var (
	// 未找到
	ErrProductNotFound      = errors.New("product not found")
	ErrCartNotFound         = errors.New("cart not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrAddressNotFound      = errors.New("address not found")
	ErrTrackingStepNotFound = errors.New("tracking step not found")

	// 参数非法
	ErrQuantityInvalid      = errors.New("quantity must be at least 1")
	ErrSizeInvalid          = errors.New("size not available for product")
	ErrPaymentMethodMissing = errors.New("payment method is required")
	ErrOrderStatusUnknown   = errors.New("unknown order status")
	ErrInvalidEmail         = errors.New("invalid email address")

	// 状态非法
	ErrCartEmpty               = errors.New("cart is empty")
	ErrStatusTransitionInvalid = errors.New("status transition not allowed")
	ErrTrackingStepOutOfOrder  = errors.New("previous tracking steps not completed")

	// 越权访问
	ErrOrderAccessDenied = errors.New("order does not belong to requester")

	// 基础设施
	ErrCartFetchFailed           = errors.New("cart fetch failed")
	ErrCartUpdateFailed          = errors.New("cart update failed")
	ErrOrderFetchFailed          = errors.New("order fetch failed")
	ErrOrderCreateFailed         = errors.New("order create failed")
	ErrOrderUpdateFailed         = errors.New("order update failed")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
