package constants

// 订单状态
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses 全部合法订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// TrackingStepSeed 订单创建时固定生成的物流追踪步骤
type TrackingStepSeed struct {
	Label       string
	Description string
}

// TrackingStepSeeds 固定的 5 步物流追踪序列（第 1 步在下单时即完成）
var TrackingStepSeeds = []TrackingStepSeed{
	{Label: "Confirmed", Description: "Order has been placed and confirmed"},
	{Label: "Preparing", Description: "Order is being prepared for shipment"},
	{Label: "Shipped", Description: "Order has been handed to the carrier"},
	{Label: "In Delivery", Description: "Order is out for delivery"},
	{Label: "Delivered", Description: "Order has been delivered"},
}

// TrackingStepCount 追踪步骤数量
const TrackingStepCount = 5

// 异步任务
const (
	QueueDefault         = "default"
	TaskOrderStatusEmail = "order:status_email"
)

// 金额默认值（最小货币单位）
const (
	DefaultFreeShippingThreshold = 500000
	DefaultShippingFee           = 1500
)
