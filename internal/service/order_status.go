package service

import "github.com/shopnext/internal/constants"

// allowedTransitions 管理端状态机。用户取消不走这张表。
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
}

// IsValidOrderStatus 判断是否为已知订单状态
func IsValidOrderStatus(status string) bool {
	for _, s := range constants.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func canTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// stepIndexForStatus 返回该状态下应完成的物流步骤数（按 sort_order 前 N 步）。
// cancelled 返回 -1 表示不动物流步骤。
func stepIndexForStatus(status string) int {
	switch status {
	case constants.OrderStatusPending:
		return 1
	case constants.OrderStatusShipped:
		return 3
	case constants.OrderStatusDelivered:
		return constants.TrackingStepCount
	default:
		return -1
	}
}
