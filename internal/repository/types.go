package repository

// OrderListFilter 查询订单列表的过滤条件。
// Page/PageSize 为 0 时返回完整结果集。
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
}
