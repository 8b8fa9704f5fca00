package service

import (
	"time"

	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"
)

// CartItemDetail 购物车项详情（关联实时目录数据）
type CartItemDetail struct {
	ItemID    uint         `json:"item_id"`
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Size      string       `json:"size"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Image     string       `json:"image"`
}

// CartView 购物车读取结果
type CartView struct {
	Items    []CartItemDetail `json:"items"`
	Subtotal models.Money     `json:"subtotal"`
	Shipping models.Money     `json:"shipping"`
	Total    models.Money     `json:"total"`
}

// CartService 购物车服务。单用户的并发修改为后写覆盖，不做乐观锁。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	pricing     PricingConfig
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, pricing PricingConfig) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		pricing:     pricing,
	}
}

// GetOrCreate 获取用户购物车，不存在时创建并持久化空购物车
func (s *CartService) GetOrCreate(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{UserID: userID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, ErrCartUpdateFailed
	}
	return cart, nil
}

// Read 读取购物车：关联实时目录数据并重算派生金额。
// 金额从不信任存储值，每次读取都按当前目录价格重算并回写。
func (s *CartService) Read(userID uint) (*CartView, error) {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(cart.Items)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	totals, err := s.reprice(cart, products)
	if err != nil {
		return nil, err
	}

	details := make([]CartItemDetail, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok || product == nil {
			continue
		}
		details = append(details, CartItemDetail{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Name:      product.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: product.PriceAmount,
			Image:     product.Image,
		})
	}
	return &CartView{
		Items:    details,
		Subtotal: totals.Subtotal,
		Shipping: totals.Shipping,
		Total:    totals.Total,
	}, nil
}

// AddItemInput 加购输入
type AddItemInput struct {
	UserID    uint
	ProductID uint
	Size      string
	Quantity  int
}

// AddItem 加购：同一 (商品, 尺码) 合并累加数量，否则追加新行，然后重算金额。
func (s *CartService) AddItem(input AddItemInput) error {
	if input.Quantity < 1 {
		return ErrQuantityInvalid
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return ErrCartUpdateFailed
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.Sizes.Contains(input.Size) {
		return ErrSizeInvalid
	}

	cart, err := s.GetOrCreate(input.UserID)
	if err != nil {
		return err
	}

	now := time.Now()
	if existing := cart.FindItem(input.ProductID, input.Size); existing != nil {
		if err := s.cartRepo.UpdateItemQuantity(existing.ID, existing.Quantity+input.Quantity); err != nil {
			return ErrCartUpdateFailed
		}
		existing.Quantity += input.Quantity
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Size:      input.Size,
			Quantity:  input.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			return ErrCartUpdateFailed
		}
		cart.Items = append(cart.Items, *item)
	}

	return s.repriceAndSave(cart)
}

// UpdateItem 设置购物车项的绝对数量并重算金额
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) error {
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return ErrCartFetchFailed
	}
	if cart == nil {
		return ErrCartNotFound
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return ErrCartItemNotFound
	}
	if err := s.cartRepo.UpdateItemQuantity(itemID, quantity); err != nil {
		return ErrCartUpdateFailed
	}
	return s.repriceAndSave(cart)
}

// RemoveItem 删除购物车项并重算金额
func (s *CartService) RemoveItem(userID, itemID uint) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return ErrCartFetchFailed
	}
	if cart == nil {
		return ErrCartNotFound
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCartItemNotFound
	}
	if err := s.cartRepo.DeleteItem(itemID); err != nil {
		return ErrCartUpdateFailed
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	return s.repriceAndSave(cart)
}

// resolveProducts 解析购物车项对应的商品；已删除的商品不在结果里
func (s *CartService) resolveProducts(items []models.CartItem) (map[uint]*models.Product, error) {
	products := make(map[uint]*models.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		products[item.ProductID] = product
	}
	return products, nil
}

func (s *CartService) reprice(cart *models.Cart, products map[uint]*models.Product) (PricedTotals, error) {
	totals := PriceItems(cart.Items, products, s.pricing)
	if err := s.cartRepo.SaveTotals(cart.ID, totals.Subtotal, totals.Shipping, totals.Total); err != nil {
		return PricedTotals{}, ErrCartUpdateFailed
	}
	cart.Subtotal = totals.Subtotal
	cart.Shipping = totals.Shipping
	cart.Total = totals.Total
	return totals, nil
}

func (s *CartService) repriceAndSave(cart *models.Cart) error {
	products, err := s.resolveProducts(cart.Items)
	if err != nil {
		return ErrCartUpdateFailed
	}
	_, err = s.reprice(cart, products)
	return err
}
