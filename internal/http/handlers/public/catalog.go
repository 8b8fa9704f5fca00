package public

import (
	"strconv"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductView 公共商品响应结构
type ProductView struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	PriceAmount models.Money       `json:"price_amount"`
	Price       string             `json:"price"`
	Image       string             `json:"image"`
	Sizes       models.StringArray `json:"sizes"`
}

func buildProductView(p *models.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		PriceAmount: p.PriceAmount,
		Price:       p.PriceAmount.Major(),
		Image:       p.Image,
		Sizes:       p.Sizes,
	}
}

// ListProducts 获取商品列表
func (h *Handler) ListProducts(c *gin.Context) {
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

	products, total, err := h.CatalogService.ListProducts(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, buildProductView(&products[i]))
	}

	if paginated {
		response.SuccessWithPage(c, views, response.BuildPagination(page, pageSize, total))
		return
	}
	response.Success(c, gin.H{"products": views, "total": total})
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "product id invalid", nil)
		return
	}

	product, err := h.CatalogService.GetProduct(uint(id))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildProductView(product))
}
