package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 20, 45)
	if p.Page != 2 || p.PageSize != 20 || p.Total != 45 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if p.TotalPage != 3 {
		t.Fatalf("total page want 3 got %d", p.TotalPage)
	}

	p = BuildPagination(1, 0, 45)
	if p.TotalPage != 0 {
		t.Fatalf("zero page size should yield 0 total pages, got %d", p.TotalPage)
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-abc")

	Error(c, CodeNotFound, "order not found")

	var resp struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != CodeNotFound || resp.Msg != "order not found" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Data["request_id"] != "req-abc" {
		t.Fatalf("request_id want req-abc got %q", resp.Data["request_id"])
	}
}

func TestErrorWithoutRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, CodeInternal, "internal error")

	var resp struct {
		Data interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data != nil {
		t.Fatalf("data want nil got %+v", resp.Data)
	}
}
