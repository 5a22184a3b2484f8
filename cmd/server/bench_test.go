package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/example/vendor-order-service/internal/adapter/cache"
	"github.com/example/vendor-order-service/internal/adapter/directory"
	"github.com/example/vendor-order-service/internal/adapter/httpapi"
	"github.com/example/vendor-order-service/internal/domain"
	"github.com/example/vendor-order-service/internal/logging"
	"github.com/example/vendor-order-service/internal/usecase"
)

func seededCache(n int) *cache.MemoryOrderCache {
	orderCache := cache.NewMemoryOrderCache()
	unit := decimal.RequireFromString("10.00")
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("order-%d", i)
		orderCache.Set(id, domain.Order{
			ID: id, Name: "#" + id, FinancialStatus: "PAID", Currency: "USD",
			Items: []domain.LineItem{
				{ID: "li-1", Quantity: 2, RefundableQuantity: 2, UnitPrice: unit, OriginalTotal: unit.Mul(decimal.NewFromInt(2)), Vendor: "Nike"},
				{ID: "li-2", Quantity: 1, RefundableQuantity: 1, UnitPrice: unit, OriginalTotal: unit, Vendor: "Acme"},
			},
		})
	}
	return orderCache
}

func BenchmarkHandleGetScoped(b *testing.B) {
	orderCache := seededCache(1000)
	dir := directory.NewStaticDirectory(map[string]string{"vendor1@example.com": "Nike"})
	logger := logging.New("error", "text")
	router := httpapi.NewServer(logger,
		usecase.ListOrders{Directory: dir, Cache: orderCache},
		usecase.GetScopedOrder{Directory: dir, Cache: orderCache},
		usecase.SubmitRefund{},
	).Router

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			orderID := fmt.Sprintf("order-%d", i%1000)
			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID, nil)
			req.Header.Set("X-Staff-Email", "vendor1@example.com")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			i++
		}
	})
}

func BenchmarkCacheGet(b *testing.B) {
	orderCache := seededCache(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = orderCache.Get(fmt.Sprintf("order-%d", i%10000))
	}
}
