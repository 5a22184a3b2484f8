package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/example/vendor-order-service/internal/domain"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Three line items from two vendors: the canonical multi-vendor order.
func fixtureOrder() domain.Order {
	return domain.Order{
		ID:                "1001",
		Name:              "#1001",
		FinancialStatus:   "PAID",
		FulfillmentStatus: "FULFILLED",
		Currency:          "USD",
		DateCreated:       "2026-08-01T10:00:00Z",
		Items: []domain.LineItem{
			{ID: "li-1", Title: "Air Zoom", SKU: "NK-1", Quantity: 2, RefundableQuantity: 2, UnitPrice: price("10.00"), OriginalTotal: price("20.00"), Vendor: "Nike"},
			{ID: "li-2", Title: "Pegasus", SKU: "NK-2", Quantity: 1, RefundableQuantity: 1, UnitPrice: price("25.00"), OriginalTotal: price("25.00"), Vendor: "Nike"},
			{ID: "li-3", Title: "Anvil", SKU: "AC-1", Quantity: 5, RefundableQuantity: 5, UnitPrice: price("5.00"), OriginalTotal: price("25.00"), Vendor: "Acme"},
		},
	}
}

func TestApplyScopeAssignedVendor(t *testing.T) {
	scoped, err := ApplyScope(fixtureOrder(), domain.RestrictedTo("Nike", true))
	if err != nil {
		t.Fatalf("ApplyScope() error = %v", err)
	}
	if scoped.VisibleItemCount != 2 || len(scoped.Items) != 2 {
		t.Fatalf("visible items = %d, want 2", len(scoped.Items))
	}
	for _, it := range scoped.Items {
		if it.Vendor != "Nike" {
			t.Errorf("foreign vendor %q leaked into scoped view", it.Vendor)
		}
	}
	if !scoped.VisibleSubtotal.Equal(price("45.00")) {
		t.Errorf("visible subtotal = %s, want 45.00", scoped.VisibleSubtotal)
	}
}

func TestApplyScopeUnrestricted(t *testing.T) {
	o := fixtureOrder()
	scoped, err := ApplyScope(o, domain.Unrestricted())
	if err != nil {
		t.Fatalf("ApplyScope() error = %v", err)
	}
	if scoped.VisibleItemCount != len(o.Items) {
		t.Errorf("visible items = %d, want %d", scoped.VisibleItemCount, len(o.Items))
	}
	for i, it := range scoped.Items {
		if it.ID != o.Items[i].ID {
			t.Errorf("item order changed at %d: %s", i, it.ID)
		}
	}
	if !scoped.VisibleSubtotal.Equal(price("70.00")) {
		t.Errorf("visible subtotal = %s, want 70.00", scoped.VisibleSubtotal)
	}
}

func TestApplyScopeEmptyView(t *testing.T) {
	tests := []struct {
		name    string
		scope   domain.EffectiveScope
		wantErr error
	}{
		{
			// staff opened an order they have no legitimate view of
			name:    "assigned scope with zero visible items is forbidden",
			scope:   domain.RestrictedTo("Puma", true),
			wantErr: domain.ErrForbidden,
		},
		{
			// administrator exploring data gets a normal empty result
			name:  "discretionary filter with zero visible items is empty",
			scope: domain.RestrictedTo("Puma", false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scoped, err := ApplyScope(fixtureOrder(), tt.scope)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ApplyScope() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyScope() error = %v", err)
			}
			if scoped.VisibleItemCount != 0 || !scoped.VisibleSubtotal.IsZero() {
				t.Errorf("empty view has count %d subtotal %s", scoped.VisibleItemCount, scoped.VisibleSubtotal)
			}
		})
	}
}

func TestApplyScopeUnknownVendorNeverMatches(t *testing.T) {
	o := fixtureOrder()
	o.Items = append(o.Items, domain.LineItem{
		ID: "li-4", Title: "Mystery", Quantity: 1, RefundableQuantity: 1,
		UnitPrice: price("1.00"), OriginalTotal: price("1.00"),
	})

	scoped, err := ApplyScope(o, domain.RestrictedTo("Nike", true))
	if err != nil {
		t.Fatalf("ApplyScope() error = %v", err)
	}
	for _, it := range scoped.Items {
		if it.ID == "li-4" {
			t.Error("item without vendor visible under restricted scope")
		}
	}

	// the vendorless item is still visible to an administrator
	full, err := ApplyScope(o, domain.Unrestricted())
	if err != nil {
		t.Fatalf("ApplyScope() error = %v", err)
	}
	if full.VisibleItemCount != 4 {
		t.Errorf("unrestricted count = %d, want 4", full.VisibleItemCount)
	}
}
