package cart

import (
	"errors"
	"testing"

	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantMsg string
	}{
		{"valid", itemA(1), ""},
		{"free item is valid", Item{ID: 1, Name: "gift", Quantity: 1}, ""},
		{"zero id", Item{Name: "x", Quantity: 1}, ErrMsgItemIDRequired},
		{"empty name", Item{ID: 1, Quantity: 1}, ErrMsgItemNameRequired},
		{"zero quantity", Item{ID: 1, Name: "x"}, ErrMsgQuantityPositive},
		{"negative price", Item{ID: 1, Name: "x", Quantity: 1, UnitPriceCents: -5}, ErrMsgPriceNonNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			var actionErr *reducer.ActionError
			if !errors.As(err, &actionErr) {
				t.Fatalf("expected *ActionError, got %v", err)
			}
			if actionErr.Code != reducer.StatusInvalidArgument {
				t.Errorf("expected INVALID_ARGUMENT, got %v", actionErr.Code)
			}
			if actionErr.Message != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, actionErr.Message)
			}
		})
	}
}

func TestValidate_onlyChecksAddItem(t *testing.T) {
	if err := Validate(AddItem{Item: Item{}}); err == nil {
		t.Error("expected malformed AddItem to fail")
	}
	for _, a := range []reducer.Action{RemoveItem{ID: idNone}, IncrementQuantity{}, DecrementQuantity{ID: -1}, bogusAction{}} {
		if err := Validate(a); err != nil {
			t.Errorf("%s: expected no error, got %v", a.Type(), err)
		}
	}
}

func TestValidate_checksPointerAddItem(t *testing.T) {
	err := Validate(&AddItem{Item: Item{ID: 1, Quantity: 1}})

	var actionErr *reducer.ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("expected *ActionError, got %v", err)
	}
	if actionErr.Message != ErrMsgItemNameRequired {
		t.Errorf("expected %q, got %q", ErrMsgItemNameRequired, actionErr.Message)
	}
}
