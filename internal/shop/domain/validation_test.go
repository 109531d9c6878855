package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		validate    func() error
		expectedErr error
	}

	tests := []testCase{
		{name: "category name ok", validate: func() error { return ValidateCategoryName("Drinks") }},
		{name: "category name blank", validate: func() error { return ValidateCategoryName("  \t") }, expectedErr: ErrInvalidCategoryName},
		{name: "order zero", validate: func() error { return ValidateOrder(0) }},
		{name: "order negative", validate: func() error { return ValidateOrder(-1) }, expectedErr: ErrInvalidOrder},
		{name: "stock zero", validate: func() error { return ValidateStockCount(0) }},
		{name: "stock negative", validate: func() error { return ValidateStockCount(-3) }, expectedErr: ErrInvalidAmount},
		{name: "price positive", validate: func() error { return ValidatePrice(decimal.RequireFromString("0.01")) }},
		{name: "price zero", validate: func() error { return ValidatePrice(decimal.Zero) }, expectedErr: ErrInvalidAmount},
		{name: "price negative", validate: func() error { return ValidatePrice(decimal.NewFromInt(-5)) }, expectedErr: ErrInvalidAmount},
		{name: "price trailing zero scale", validate: func() error { return ValidatePrice(decimal.RequireFromString("1.500")) }},
		{name: "price sub cent", validate: func() error { return ValidatePrice(decimal.RequireFromString("0.001")) }, expectedErr: ErrInvalidAmount},
		{name: "price largest storable", validate: func() error { return ValidatePrice(decimal.RequireFromString("99999999999999999.99")) }},
		{name: "price above column range", validate: func() error { return ValidatePrice(decimal.RequireFromString("123456789012345678.00")) }, expectedErr: ErrInvalidAmount},
		{name: "localized name ok", validate: func() error { return LocalizedName{Uz: "Choy", Ru: "Чай", En: "Tea"}.Validate() }},
		{name: "localized name blank en", validate: func() error { return LocalizedName{Uz: "Choy", Ru: "Чай", En: " "}.Validate() }, expectedErr: ErrInvalidLocalizedName},
		{name: "localized name blank uz", validate: func() error { return LocalizedName{Ru: "Чай", En: "Tea"}.Validate() }, expectedErr: ErrInvalidLocalizedName},
		{name: "fullname ok", validate: func() error { return ValidateFullname("Ali Valiyev") }},
		{name: "fullname blank", validate: func() error { return ValidateFullname("") }, expectedErr: ErrInvalidFullname},
		{name: "username ok", validate: func() error { return ValidateUsername("alice") }},
		{name: "username too short", validate: func() error { return ValidateUsername("bob") }, expectedErr: ErrInvalidUsername},
		{name: "username padded", validate: func() error { return ValidateUsername("  bob  ") }, expectedErr: ErrInvalidUsername},
		{name: "username blank", validate: func() error { return ValidateUsername("") }, expectedErr: ErrInvalidUsername},
		{name: "top up positive", validate: func() error { return ValidateTopUpAmount(decimal.NewFromInt(5)) }},
		{name: "top up negative", validate: func() error { return ValidateTopUpAmount(decimal.NewFromInt(-5)) }, expectedErr: ErrInvalidAmount},
		{name: "top up cents", validate: func() error { return ValidateTopUpAmount(decimal.RequireFromString("0.01")) }},
		{name: "top up sub cent", validate: func() error { return ValidateTopUpAmount(decimal.RequireFromString("0.004")) }, expectedErr: ErrInvalidAmount},
		{name: "top up above column range", validate: func() error { return ValidateTopUpAmount(decimal.New(1, 17)) }, expectedErr: ErrInvalidAmount},
		{name: "buy ok", validate: func() error { return BuyRequest{UserID: 1, Items: []BuyItem{{ProductID: 1, Count: 1}}}.Validate() }},
		{name: "buy empty", validate: func() error { return BuyRequest{UserID: 1}.Validate() }, expectedErr: ErrInvalidAmount},
		{name: "buy zero count left to pricing", validate: func() error { return BuyRequest{UserID: 1, Items: []BuyItem{{ProductID: 1, Count: 1}, {ProductID: 2}}}.Validate() }},
		{name: "item positive", validate: func() error { return BuyItem{ProductID: 1, Count: 2}.Validate() }},
		{name: "item zero count", validate: func() error { return BuyItem{ProductID: 1, Count: 0}.Validate() }, expectedErr: ErrInvalidAmount},
		{name: "item negative count", validate: func() error { return BuyItem{ProductID: 1, Count: -1}.Validate() }, expectedErr: ErrInvalidAmount},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLineTotal(t *testing.T) {
	t.Parallel()

	total := LineTotal(decimal.RequireFromString("20.00"), 3)
	assert.True(t, total.Equal(decimal.RequireFromString("60.00")))
}

func TestPage_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Page{Number: 0, Size: DefaultPageSize}, Page{Number: -1}.Normalize())
	assert.Equal(t, Page{Number: 2, Size: MaxPageSize}, Page{Number: 2, Size: 1000}.Normalize())
	assert.Equal(t, 30, Page{Number: 3, Size: 10}.Offset())
}
