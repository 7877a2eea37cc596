package test

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

// RandomLogin returns a plausible login unlikely to collide within a test.
func RandomLogin() string {
	return gofakeit.Username() + strconv.Itoa(gofakeit.Number(1000, 9999))
}

// RandomEmail returns a syntactically valid address.
func RandomEmail() string {
	return gofakeit.Email()
}

// RandomAddress returns a complete shipping address.
func RandomAddress() model.ShippingAddress {
	return model.ShippingAddress{
		Line1:      gofakeit.Street(),
		City:       gofakeit.City(),
		PostalCode: gofakeit.Zip(),
		Country:    gofakeit.CountryAbr(),
	}
}

// RandomOrderItems returns n items with whole-rupee prices.
func RandomOrderItems(n int) []model.OrderItem {
	items := make([]model.OrderItem, n)
	for i := range items {
		items[i] = model.OrderItem{
			ProductID: gofakeit.UUID(),
			Name:      gofakeit.ProductName(),
			ImageURL:  gofakeit.URL(),
			Quantity:  gofakeit.Number(1, 5),
			UnitPrice: decimal.NewFromInt(int64(gofakeit.Number(100, 250000))),
		}
	}
	return items
}
