package usecase

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"

	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

var validate = validator.New()

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: email is invalid", domainErrors.ErrValidation)
	}
	return nil
}

// validateCreateOrder checks order intake input. Totals must match line items exactly.
func validateCreateOrder(in model.OrderDraft, unit currency.Unit) error {
	if in.UserID <= 0 {
		return fmt.Errorf("%w: user is required", domainErrors.ErrValidation)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: no order items", domainErrors.ErrValidation)
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d must reference a product", domainErrors.ErrValidation, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", domainErrors.ErrValidation, i)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d price must not be negative", domainErrors.ErrValidation, i)
		}
		if !model.FitsMinorUnits(item.UnitPrice, unit) {
			return fmt.Errorf("%w: item %d price has more decimal places than %s allows", domainErrors.ErrValidation, i, unit)
		}
	}

	addr := in.ShippingAddress
	for _, field := range []struct{ name, value string }{
		{"address", addr.Line1},
		{"city", addr.City},
		{"postalCode", addr.PostalCode},
		{"country", addr.Country},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: shipping %s is required", domainErrors.ErrValidation, field.name)
		}
	}

	if in.CustomerEmail != "" {
		if err := validateEmail(in.CustomerEmail); err != nil {
			return err
		}
	}

	if !in.TotalPrice.IsPositive() {
		return fmt.Errorf("%w: total price must be positive", domainErrors.ErrValidation)
	}
	itemsTotal := model.SumItems(in.Items)
	if !itemsTotal.Equal(in.TotalPrice) {
		return fmt.Errorf("%w: total price %s does not match items total %s",
			domainErrors.ErrValidation, in.TotalPrice.String(), itemsTotal.String())
	}
	if _, err := model.MinorUnits(in.TotalPrice, unit); err != nil {
		return fmt.Errorf("%w: total price %s is too large", domainErrors.ErrValidation, in.TotalPrice.String())
	}
	return nil
}
