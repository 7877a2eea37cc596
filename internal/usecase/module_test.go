package usecase

import (
	"testing"

	"golang.org/x/text/currency"

	"github.com/heavybuild/heavybuild-pro/internal/config"
	testhelpers "github.com/heavybuild/heavybuild-pro/internal/test"
)

func TestNewOrderUseCaseUsesConfiguredCurrency(t *testing.T) {
	uc := newOrderUseCase(orderParams{
		Orders:   testhelpers.NewOrderRepositoryStub(),
		Users:    testhelpers.NewUserRepositoryStub(),
		Gateway:  &testhelpers.GatewayStub{},
		Notifier: &testhelpers.NotifierStub{},
		Config:   &config.Config{Currency: currency.USD},
		Logger:   discardLogger(),
	})
	if uc.currency != currency.USD {
		t.Fatalf("expected USD, got %s", uc.currency)
	}
}
