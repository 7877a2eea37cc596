//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

type storageSuite struct {
	suite.Suite

	container *tcpostgres.PostgresContainer
	storage   *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(storageSuite))
}

func startPostgres(ctx context.Context) (*tcpostgres.PostgresContainer, string, error) {
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("heavybuild"),
		tcpostgres.WithUsername("heavybuild"),
		tcpostgres.WithPassword("heavybuild"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		return nil, "", err
	}
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", err
	}
	return container, dsn, nil
}

func (s *storageSuite) SetupSuite() {
	ctx := s.T().Context()

	container, dsn, err := startPostgres(ctx)
	s.container = container
	s.Require().NoError(err)

	s.storage, err = New(ctx, dsn, testLogger())
	s.Require().NoError(err)
}

func (s *storageSuite) TearDownSuite() {
	if s.storage != nil {
		s.storage.Close()
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *storageSuite) newUser() *model.User {
	user, err := s.storage.Users().Create(s.T().Context(), &model.User{
		Login:        gofakeit.Username() + gofakeit.DigitN(6),
		Email:        gofakeit.Email(),
		PasswordHash: "hash",
	})
	s.Require().NoError(err)
	return user
}

func fakeOrder(userID int64) *model.Order {
	price := decimal.NewFromFloat(gofakeit.Price(100, 5000)).Round(2)
	return &model.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: []model.OrderItem{
			{ProductID: gofakeit.UUID(), Name: gofakeit.ProductName(), Quantity: 2, UnitPrice: price},
		},
		ShippingAddress: model.ShippingAddress{
			Line1:      gofakeit.Street(),
			City:       gofakeit.City(),
			PostalCode: gofakeit.Zip(),
			Country:    "IN",
		},
		CustomerName: gofakeit.Name(),
		Currency:     "INR",
		TotalPrice:   price.Mul(decimal.NewFromInt(2)),
		Payment:      model.PaymentResult{GatewayOrderID: "order_" + gofakeit.LetterN(14), Status: model.PaymentStatusPending},
		Status:       model.OrderStatusProcessing,
	}
}

func (s *storageSuite) TestUsers() {
	t := s.T()
	ctx := t.Context()
	user := s.newUser()

	byLogin, err := s.storage.Users().GetByLogin(ctx, user.Login)
	require.NoError(t, err)
	require.Equal(t, user.ID, byLogin.ID)
	require.Equal(t, model.RoleUser, byLogin.Role)

	_, err = s.storage.Users().Create(ctx, &model.User{Login: user.Login, PasswordHash: "other"})
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	_, err = s.storage.Users().GetByID(ctx, user.ID+100000)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func (s *storageSuite) TestOrderLifecycle() {
	t := s.T()
	ctx := t.Context()
	user := s.newUser()
	orders := s.storage.Orders()

	order := fakeOrder(user.ID)
	require.NoError(t, orders.Create(ctx, order))

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, stored.TotalPrice.Equal(order.TotalPrice))
	require.False(t, stored.IsPaid)
	require.Equal(t, order.Items[0].ProductID, stored.Items[0].ProductID)
	require.Equal(t, order.ShippingAddress, stored.ShippingAddress)

	paidAt := time.Now().UTC().Truncate(time.Microsecond)
	stored.MarkPaid("pay_123", user.Email, paidAt)
	stored.SetStatus(model.OrderStatusDelivered, paidAt)
	require.NoError(t, orders.Update(ctx, stored))

	reloaded, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, reloaded.IsPaid)
	require.True(t, reloaded.IsDelivered)
	require.Equal(t, model.PaymentStatusCompleted, reloaded.Payment.Status)
	require.True(t, reloaded.PaidAt.Equal(paidAt))

	mine, err := orders.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := orders.ListAll(ctx)
	require.NoError(t, err)
	var found bool
	for _, o := range all {
		if o.ID == order.ID {
			found = true
			require.Equal(t, user.Login, o.User.Login)
		}
	}
	require.True(t, found)

	missing := fakeOrder(user.ID)
	require.ErrorIs(t, orders.Update(ctx, missing), domainErrors.ErrNotFound)
	require.ErrorIs(t, orders.Create(ctx, fakeOrder(user.ID+100000)), domainErrors.ErrNotFound)
}
