package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

const orderColumns = `o.id, o.user_id, o.items, o.shipping_address,
            o.customer_name, o.customer_email, o.customer_phone,
            o.currency, o.total_minor, o.tax_minor, o.shipping_minor,
            o.gateway_order_id, o.payment_status, o.gateway_payment_id, o.payment_completed_at, o.payer_email,
            o.is_paid, o.paid_at, o.is_delivered, o.delivered_at,
            o.status, o.created_at, o.updated_at`

type itemRecord struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type addressRecord struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// orderRow holds raw column values before conversion into the domain model.
type orderRow struct {
	ID                 uuid.UUID
	UserID             int64
	Items              []byte
	ShippingAddress    []byte
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Currency           string
	TotalMinor         int64
	TaxMinor           int64
	ShippingMinor      int64
	GatewayOrderID     string
	PaymentStatus      string
	GatewayPaymentID   string
	PaymentCompletedAt *time.Time
	PayerEmail         string
	IsPaid             bool
	PaidAt             *time.Time
	IsDelivered        bool
	DeliveredAt        *time.Time
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r *orderRow) dest() []any {
	return []any{
		&r.ID, &r.UserID, &r.Items, &r.ShippingAddress,
		&r.CustomerName, &r.CustomerEmail, &r.CustomerPhone,
		&r.Currency, &r.TotalMinor, &r.TaxMinor, &r.ShippingMinor,
		&r.GatewayOrderID, &r.PaymentStatus, &r.GatewayPaymentID, &r.PaymentCompletedAt, &r.PayerEmail,
		&r.IsPaid, &r.PaidAt, &r.IsDelivered, &r.DeliveredAt,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *orderRow) toModel() (*model.Order, error) {
	unit, err := currency.ParseISO(r.Currency)
	if err != nil {
		return nil, fmt.Errorf("order %s currency: %w", r.ID, err)
	}

	var items []itemRecord
	if err := json.Unmarshal(r.Items, &items); err != nil {
		return nil, fmt.Errorf("order %s items: %w", r.ID, err)
	}
	var addr addressRecord
	if err := json.Unmarshal(r.ShippingAddress, &addr); err != nil {
		return nil, fmt.Errorf("order %s address: %w", r.ID, err)
	}

	return &model.Order{
		ID:     r.ID,
		UserID: r.UserID,
		Items: lo.Map(items, func(it itemRecord, _ int) model.OrderItem {
			return model.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				ImageURL:  it.ImageURL,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
		}),
		ShippingAddress: model.ShippingAddress{
			Line1:      addr.Line1,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		},
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Currency:      r.Currency,
		TotalPrice:    model.FromMinorUnits(r.TotalMinor, unit),
		TaxPrice:      model.FromMinorUnits(r.TaxMinor, unit),
		ShippingPrice: model.FromMinorUnits(r.ShippingMinor, unit),
		Payment: model.PaymentResult{
			GatewayOrderID:   r.GatewayOrderID,
			Status:           model.PaymentStatus(r.PaymentStatus),
			GatewayPaymentID: r.GatewayPaymentID,
			CompletedAt:      r.PaymentCompletedAt,
			PayerEmail:       r.PayerEmail,
		},
		IsPaid:      r.IsPaid,
		PaidAt:      r.PaidAt,
		IsDelivered: r.IsDelivered,
		DeliveredAt: r.DeliveredAt,
		Status:      model.OrderStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func encodeItems(items []model.OrderItem) ([]byte, error) {
	return json.Marshal(lo.Map(items, func(it model.OrderItem, _ int) itemRecord {
		return itemRecord{
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}))
}

func encodeAddress(addr model.ShippingAddress) ([]byte, error) {
	return json.Marshal(addressRecord{
		Line1:      addr.Line1,
		City:       addr.City,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	})
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	unit, err := currency.ParseISO(order.Currency)
	if err != nil {
		return fmt.Errorf("order currency: %w", err)
	}
	total, err := model.MinorUnits(order.TotalPrice, unit)
	if err != nil {
		return fmt.Errorf("order total: %w", err)
	}
	tax, err := model.MinorUnits(order.TaxPrice, unit)
	if err != nil {
		return fmt.Errorf("order tax: %w", err)
	}
	shipping, err := model.MinorUnits(order.ShippingPrice, unit)
	if err != nil {
		return fmt.Errorf("order shipping: %w", err)
	}
	items, err := encodeItems(order.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	addr, err := encodeAddress(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode address: %w", err)
	}

	const query = `INSERT INTO orders (
            id, user_id, items, shipping_address,
            customer_name, customer_email, customer_phone,
            currency, total_minor, tax_minor, shipping_minor,
            gateway_order_id, payment_status, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING created_at, updated_at`
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.UserID, items, addr,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.Currency, total, tax, shipping,
		order.Payment.GatewayOrderID, string(order.Payment.Status), string(order.Status),
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			return domainErrors.ErrAlreadyExists
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: unknown user %d", domainErrors.ErrNotFound, order.UserID)
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id=$1`
	var row orderRow
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return row.toModel()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.user_id=$1 ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		order, err := row.toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `, u.login, u.email
            FROM orders o JOIN users u ON u.id = o.user_id
            ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			row          orderRow
			login, email string
		)
		if err := rows.Scan(append(row.dest(), &login, &email)...); err != nil {
			return nil, err
		}
		order, err := row.toModel()
		if err != nil {
			return nil, err
		}
		order.User = &model.UserRef{ID: order.UserID, Login: login, Email: email}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update persists payment, delivery and status fields. Items and totals are immutable.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders SET
            gateway_payment_id=$2, payment_status=$3, payment_completed_at=$4, payer_email=$5,
            is_paid=$6, paid_at=$7, is_delivered=$8, delivered_at=$9,
            status=$10, updated_at=NOW()
        WHERE id=$1
        RETURNING updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		order.ID,
		order.Payment.GatewayPaymentID, string(order.Payment.Status), order.Payment.CompletedAt, order.Payment.PayerEmail,
		order.IsPaid, order.PaidAt, order.IsDelivered, order.DeliveredAt,
		string(order.Status),
	).Scan(&order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}
