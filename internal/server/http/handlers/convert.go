package handlers

import (
	"github.com/samber/lo"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/dto"
)

func toDraft(userID int64, req dto.CreateOrderRequest) model.OrderDraft {
	return model.OrderDraft{
		UserID: userID,
		Items: lo.Map(req.OrderItems, func(it dto.OrderItem, _ int) model.OrderItem {
			return model.OrderItem{
				ProductID: it.Product,
				Name:      it.Name,
				ImageURL:  it.Image,
				Quantity:  it.Quantity,
				UnitPrice: it.Price,
			}
		}),
		ShippingAddress: model.ShippingAddress{
			Line1:      req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		TotalPrice:    req.TotalPrice,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:     order.ID.String(),
		UserID: order.UserID,
		OrderItems: lo.Map(order.Items, func(it model.OrderItem, _ int) dto.OrderItem {
			return dto.OrderItem{
				Product:  it.ProductID,
				Name:     it.Name,
				Image:    it.ImageURL,
				Quantity: it.Quantity,
				Price:    it.UnitPrice,
			}
		}),
		ShippingAddress: dto.ShippingAddress{
			Address:    order.ShippingAddress.Line1,
			City:       order.ShippingAddress.City,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		PaymentResult: dto.PaymentResult{
			ID:           order.Payment.GatewayOrderID,
			PaymentID:    order.Payment.GatewayPaymentID,
			Status:       string(order.Payment.Status),
			UpdateTime:   order.Payment.CompletedAt,
			EmailAddress: order.Payment.PayerEmail,
		},
		Currency:      order.Currency,
		TaxPrice:      order.TaxPrice,
		ShippingPrice: order.ShippingPrice,
		TotalPrice:    order.TotalPrice,
		IsPaid:        order.IsPaid,
		PaidAt:        order.PaidAt,
		IsDelivered:   order.IsDelivered,
		DeliveredAt:   order.DeliveredAt,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if order.User != nil {
		resp.User = &dto.UserRef{ID: order.User.ID, Login: order.User.Login, Email: order.User.Email}
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	return lo.Map(orders, func(o model.Order, _ int) dto.OrderResponse {
		return toOrderResponse(o)
	})
}

func toGatewayOrder(g model.GatewayOrder) dto.GatewayOrder {
	return dto.GatewayOrder{
		ID:       g.ID,
		Entity:   g.Entity,
		Amount:   g.Amount,
		Currency: g.Currency,
		Receipt:  g.Receipt,
		Status:   g.Status,
	}
}
