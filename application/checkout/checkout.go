package checkout

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/campuscloset/marketplace/cmd/config"
	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	inventoryrepo "github.com/campuscloset/marketplace/repository/inventory"
	orderrepo "github.com/campuscloset/marketplace/repository/order"
	productrepo "github.com/campuscloset/marketplace/repository/product"
	txrepo "github.com/campuscloset/marketplace/repository/tx"
	"github.com/campuscloset/marketplace/thirdparty/rabbitmq"
	"github.com/campuscloset/marketplace/utils/errors"
	"github.com/campuscloset/marketplace/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier is the outbound event port, satisfied by *rabbitmq.Publisher.
// Both publishes are best effort: by the time they run the order is
// already durably committed.
type Notifier interface {
	PublishOrderConfirmation(msg rabbitmq.OrderConfirmationMessage) error
	PublishOrderExpiration(msg rabbitmq.OrderExpirationMessage) error
}

type CheckoutApp interface {
	Checkout(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type checkoutAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	productRepo   productrepo.ProductRepository
	inventoryRepo inventoryrepo.InventoryRepository
	orderRepo     orderrepo.OrderRepository
	notifier      Notifier
}

func NewCheckoutApp(config *config.Config, txRepo txrepo.TxRepository, productRepo productrepo.ProductRepository,
	inventoryRepo inventoryrepo.InventoryRepository, orderRepo orderrepo.OrderRepository, notifier Notifier) CheckoutApp {
	return &checkoutAppImpl{
		config:        config,
		txRepo:        txRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		orderRepo:     orderRepo,
		notifier:      notifier,
	}
}

// Checkout materializes a validated cart: reserve every line, create the
// parent order plus one vendor order per distinct vendor, freeze line
// prices. The whole sequence runs in one transaction; any single failed
// reservation rolls back everything already done for this call.
func (s *checkoutAppImpl) Checkout(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Checkout] begin tx", zap.String("error", err.Error()), logger.RequestID(ctx))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// load referenced products, current prices included
	productIDs := make([]uint64, 0, len(req.Items))
	seen := make(map[uint64]bool, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}
	products, err := s.productRepo.GetCheckoutProductsTx(ctx, tx, productIDs)
	if err != nil {
		logger.Error("[Checkout] get products", zap.String("error", err.Error()), logger.RequestID(ctx))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, item := range req.Items {
		p, ok := products[item.ProductID]
		if !ok || !p.Active {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest,
				fmt.Sprintf("product %d is unknown or inactive", item.ProductID))
		}
	}

	// group by vendor and total up; shipping fee applies per vendor
	vendorItems := make(map[uint64][]model.CheckoutItemRequest)
	for _, item := range req.Items {
		vendorID := products[item.ProductID].VendorID
		vendorItems[vendorID] = append(vendorItems[vendorID], item)
	}
	vendorIDs := make([]uint64, 0, len(vendorItems))
	for vendorID := range vendorItems {
		vendorIDs = append(vendorIDs, vendorID)
	}
	sort.Slice(vendorIDs, func(i, j int) bool { return vendorIDs[i] < vendorIDs[j] })

	var totalAmount float64
	subtotals := make(map[uint64]float64, len(vendorIDs))
	for vendorID, items := range vendorItems {
		var subtotal float64
		for _, item := range items {
			subtotal += products[item.ProductID].Price * float64(item.Quantity)
		}
		subtotals[vendorID] = subtotal
		totalAmount += subtotal + s.config.Order.ShippingFee
	}

	// insert parent order
	expiresAt := time.Now().Add(s.config.Order.OrderExpiration)
	orderNumber := generateOrderNumber()
	orderID, err := s.orderRepo.InsertParentOrderTx(ctx, tx, &model.InsertParentOrderTxItem{
		UserID:        userID,
		OrderNumber:   orderNumber,
		Status:        constant.OrderStatusPlaced,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: constant.PaymentStatusPending,
		TotalAmount:   totalAmount,
		Address: model.AddressSnapshot{
			Hostel: req.DeliveryHostel,
			Room:   req.DeliveryRoom,
			Phone:  req.Phone,
			Campus: req.Campus,
		},
		ExpiresAt: expiresAt,
	})
	if err != nil {
		logger.Error("[Checkout] insert parent order", zap.String("error", err.Error()), logger.RequestID(ctx))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// reserve stock per line; one failure fails the whole cart
	for _, item := range req.Items {
		reserveReq := &model.ReserveRequest{
			OrderID:   orderID,
			UserID:    userID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			ExpiresAt: expiresAt,
		}
		if err := s.inventoryRepo.ReserveStockTx(ctx, tx, reserveReq); err != nil {
			if errors.TypeOf(err) == constant.ErrInsufficientStock {
				logger.Info("[Checkout] insufficient stock",
					zap.Uint64("product_id", item.ProductID), zap.Int("need", item.Quantity), logger.RequestID(ctx))
				return nil, errors.SetCustomError(constant.ErrInsufficientStock)
			}
			logger.Error("[Checkout] reserve stock", zap.String("error", err.Error()), logger.RequestID(ctx))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	// one vendor order per distinct vendor, line prices frozen at today's
	// catalog price
	for _, vendorID := range vendorIDs {
		vendorOrderID, err := s.orderRepo.InsertVendorOrderTx(ctx, tx, &model.InsertVendorOrderTxItem{
			ParentOrderID: orderID,
			VendorID:      vendorID,
			Status:        constant.VendorOrderStatusPending,
			Subtotal:      subtotals[vendorID],
			ShippingFee:   s.config.Order.ShippingFee,
		})
		if err != nil {
			logger.Error("[Checkout] insert vendor order", zap.String("error", err.Error()), logger.RequestID(ctx))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		lineItems := make([]model.InsertVendorOrderItemTxItem, 0, len(vendorItems[vendorID]))
		for _, item := range vendorItems[vendorID] {
			lineItems = append(lineItems, model.InsertVendorOrderItemTxItem{
				VendorOrderID: vendorOrderID,
				ProductID:     item.ProductID,
				Quantity:      item.Quantity,
				UnitPrice:     products[item.ProductID].Price,
			})
		}
		if err := s.orderRepo.InsertVendorOrderItemsTx(ctx, tx, lineItems); err != nil {
			logger.Error("[Checkout] insert vendor order items", zap.String("error", err.Error()), logger.RequestID(ctx))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Checkout] commit tx", zap.String("error", err.Error()), logger.RequestID(ctx))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Best-effort notifications; the order is committed, failures here are
	// logged and never surfaced.
	if s.notifier != nil {
		if err := s.notifier.PublishOrderConfirmation(rabbitmq.OrderConfirmationMessage{
			OrderID:     orderID,
			OrderNumber: orderNumber,
			UserID:      userID,
			TotalAmount: totalAmount,
		}); err != nil {
			logger.Error("[Checkout] publish order confirmation", zap.String("error", err.Error()), logger.RequestID(ctx))
		}
		if err := s.notifier.PublishOrderExpiration(rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		}); err != nil {
			logger.Error("[Checkout] publish order expiration", zap.String("error", err.Error()), logger.RequestID(ctx))
		}
	}

	return &model.CheckoutResponse{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
	}, nil
}

// generateOrderNumber builds the human-readable order number, e.g.
// CC-20260828-7F3A21C4.
func generateOrderNumber() string {
	id := uuid.New()
	return fmt.Sprintf("CC-%s-%s", time.Now().Format("20060102"), strings.ToUpper(id.String()[:8]))
}
