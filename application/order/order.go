package order

import (
	"context"
	"time"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	inventoryrepo "github.com/campuscloset/marketplace/repository/inventory"
	orderrepo "github.com/campuscloset/marketplace/repository/order"
	riderrepo "github.com/campuscloset/marketplace/repository/rider"
	txrepo "github.com/campuscloset/marketplace/repository/tx"
	"github.com/campuscloset/marketplace/utils/errors"
	"github.com/campuscloset/marketplace/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type OrderApp interface {
	UpdateStatus(ctx context.Context, orderID uint64, status constant.OrderStatus, riderID *uint64) error
	CollectPayment(ctx context.Context, orderID, collectedBy uint64) error
	CancelOrder(ctx context.Context, orderID uint64, reason string) error
	ExpireOrder(ctx context.Context, orderID uint64) error
	UpdateVendorOrder(ctx context.Context, vendorOrderID uint64, grant *model.Grant, req *model.VendorOrderUpdateRequest) error
	GetOrder(ctx context.Context, orderID, callerID uint64, grant *model.Grant) (*model.OrderView, error)
}

type orderAppImpl struct {
	txRepo        txrepo.TxRepository
	orderRepo     orderrepo.OrderRepository
	inventoryRepo inventoryrepo.InventoryRepository
	riderRepo     riderrepo.RiderRepository
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository,
	inventoryRepo inventoryrepo.InventoryRepository, riderRepo riderrepo.RiderRepository) OrderApp {
	return &orderAppImpl{
		txRepo:        txRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		riderRepo:     riderRepo,
	}
}

// UpdateStatus moves the parent order along the fulfillment chain. The
// current status is re-read under lock inside the same transaction as the
// write, so a concurrent cancellation cannot slip between check and act.
// Cancellation itself must go through CancelOrder so the stock release
// rides the same transaction.
func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID uint64, status constant.OrderStatus, riderID *uint64) error {
	if status == constant.OrderStatusCancelled {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "use the cancel action to cancel an order")
	}

	if riderID != nil {
		rider, err := s.riderRepo.GetByID(ctx, *riderID)
		if err != nil {
			logger.Error("[UpdateStatus] get rider", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if rider == nil || !rider.Active {
			return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "rider is unknown or inactive")
		}
	}

	err := txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		detail, err := s.orderRepo.GetParentOrderTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[UpdateStatus] get order", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		if !constant.CanTransitionOrder(detail.Status, status) {
			return errors.SetInvalidTransitionError(string(detail.Status), string(status))
		}
		if detail.Status == status && riderID == nil {
			// idempotent no-op
			return nil
		}

		// out_for_delivery needs a rider already assigned or assigned now
		if status == constant.OrderStatusOutForDelivery && detail.RiderID == nil && riderID == nil {
			return errors.SetCustomErrorWithDetail(constant.ErrPreconditionFailed, "a rider must be assigned before out_for_delivery")
		}

		if err := s.orderRepo.UpdateParentStatusTx(ctx, tx, orderID, status, riderID); err != nil {
			logger.Error("[UpdateStatus] update status", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	return wrapTxErr(err)
}

// CollectPayment settles a COD/UPI order at the door. Legal only once
// delivered; calling it again after success is a no-op, not an error.
func (s *orderAppImpl) CollectPayment(ctx context.Context, orderID, collectedBy uint64) error {
	err := txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		detail, err := s.orderRepo.GetParentOrderTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[CollectPayment] get order", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		if detail.Status == constant.OrderStatusPaymentCollected &&
			detail.PaymentStatus == constant.PaymentStatusCollected {
			// already settled, repeat calls succeed without a second write
			return nil
		}
		if detail.Status != constant.OrderStatusDelivered {
			return errors.SetCustomErrorWithDetail(constant.ErrPreconditionFailed,
				"payment can only be collected on a delivered order")
		}

		if err := s.orderRepo.MarkPaymentCollectedTx(ctx, tx, orderID, collectedBy, time.Now()); err != nil {
			logger.Error("[CollectPayment] mark collected", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	return wrapTxErr(err)
}

// CancelOrder aborts an order that has not been settled yet. The stock
// release and the status write commit together; an order row marked
// cancelled with its reservations still held is never visible.
func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID uint64, reason string) error {
	err := txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		detail, err := s.orderRepo.GetParentOrderTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[CancelOrder] get order", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		if detail.Status == constant.OrderStatusPaymentCollected ||
			detail.PaymentStatus == constant.PaymentStatusCollected {
			return errors.SetCustomErrorWithDetail(constant.ErrPreconditionFailed,
				"order cannot be cancelled after payment collection")
		}
		if detail.Status == constant.OrderStatusCancelled {
			return nil
		}

		if err := s.inventoryRepo.ReleaseReservationsTx(ctx, tx, orderID); err != nil {
			logger.Error("[CancelOrder] release reservations", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.orderRepo.MarkCancelledTx(ctx, tx, orderID, reason); err != nil {
			logger.Error("[CancelOrder] mark cancelled", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.orderRepo.CancelVendorOrdersTx(ctx, tx, orderID); err != nil {
			logger.Error("[CancelOrder] cancel vendor orders", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	return wrapTxErr(err)
}

// ExpireOrder is the reclaim sweep's callback: it cancels an order that is
// still sitting unpaid past its expiry and returns its held stock. Orders
// that were paid or progressed in the meantime are left untouched.
func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID uint64) error {
	err := txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		detail, err := s.orderRepo.GetParentOrderTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[ExpireOrder] get order", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return nil
		}

		stillPlaced := detail.Status == constant.OrderStatusPending || detail.Status == constant.OrderStatusPlaced
		if !stillPlaced || detail.PaymentStatus != constant.PaymentStatusPending {
			return nil
		}
		if time.Now().Before(detail.ExpiresAt) {
			return nil
		}

		if err := s.inventoryRepo.ReleaseReservationsTx(ctx, tx, orderID); err != nil {
			logger.Error("[ExpireOrder] release reservations", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.orderRepo.MarkCancelledTx(ctx, tx, orderID, "order expired"); err != nil {
			logger.Error("[ExpireOrder] mark cancelled", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.orderRepo.CancelVendorOrdersTx(ctx, tx, orderID); err != nil {
			logger.Error("[ExpireOrder] cancel vendor orders", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	return wrapTxErr(err)
}

// UpdateVendorOrder lets a vendor (own orders only) or an admin move one
// sub-order along its chain and set tracking metadata. Transitions are
// adjacency-guarded, same as the parent order.
func (s *orderAppImpl) UpdateVendorOrder(ctx context.Context, vendorOrderID uint64, grant *model.Grant, req *model.VendorOrderUpdateRequest) error {
	err := txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		detail, err := s.orderRepo.GetVendorOrderTx(ctx, tx, vendorOrderID)
		if err != nil {
			logger.Error("[UpdateVendorOrder] get vendor order", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		if !s.canMutateVendorOrder(grant, detail) {
			return errors.SetCustomError(constant.ErrForbidden)
		}

		if !constant.CanTransitionVendorOrder(detail.Status, req.Status) {
			return errors.SetInvalidTransitionError(string(detail.Status), string(req.Status))
		}

		if err := s.orderRepo.UpdateVendorOrderTx(ctx, tx, vendorOrderID, req); err != nil {
			logger.Error("[UpdateVendorOrder] update", zap.String("error", err.Error()), logger.RequestID(ctx))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	return wrapTxErr(err)
}

func (s *orderAppImpl) canMutateVendorOrder(grant *model.Grant, detail *model.VendorOrderDetail) bool {
	if grant == nil {
		return false
	}
	if grant.Role == constant.RoleAdmin {
		return true
	}
	return grant.Role == constant.RoleVendor && grant.VendorID != nil && *grant.VendorID == detail.VendorID
}

// GetOrder returns the parent order with its vendor orders and the
// display-only summary projection. Owner and admin only.
func (s *orderAppImpl) GetOrder(ctx context.Context, orderID, callerID uint64, grant *model.Grant) (*model.OrderView, error) {
	detail, err := s.orderRepo.GetParentOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()), logger.RequestID(ctx))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	isAdmin := grant != nil && grant.Role == constant.RoleAdmin
	if detail.UserID != callerID && !isAdmin {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	vendorOrders, err := s.orderRepo.ListVendorOrders(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] list vendor orders", zap.String("error", err.Error()), logger.RequestID(ctx))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	statuses := make([]constant.VendorOrderStatus, 0, len(vendorOrders))
	for _, vo := range vendorOrders {
		statuses = append(statuses, vo.Status)
	}

	return &model.OrderView{
		Order:         detail,
		VendorOrders:  vendorOrders,
		SummaryStatus: constant.SummaryStatus(statuses),
	}, nil
}

// wrapTxErr keeps CustomErrors intact and maps raw begin/commit failures
// to ErrInternal.
func wrapTxErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(errors.CustomError); ok {
		return err
	}
	logger.Error("[OrderApp] tx failure", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
