package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	utilsContext "github.com/campuscloset/marketplace/utils/context"
	"github.com/campuscloset/marketplace/utils/csrf"
	"github.com/campuscloset/marketplace/utils/errors"
	validatorx "github.com/campuscloset/marketplace/utils/validator"
	"github.com/gorilla/mux"
)

func orderIDFromPath(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// GetOrder handler
// @Summary Get one order
// @Description Parent order with vendor orders and the summary status projection
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderView
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := orderIDFromPath(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	grant, err := s.UserApp.GetGrant(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := s.OrderApp.GetOrder(ctx, orderID, userID, grant)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, view)
}

// AdminUpdateOrder handler
// @Summary Admin order mutation
// @Description Status change, payment collection, or cancellation of a parent order
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.AdminOrderActionRequest true "Action Request"
// @Success 200 {object} model.OrderView
// @Failure 400 {object} errors.CustomError
// @Failure 403 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /admin/orders/{id} [patch]
func (s *RestHandler) AdminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := orderIDFromPath(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AdminOrderActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.ViolatedFields(err)))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if !csrf.Validate(r, req.CSRF) {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	grant, err := s.UserApp.GetGrant(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if grant.Role != constant.RoleAdmin {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	switch {
	case req.Action == "collect_payment":
		err = s.OrderApp.CollectPayment(ctx, orderID, userID)
	case req.Action == "cancel":
		reason := req.CancellationReason
		if reason == "" {
			reason = "cancelled by admin"
		}
		err = s.OrderApp.CancelOrder(ctx, orderID, reason)
	case req.Status == constant.OrderStatusCancelled:
		reason := req.CancellationReason
		if reason == "" {
			reason = "cancelled by admin"
		}
		err = s.OrderApp.CancelOrder(ctx, orderID, reason)
	case req.Status != "":
		err = s.OrderApp.UpdateStatus(ctx, orderID, req.Status, req.RiderID)
	default:
		err = errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "either action or status is required")
	}
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := s.OrderApp.GetOrder(ctx, orderID, userID, grant)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, view)
}

// VendorUpdateOrder handler
// @Summary Vendor sub-order mutation
// @Description Update a vendor order's status and tracking, scoped to the acting vendor's own orders
// @Tags Vendor
// @Accept json
// @Produce json
// @Param id path int true "Vendor Order ID"
// @Param request body model.VendorOrderUpdateRequest true "Update Request"
// @Success 200 {object} responseEnvelope
// @Failure 403 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /vendor/orders/{id} [patch]
func (s *RestHandler) VendorUpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vendorOrderID, err := orderIDFromPath(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.VendorOrderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.ViolatedFields(err)))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if !csrf.Validate(r, req.CSRF) {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	grant, err := s.UserApp.GetGrant(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.UpdateVendorOrder(ctx, vendorOrderID, grant, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// InternalExpireOrder is the expiration consumer's callback; it reclaims
// the reservations of an order that sat unpaid past its expiry.
func (s *RestHandler) InternalExpireOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := orderIDFromPath(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.ExpireOrder(ctx, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
