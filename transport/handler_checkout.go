package transport

import (
	"encoding/json"
	"net/http"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	utilsContext "github.com/campuscloset/marketplace/utils/context"
	"github.com/campuscloset/marketplace/utils/csrf"
	"github.com/campuscloset/marketplace/utils/errors"
	validatorx "github.com/campuscloset/marketplace/utils/validator"
)

// Checkout handler
// @Summary Place an order
// @Description Reserve stock and materialize a parent order with per-vendor sub-orders
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Failure 401 {object} errors.CustomError
// @Failure 403 {object} errors.CustomError
// @Failure 429 {object} errors.CustomError
// @Security BearerAuth
// @Router /checkout [post]
//
// The pipeline short-circuits stage by stage: rate limit (middleware) ->
// payload validation -> identity -> CSRF -> materialization. Nothing is
// mutated before the CSRF check passes.
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CheckoutRequest
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

	res, err := s.CheckoutApp.Checkout(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
