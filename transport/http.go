package transport

import (
	"encoding/json"
	"net/http"

	checkoutapp "github.com/campuscloset/marketplace/application/checkout"
	orderapp "github.com/campuscloset/marketplace/application/order"
	userapp "github.com/campuscloset/marketplace/application/user"
	"github.com/campuscloset/marketplace/cmd/config"
	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	"github.com/campuscloset/marketplace/utils/csrf"
	"github.com/campuscloset/marketplace/utils/errors"
	"github.com/campuscloset/marketplace/utils/ratelimit"
	validatorx "github.com/campuscloset/marketplace/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config      *config.Config
	UserApp     userapp.UserApp
	CheckoutApp checkoutapp.CheckoutApp
	OrderApp    orderapp.OrderApp
	Limiter     *ratelimit.Limiter
}

func NewTransport(cfg *config.Config, userApp userapp.UserApp, checkoutApp checkoutapp.CheckoutApp,
	orderApp orderapp.OrderApp, limiter *ratelimit.Limiter) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:      cfg,
		UserApp:     userApp,
		CheckoutApp: checkoutApp,
		OrderApp:    orderApp,
		Limiter:     limiter,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/csrf", rh.CSRFToken).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id:[0-9]+}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/admin/orders/{id:[0-9]+}", rh.AdminUpdateOrder).Methods(http.MethodPatch)
	mux.HandleFunc("/vendor/orders/{id:[0-9]+}", rh.VendorUpdateOrder).Methods(http.MethodPatch)

	// Internal routes (service API key, used by the expiration consumer)
	mux.Handle("/internal/v1/order/{id:[0-9]+}/expire",
		InternalMiddleware(cfg.Internal.APIKey)(http.HandlerFunc(rh.InternalExpireOrder))).Methods(http.MethodPost)

	// middleware; rate limiting sits before auth so floods never reach the
	// session validator
	mux.Use(LoggingMiddleware())
	mux.Use(CheckoutRateLimitMiddleware(limiter, cfg))
	mux.Use(AuthMiddleware(userApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.ViolatedFields(err)))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.ViolatedFields(err)))
		return
	}

	// Verification attempts are gated without being consumed up front: the
	// probe costs nothing, only a failed login burns an attempt, and a
	// successful one clears the counter entirely.
	policy := ratelimit.Policy{
		MaxAttempts: s.Config.RateLimit.LoginMaxAttempts,
		Window:      s.Config.RateLimit.LoginWindow,
		Block:       s.Config.RateLimit.LoginBlock,
	}
	identifier := clientIP(r) + ":" + req.Identifier
	if result := s.Limiter.Check(ctx, identifier, constant.RateLimitLogin, policy, 0); !result.Allowed {
		writeError(w, errors.SetRateLimitedError(result.RetryAfter))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		if t := errors.TypeOf(err); t == constant.ErrInvalidPassword || t == constant.ErrNotFound {
			s.Limiter.Check(ctx, identifier, constant.RateLimitLogin, policy, 1)
		}
		writeError(w, err)
		return
	}

	_ = s.Limiter.Clear(ctx, identifier, constant.RateLimitLogin)
	writeSuccess(w, res)
}

// CSRFToken handler
// @Summary Issue CSRF token
// @Description Mint a double-submit CSRF token bound to the caller's session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /csrf [get]
func (s *RestHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	token, cookie, err := csrf.Mint()
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	http.SetCookie(w, cookie)
	writeSuccess(w, map[string]string{"csrfToken": token})
}
