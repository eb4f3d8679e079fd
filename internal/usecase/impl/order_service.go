package impl

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Config     *config.Config
	OrderAPI   service.OrderAPI
	CartAPI    service.CartAPI
	AddressAPI service.AddressAPI
	UserAPI    service.UserAPI
	Tokens     repository.TokenRepository
	Decoder    service.TokenDecoder
	QRCode     service.QRCodeService
	Mirror     usecase.CartMirror
	Logger     *slog.Logger
}

type orderService struct {
	orders    service.OrderAPI
	carts     service.CartAPI
	addresses service.AddressAPI
	users     service.UserAPI
	tokens    repository.TokenRepository
	decoder   service.TokenDecoder
	qrCode    service.QRCodeService
	mirror    usecase.CartMirror
	returnURL string
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders:    params.OrderAPI,
		carts:     params.CartAPI,
		addresses: params.AddressAPI,
		users:     params.UserAPI,
		tokens:    params.Tokens,
		decoder:   params.Decoder,
		qrCode:    params.QRCode,
		mirror:    params.Mirror,
		returnURL: params.Config.Checkout.ReturnURL,
		logger:    params.Logger,
	}
}

// currentCart returns the cart to check out, or ErrEmptyCart.
func (srv *orderService) currentCart(ctx context.Context) (*entity.CartView, error) {
	view, err := srv.carts.GetCart(ctx)
	if err != nil {
		var upErr *domainerrors.UpstreamError
		if errors.As(err, &upErr) && upErr.StatusCode == http.StatusNotFound {
			return nil, errors.WithStack(domainerrors.ErrEmptyCart)
		}

		return nil, errors.WithStack(err)
	}

	if view.Empty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	return view, nil
}

// PrepareCheckout loads the cart and the saved addresses concurrently.
func (srv *orderService) PrepareCheckout(ctx context.Context) (*usecase.CheckoutPage, error) {
	page := &usecase.CheckoutPage{Addresses: []entity.Address{}}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		view, err := srv.currentCart(groupCtx)
		if err != nil {
			return err
		}
		page.CartID = view.Cart.ID
		page.Cart = view.Cart

		return nil
	})
	group.Go(func() error {
		addresses, err := srv.addresses.ListAddresses(groupCtx)
		if err != nil {
			loggerFor(ctx, srv.logger).Warn("Failed to load saved addresses", slog.Any("error", err))

			return nil
		}
		page.Addresses = addresses

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

// CreateCashOrder places a cash-on-delivery order for the current cart.
func (srv *orderService) CreateCashOrder(ctx context.Context, address entity.ShippingAddress) (*entity.Order, error) {
	logger := loggerFor(ctx, srv.logger)

	view, err := srv.currentCart(ctx)
	if err != nil {
		return nil, err
	}

	order, err := srv.orders.CreateCashOrder(ctx, view.Cart.ID, address)
	if err != nil {
		logger.Warn("Cash order failed", slog.String("cart_id", view.Cart.ID), slog.Any("error", err))

		return nil, userFacing(err, domainerrors.ErrOrderFailed)
	}

	// The server empties the cart on order.
	count := srv.mirror.RefreshCartCount(ctx)
	logger.Info("Cash order placed", slog.String("order_id", order.ID), slog.Int("cart_count", count))

	return order, nil
}

// CreateCheckoutSession opens a hosted card payment for the current cart.
// A QR rendering failure is logged; the URL alone is still usable.
func (srv *orderService) CreateCheckoutSession(ctx context.Context, address entity.ShippingAddress) (*entity.CheckoutSession, error) {
	logger := loggerFor(ctx, srv.logger)

	view, err := srv.currentCart(ctx)
	if err != nil {
		return nil, err
	}

	url, err := srv.orders.CreateCheckoutSession(ctx, view.Cart.ID, srv.returnURL, address)
	if err != nil {
		logger.Warn("Checkout session failed", slog.String("cart_id", view.Cart.ID), slog.Any("error", err))

		return nil, userFacing(err, domainerrors.ErrCheckoutFailed)
	}

	session := &entity.CheckoutSession{URL: url}

	png, err := srv.qrCode.GenerateURLQR(url)
	if err != nil {
		logger.Warn("Failed to render checkout QR code", slog.Any("error", err))
	} else {
		session.QRCode = png
	}

	logger.Info("Checkout session created", slog.String("cart_id", view.Cart.ID))

	return session, nil
}

// ListMyOrders lists the orders of the user the token was issued to.
func (srv *orderService) ListMyOrders(ctx context.Context) ([]entity.Order, error) {
	token, err := srv.tokens.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session token")
	}

	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	claims, err := srv.decoder.Decode(token)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Session token is unreadable", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	orders, err := srv.orders.ListUserOrders(ctx, claims.UserID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return orders, nil
}

func (srv *orderService) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.orders.ListAllOrders(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return orders, nil
}

func (srv *orderService) ListUsers(ctx context.Context) ([]entity.Profile, error) {
	users, err := srv.users.ListUsers(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}
