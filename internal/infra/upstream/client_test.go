package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type fakeUpstream struct {
	*httptest.Server
	mux   *http.ServeMux
	calls atomic.Int32
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()

	f := &fakeUpstream{mux: http.NewServeMux()}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)

	return f
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, baseURL string) (*Client, repository.TokenRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bucket := memblob.OpenBucket(nil)
	tokens := tokenstore.NewBlobStore(bucket, "token", logger)
	t.Cleanup(func() { _ = tokens.Close() })

	return New(baseURL, &http.Client{Timeout: 5 * time.Second}, tokens, logger), tokens
}

func upstreamKind(t *testing.T, err error) domainerrors.UpstreamKind {
	t.Helper()

	var upErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upErr), "expected UpstreamError, got %v", err)

	return upErr.Kind
}

func TestSignIn_Success(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var creds service.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.co", creds.Email)
		assert.Empty(t, r.Header.Get(TokenHeader))

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "success",
			"user":    map[string]string{"name": "Ann", "email": "a@b.co", "role": "user"},
			"token":   "tok-1",
		})
	})

	client, _ := newTestClient(t, up.URL)
	result, err := client.SignIn(context.Background(), service.Credentials{Email: "a@b.co", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Token)
	assert.Equal(t, "Ann", result.User.Name)
	assert.Equal(t, entity.RoleUser, result.User.Role)
}

func TestSignIn_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     map[string]any
		wantKind domainerrors.UpstreamKind
		wantMsg  string
	}{
		{
			name:     "http 401 with message",
			status:   http.StatusUnauthorized,
			body:     map[string]any{"statusMsg": "fail", "message": "Incorrect email or password"},
			wantKind: domainerrors.UpstreamHTTP,
			wantMsg:  "Incorrect email or password",
		},
		{
			name:     "200 without success marker",
			status:   http.StatusOK,
			body:     map[string]any{"message": "fail"},
			wantKind: domainerrors.UpstreamBusiness,
			wantMsg:  "fail",
		},
		{
			name:     "validation errors",
			status:   http.StatusBadRequest,
			body:     map[string]any{"message": "fail", "errors": map[string]string{"msg": "Invalid email"}},
			wantKind: domainerrors.UpstreamHTTP,
			wantMsg:  "Invalid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := newFakeUpstream(t)
			up.mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			client, _ := newTestClient(t, up.URL)
			_, err := client.SignIn(context.Background(), service.Credentials{Email: "a@b.co", Password: "x"})

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, upstreamKind(t, err))
			assert.Equal(t, tt.wantMsg, domainerrors.UserMessage(err, ""))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	up := newFakeUpstream(t)
	url := up.URL
	up.Close()

	client, _ := newTestClient(t, url)
	_, err := client.ListCategories(context.Background())

	require.Error(t, err)
	assert.Equal(t, domainerrors.UpstreamTransport, upstreamKind(t, err))
	assert.Equal(t, "Something went wrong", domainerrors.UserMessage(err, ""))
}

func TestTokenGatedCall_WithoutTokenMakesNoRequest(t *testing.T) {
	up := newFakeUpstream(t)
	client, _ := newTestClient(t, up.URL)

	_, err := client.GetCart(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.Zero(t, up.calls.Load())
}

func TestTokenGatedCall_SendsCustomHeader(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-1", r.Header.Get(TokenHeader))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "success",
			"numOfCartItems": 2,
			"data": map[string]any{
				"_id": "cart-1",
				"products": []map[string]any{
					{"_id": "l1", "count": 2, "price": 10, "product": map[string]any{"_id": "p1", "title": "Shirt"}},
				},
				"totalCartPrice": 20,
			},
		})
	})

	client, tokens := newTestClient(t, up.URL)
	require.NoError(t, tokens.Save(context.Background(), "tok-1", time.Hour))

	view, err := client.GetCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, "cart-1", view.Cart.ID)
	assert.Equal(t, "Shirt", view.Cart.Products[0].Product.Title)
}

func TestTokenIsReadOnEveryCall(t *testing.T) {
	up := newFakeUpstream(t)
	var (
		mu   sync.Mutex
		seen []string
	)
	up.mux.HandleFunc("GET /wishlist", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get(TokenHeader))
		mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": []any{}})
	})

	client, tokens := newTestClient(t, up.URL)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, "first", time.Hour))
	_, err := client.GetWishlist(ctx)
	require.NoError(t, err)

	require.NoError(t, tokens.Save(ctx, "second", time.Hour))
	_, err = client.GetWishlist(ctx)
	require.NoError(t, err)

	require.NoError(t, tokens.Delete(ctx))
	_, err = client.GetWishlist(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestSuccessRulesPerEndpoint(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("POST /auth/forgotPasswords", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"statusMsg": "success", "message": "Reset code sent to your email"})
	})
	up.mux.HandleFunc("POST /auth/verifyResetCode", func(w http.ResponseWriter, r *http.Request) {
		// lower-case "success" is not what this endpoint says on success
		writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
	})
	up.mux.HandleFunc("PUT /auth/resetPassword", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": "fresh"})
	})
	up.mux.HandleFunc("DELETE /cart", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "success"})
	})

	client, tokens := newTestClient(t, up.URL)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, "tok", time.Hour))

	msg, err := client.ForgotPassword(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "Reset code sent to your email", msg)

	err = client.VerifyResetCode(ctx, "123456")
	require.Error(t, err)
	assert.Equal(t, domainerrors.UpstreamBusiness, upstreamKind(t, err))

	token, err := client.ResetPassword(ctx, "a@b.co", "newpass")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)

	require.NoError(t, client.ClearCart(ctx))
}

func TestListProducts_FilterQuery(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "brand=b1&category[in]=c1&limit=4", r.URL.RawQuery)
		writeJSON(w, http.StatusOK, map[string]any{
			"results": 1,
			"data":    []map[string]any{{"_id": "p1", "id": "p1", "title": "Mug", "price": 5}},
		})
	})

	client, _ := newTestClient(t, up.URL)
	products, err := client.ListProducts(context.Background(), entity.ProductFilter{Category: "c1", Brand: "b1", Limit: 4})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Title)
}

func TestGetProduct_NotFound(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("GET /products/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"statusMsg": "fail", "message": "No product for this id"})
	})

	client, _ := newTestClient(t, up.URL)
	_, err := client.GetProduct(context.Background(), "missing")

	var upErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusNotFound, upErr.HTTPCode())
}

func TestWishlistMutation_ReturnsServerIDs(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("POST /wishlist", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": "Product added successfully to your wishlist", "data": []string{"p0", "p1"}})
	})
	up.mux.HandleFunc("DELETE /wishlist/p1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": []string{"p0"}})
	})

	client, tokens := newTestClient(t, up.URL)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, "tok", time.Hour))

	ids, err := client.AddToWishlist(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p0", "p1"}, ids)

	ids, err = client.RemoveFromWishlist(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p0"}, ids)
}

func TestCartMutation_FlatProducts(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "success",
			"numOfCartItems": 1,
			"data": map[string]any{
				"_id":            "cart-1",
				"products":       []map[string]any{{"_id": "l1", "count": 1, "price": 10, "product": "p1"}},
				"totalCartPrice": 10,
			},
		})
	})

	client, tokens := newTestClient(t, up.URL)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, "tok", time.Hour))

	view, err := client.AddToCart(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
	assert.Equal(t, "p1", view.Cart.Products[0].Product.ProductID())
}

func TestCheckoutSession(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("POST /orders/checkout-session/cart-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "http://localhost:3000", r.URL.Query().Get("url"))

		var body shippingBody
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cairo", body.ShippingAddress.City)

		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "session": map[string]string{"url": "https://pay.example/cs_1"}})
	})

	client, tokens := newTestClient(t, up.URL)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, "tok", time.Hour))

	url, err := client.CreateCheckoutSession(ctx, "cart-1", "http://localhost:3000",
		entity.ShippingAddress{Details: "1 Nile St", Phone: "0100", City: "Cairo"})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_1", url)
}

func TestListUserOrders_BareArray(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("GET /orders/user/u1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "o1", "id": 7, "totalOrderPrice": 99, "paymentMethodType": "cash", "isPaid": false},
		})
	})

	client, _ := newTestClient(t, up.URL)
	orders, err := client.ListUserOrders(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 7, orders[0].Number)
	assert.Equal(t, entity.PaymentCash, orders[0].PaymentMethodType)
}

func TestCancelledContext(t *testing.T) {
	up := newFakeUpstream(t)
	release := make(chan struct{})
	up.mux.HandleFunc("GET /brands", func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}})
	})
	defer close(release)

	client, _ := newTestClient(t, up.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListBrands(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNonJSONBody(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	client, _ := newTestClient(t, up.URL)
	_, err := client.ListCategories(context.Background())

	require.Error(t, err)
	assert.Equal(t, domainerrors.UpstreamBusiness, upstreamKind(t, err))
}
