//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pos_backend/internal/cache/memory"
	"github.com/Gunvolt24/pos_backend/internal/repo/postgres"
	"github.com/Gunvolt24/pos_backend/internal/testutil"
	rest "github.com/Gunvolt24/pos_backend/internal/transport/http"
	"github.com/Gunvolt24/pos_backend/internal/usecase"
	"github.com/Gunvolt24/pos_backend/pkg/validate"
)

type httpEnv struct {
	server *httptest.Server
	pg     *testutil.PGContainer
}

func startHTTP(t *testing.T) *httpEnv {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	log := tLogger{t}
	cache := memory.NewCatalogCacheTTL(time.Minute)

	orderRepo := postgres.NewOrderRepository(pg.Pool)
	menuRepo := postgres.NewMenuRepository(pg.Pool)
	invRepo := postgres.NewInventoryRepository(pg.Pool)
	accRepo := postgres.NewAccountRepository(pg.Pool)
	repRepo := postgres.NewReportRepository(pg.Pool)

	h := rest.NewHandler(
		usecase.NewOrderService(orderRepo, menuRepo, cache, log, validate.NewOrderValidator()),
		usecase.NewMenuService(menuRepo, cache, log),
		usecase.NewInventoryService(invRepo, log),
		usecase.NewAccountService(accRepo, log),
		usecase.NewReportService(repRepo, log),
		log,
		3*time.Second,
	)

	srv := httptest.NewServer(rest.NewRouter(h, "", ""))
	t.Cleanup(srv.Close)

	return &httpEnv{server: srv, pg: pg}
}

type tLogger struct{ t *testing.T }

func (l tLogger) Infof(_ context.Context, format string, args ...any)  { l.t.Logf("INFO "+format, args...) }
func (l tLogger) Warnf(_ context.Context, format string, args ...any)  { l.t.Logf("WARN "+format, args...) }
func (l tLogger) Errorf(_ context.Context, format string, args ...any) { l.t.Logf("ERROR "+format, args...) }

func (e *httpEnv) request(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, payload
}

func TestHTTP_OrderLifecycle(t *testing.T) {
	env := startHTTP(t)

	// Создание.
	resp, body := env.request(t, http.MethodPost, "/api/addOrder", map[string]any{
		"items": [][2]int64{{10, 2}, {20, 1}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var created struct {
		Success  bool  `json:"success"`
		OrderKey int64 `json:"order_key"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.True(t, created.Success)
	require.Positive(t, created.OrderKey)

	key := strconv.FormatInt(created.OrderKey, 10)

	// Чтение.
	resp, body = env.request(t, http.MethodGet, "/getOrderByKey/"+key, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var fetched struct {
		Success bool `json:"success"`
		Order   struct {
			OrderKey int64 `json:"order_key"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(body, &fetched))
	require.True(t, fetched.Success)
	require.Equal(t, created.OrderKey, fetched.Order.OrderKey)

	// Замена позиций.
	resp, body = env.request(t, http.MethodPost, "/api/updateOrder/"+key, map[string]any{
		"items": [][2]int64{{30, 5}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.request(t, http.MethodGet, "/api/getOrderComponents/"+key, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var components struct {
		Success         bool `json:"success"`
		OrderComponents []struct {
			MenuItem int64 `json:"menu_item"`
			Count    int64 `json:"count"`
		} `json:"orderComponents"`
	}
	require.NoError(t, json.Unmarshal(body, &components))
	require.True(t, components.Success)
	require.Len(t, components.OrderComponents, 1)
	require.Equal(t, int64(30), components.OrderComponents[0].MenuItem)
	require.Equal(t, int64(5), components.OrderComponents[0].Count)
}

func TestHTTP_GetOrderByKey_Missing404(t *testing.T) {
	env := startHTTP(t)

	resp, body := env.request(t, http.MethodGet, "/getOrderByKey/999999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode, string(body))
}

func TestHTTP_GetOrdersRange(t *testing.T) {
	env := startHTTP(t)

	before := time.Now().Unix() - 10
	resp, body := env.request(t, http.MethodPost, "/api/addOrder", map[string]any{
		"items": [][2]int64{{1, 1}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	after := time.Now().Unix() + 10

	resp, body = env.request(t, http.MethodGet,
		"/api/getOrders?timestampFrom="+strconv.FormatInt(before, 10)+"&timestampTo="+strconv.FormatInt(after, 10), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var refs []struct {
		OrderKey  int64 `json:"order_key"`
		Timestamp int64 `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(body, &refs))
	require.Len(t, refs, 1)
}

func TestHTTP_MenuEndToEnd(t *testing.T) {
	env := startHTTP(t)
	ctx := context.Background()

	// Категория и регион нужны заранее: addMenuItem резолвит категорию по имени.
	_, err := env.pg.Pool.Exec(ctx, `INSERT INTO categories (name) VALUES ('Coffee')`)
	require.NoError(t, err)
	_, err = env.pg.Pool.Exec(ctx, `INSERT INTO regions (name) VALUES ('EU')`)
	require.NoError(t, err)

	resp, body := env.request(t, http.MethodPut, "/api/addMenuItem", map[string]any{
		"name":         "Latte",
		"price":        4.5,
		"categoryName": "Coffee",
		"region":       1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.request(t, http.MethodPost, "/populatemenulist", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var menu struct {
		Success        bool `json:"success"`
		MenuCategories []struct {
			Name  string `json:"name"`
			Items []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"items"`
		} `json:"menuCategories"`
	}
	require.NoError(t, json.Unmarshal(body, &menu))
	require.True(t, menu.Success)
	require.Len(t, menu.MenuCategories, 1)
	require.Equal(t, "Coffee", menu.MenuCategories[0].Name)
	require.Len(t, menu.MenuCategories[0].Items, 1)
	require.Equal(t, "Latte", menu.MenuCategories[0].Items[0].Name)

	// Неизвестная категория в populatemenuitems — 404.
	resp, body = env.request(t, http.MethodPost, "/populatemenuitems", map[string]any{
		"categoryName": "Desserts",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode, string(body))
}

func TestHTTP_AccountsFlow(t *testing.T) {
	env := startHTTP(t)

	resp, body := env.request(t, http.MethodPost, "/addUser", map[string]any{
		"email":      "manager@example.com",
		"permission": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.request(t, http.MethodGet, "/getAccount?email=manager@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var acc struct {
		Email      string `json:"email"`
		Permission int    `json:"permission"`
	}
	require.NoError(t, json.Unmarshal(body, &acc))
	require.Equal(t, "manager@example.com", acc.Email)
	require.Equal(t, 2, acc.Permission)

	resp, body = env.request(t, http.MethodPut, "/changePermission", map[string]any{
		"email":         "manager@example.com",
		"newPermission": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.request(t, http.MethodPost, "/removeUser", map[string]any{
		"email": "manager@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = env.request(t, http.MethodGet, "/getAccount?email=manager@example.com", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTP_InventoryFlow(t *testing.T) {
	env := startHTTP(t)

	resp, body := env.request(t, http.MethodPost, "/addIngredient/milk", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	inDate := time.Now().UnixMilli()
	resp, body = env.request(t, http.MethodPost, "/addBatch", map[string]any{
		"in_date":       inDate,
		"amount":        120,
		"ingredient_id": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.request(t, http.MethodGet, "/getTotalAmount/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var total struct {
		TotalAmount int64 `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(body, &total))
	require.Equal(t, int64(120), total.TotalAmount)
}

func TestHTTP_PingMetricsAndUnknownRoute(t *testing.T) {
	env := startHTTP(t)

	resp, body := env.request(t, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(body))

	resp, body = env.request(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body)

	resp, _ = env.request(t, http.MethodGet, "/no/such/route", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
