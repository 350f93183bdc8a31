package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/golang/mock/gomock"
)

func TestGetIngredientsWithData_IncludesTotals(t *testing.T) {
	env := newTestEnv(t)

	ingredients := []domain.Ingredient{
		{ID: 1, Name: "Milk", Price: 1.2},
		{ID: 2, Name: "Beans", Price: 8},
	}
	env.inventory.EXPECT().ListIngredients(gomock.Any()).Return(ingredients, nil)
	env.inventory.EXPECT().TotalAmount(gomock.Any(), int64(1)).Return(int64(120), nil)
	env.inventory.EXPECT().TotalAmount(gomock.Any(), int64(2)).Return(int64(0), nil)

	w := env.do(http.MethodGet, "/getIngredientsWithData", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var got struct {
		Success bool                     `json:"success"`
		Data    []domain.IngredientStock `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Data) != 2 || got.Data[0].TotalAmount != 120 || got.Data[1].TotalAmount != 0 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestAddIngredient_DefaultsPriceToOne(t *testing.T) {
	env := newTestEnv(t)

	env.inventory.EXPECT().AddIngredient(gomock.Any(), "sugar", 1.0).Return(int64(3), nil)

	w := env.do(http.MethodPost, "/addIngredient/sugar", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestToggleSinker_OK(t *testing.T) {
	env := newTestEnv(t)

	env.inventory.EXPECT().ToggleSinker(gomock.Any(), int64(4)).Return(nil)

	w := env.do(http.MethodPut, "/toggleSinker/4", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddBatch_ComputesExpiration(t *testing.T) {
	env := newTestEnv(t)

	const inDate = int64(1_700_000_000_000)
	const week = int64(7 * 24 * 60 * 60 * 1000)
	env.inventory.EXPECT().
		AddBatch(gomock.Any(), domain.Batch{
			InDate:         inDate,
			ExpirationDate: inDate + week,
			Amount:         50,
			IngredientID:   2,
		}).
		Return(int64(1), nil)

	w := env.do(http.MethodPost, "/addBatch",
		`{"in_date":1700000000000,"amount":50,"ingredient_id":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddBatch_Malformed_400(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]string{
		"no in_date":     `{"amount":50,"ingredient_id":2}`,
		"zero amount":    `{"in_date":1700000000000,"amount":0,"ingredient_id":2}`,
		"not json":       `in_date=5`,
		"missing fields": `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/addBatch", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestRemoveBatch_NotFound_404(t *testing.T) {
	env := newTestEnv(t)

	env.inventory.EXPECT().RemoveBatch(gomock.Any(), int64(999)).Return(false, nil)

	w := env.do(http.MethodPost, "/removeBatch", `{"batch_key":999}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRemoveAmountToBatch_NegatesDelta(t *testing.T) {
	env := newTestEnv(t)

	env.inventory.EXPECT().AddAmount(gomock.Any(), int64(5), int64(-30)).Return(nil)

	w := env.do(http.MethodPost, "/removeAmountToBatch", `{"amountToRemove":30,"batchKey":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestSetBatchAmount_NegativeAmount_400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/setBatchAmount", `{"amount":-5,"batchKey":5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetTotalAmount_OK(t *testing.T) {
	env := newTestEnv(t)

	env.inventory.EXPECT().TotalAmount(gomock.Any(), int64(7)).Return(int64(140), nil)

	w := env.do(http.MethodGet, "/getTotalAmount/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var got struct {
		TotalAmount int64 `json:"totalAmount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.TotalAmount != 140 {
		t.Fatalf("want 140, got %d", got.TotalAmount)
	}
}
