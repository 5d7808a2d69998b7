package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"tastelog/internal/domain/categories"
	"tastelog/internal/domain/reviews"
	"tastelog/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedApp(t *testing.T, app *application) (beerID int64) {
	t.Helper()
	ctx := context.Background()

	beer := &categories.Category{Name: "Beer"}
	require.NoError(t, app.store.Categories.Create(ctx, beer))

	stout := &reviews.Review{
		Score:      4,
		Name:       "Stout",
		TastedOn:   time.Now().AddDate(0, 0, -1),
		CategoryID: &beer.ID,
		Count:      2,
	}
	lager := &reviews.Review{
		Score:    3,
		Name:     "Lager",
		TastedOn: time.Now().AddDate(0, 0, -1),
		Count:    5,
	}
	require.NoError(t, app.store.Reviews.Create(ctx, stout))
	require.NoError(t, app.store.Reviews.Create(ctx, lager))

	return beer.ID
}

func TestCreateReview(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	body := `{"score":4,"name":"Saison","tasted_on":"2024-06-01","count":3}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusCreated, rr.Code)

	var resp struct {
		Data reviews.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotZero(t, resp.Data.ID)
	assert.Equal(t, "Saison", resp.Data.Name)
	assert.Equal(t, 4, resp.Data.Score)
}

func TestCreateReviewDefaultsDateToToday(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	body := `{"score":2,"name":"Espresso","count":1}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusCreated, rr.Code)

	var resp struct {
		Data reviews.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	y, m, d := time.Now().Date()
	ry, rm, rd := resp.Data.TastedOn.Date()
	assert.Equal(t, [3]int{y, int(m), d}, [3]int{ry, int(rm), rd})
}

func TestCreateReviewValidationFailure(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	// Blank name, score and count out of range: all three must be reported.
	body := `{"score":9,"name":"  ","count":0}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Violations []validate.Violation `json:"violations"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	fields := make(map[string]bool)
	for _, v := range resp.Violations {
		fields[v.Field] = true
	}
	assert.True(t, fields["Score"])
	assert.True(t, fields["Name"])
	assert.True(t, fields["Count"])
}

func TestCreateReviewBadDate(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	body := `{"score":3,"name":"Porter","tasted_on":"junk","count":1}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusBadRequest, rr.Code)
}

func TestSearchReviews(t *testing.T) {
	app := newTestApplication(t)
	seedApp(t, app)
	mux := app.mount()

	req, _ := http.NewRequest(http.MethodGet, "/v1/reviews?q=la", nil)
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []reviews.ReviewWithCategory `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Lager", resp.Data[0].Name)
	assert.Equal(t, "Undefined", resp.Data[0].CategoryName)
}

func TestSearchReviewsEmptyFilterReturnsAll(t *testing.T) {
	app := newTestApplication(t)
	seedApp(t, app)
	mux := app.mount()

	req, _ := http.NewRequest(http.MethodGet, "/v1/reviews", nil)
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []reviews.ReviewWithCategory `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Lager", resp.Data[0].Name)
	assert.Equal(t, "Stout", resp.Data[1].Name)
	assert.Equal(t, "Beer", resp.Data[1].CategoryName)
}

func TestGetReviewNotFound(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	req, _ := http.NewRequest(http.MethodGet, "/v1/reviews/12345", nil)
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusNotFound, rr.Code)
}

func TestUpdateReview(t *testing.T) {
	app := newTestApplication(t)
	seedApp(t, app)
	mux := app.mount()

	body := `{"score":5,"name":"Imperial Stout","count":3}`
	req, _ := http.NewRequest(http.MethodPut, "/v1/reviews/1", bytes.NewBufferString(body))
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusOK, rr.Code)

	stored, err := app.store.Reviews.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Imperial Stout", stored.Name)
	assert.Equal(t, 5, stored.Score)
	assert.Equal(t, 3, stored.Count)
}

func TestDeleteReview(t *testing.T) {
	app := newTestApplication(t)
	seedApp(t, app)
	mux := app.mount()

	req, _ := http.NewRequest(http.MethodDelete, "/v1/reviews/2", nil)
	rr := executeRequest(req, mux)
	checkResponseCode(t, http.StatusOK, rr.Code)

	req, _ = http.NewRequest(http.MethodDelete, "/v1/reviews/2", nil)
	rr = executeRequest(req, mux)
	checkResponseCode(t, http.StatusNotFound, rr.Code)
}

func TestCategoryTotal(t *testing.T) {
	app := newTestApplication(t)
	beerID := seedApp(t, app)
	mux := app.mount()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/categories/%d/total", beerID), nil)
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(2), resp.Data["total"])
}

func TestCategoryTotalEmptyCategoryIsZero(t *testing.T) {
	app := newTestApplication(t)
	seedApp(t, app)
	mux := app.mount()

	req, _ := http.NewRequest(http.MethodGet, "/v1/categories/777/total", nil)
	rr := executeRequest(req, mux)

	checkResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(0), resp.Data["total"])
}
