package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/configs"
	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertDelivered(t *testing.T, db *gorm.DB, orderID int64, p float64, qty int, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entity.OrderLine{
		Model:     gorm.Model{CreatedAt: at, UpdatedAt: at},
		OrderID:   orderID,
		UserEmail: "user@example.com",
		ItemName:  "Tea",
		Price:     p,
		Quantity:  qty,
		Delivered: true,
	}).Error)
}

func newForecastService(db *gorm.DB, url string) *services.ForecastService {
	cfg := &configs.Config{ForecastURL: url, ForecastTimeout: 500 * time.Millisecond}
	return services.NewForecastService(repository.NewReportRepository(db), cfg)
}

// seedDays writes one delivered line per day for the given daily values,
// ending yesterday.
func seedDays(t *testing.T, db *gorm.DB, values []float64) time.Time {
	t.Helper()
	end := time.Now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(len(values) - 1))
	for i, v := range values {
		at := start.AddDate(0, 0, i)
		insertDelivered(t, db, int64(i+1), v, 1, at)
	}
	return end
}

func TestForecastInsufficientHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newForecastService(db, "")

	_, err := svc.Forecast(context.Background(), 7)
	assert.ErrorIs(t, err, services.ErrInsufficientHistory)

	// two lines on the same date are one series point
	now := time.Now()
	insertDelivered(t, db, 1, 10, 1, now)
	insertDelivered(t, db, 2, 15, 1, now)
	_, err = svc.Forecast(context.Background(), 7)
	assert.ErrorIs(t, err, services.ErrInsufficientHistory)
}

func TestForecastFallbackFlatSeries(t *testing.T) {
	db := newTestDB(t)
	svc := newForecastService(db, "")

	end := seedDays(t, db, []float64{100, 100, 100, 100, 100})

	result, err := svc.Forecast(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, result.History, 5)
	require.Len(t, result.Forecast, 3)

	// flat history: slope 0 and mean == prior, so the walk stays flat
	for i, p := range result.Forecast {
		assert.InDelta(t, 100, p.Value, 1e-9)
		wantDate := end.AddDate(0, 0, i+1).Format("2006-01-02")
		assert.Equal(t, wantDate, p.Date)
	}
}

func TestForecastFallbackClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := newForecastService(db, "")

	// steep decline: slope dominates and the projection would go negative
	seedDays(t, db, []float64{50, 10})

	result, err := svc.Forecast(context.Background(), 2)
	require.NoError(t, err)
	for _, p := range result.Forecast {
		assert.GreaterOrEqual(t, p.Value, 0.0)
	}
	assert.Zero(t, result.Forecast[0].Value)
}

func TestForecastUsesExternalPredictor(t *testing.T) {
	db := newTestDB(t)
	seedDays(t, db, []float64{10, 20, 30})

	var gotReq struct {
		PastValues    []float64 `json:"past_values"`
		PastDates     []string  `json:"past_dates"`
		PredictLength int       `json:"predict_length"`
		LastDate      string    `json:"last_date"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forecast", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"forecast": []map[string]any{
				{"ds": "ignored", "yhat": 41.5},
				{"ds": "ignored", "yhat": 42.5},
			},
		})
	}))
	defer srv.Close()

	svc := newForecastService(db, srv.URL)
	result, err := svc.Forecast(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 20, 30}, gotReq.PastValues)
	assert.Equal(t, 2, gotReq.PredictLength)
	assert.Len(t, gotReq.PastDates, 3)
	assert.Equal(t, result.History[2].Date, gotReq.LastDate)

	require.Len(t, result.Forecast, 2)
	assert.InDelta(t, 41.5, result.Forecast[0].Value, 1e-9)
	assert.InDelta(t, 42.5, result.Forecast[1].Value, 1e-9)
}

func TestForecastFallsBackWhenPredictorFails(t *testing.T) {
	db := newTestDB(t)
	seedDays(t, db, []float64{100, 100, 100})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newForecastService(db, srv.URL)
	result, err := svc.Forecast(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, result.Forecast, 2)
	assert.InDelta(t, 100, result.Forecast[0].Value, 1e-9)
}

func TestForecastFallsBackOnTimeout(t *testing.T) {
	db := newTestDB(t)
	seedDays(t, db, []float64{100, 100, 100})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	svc := newForecastService(db, srv.URL)
	start := time.Now()
	result, err := svc.Forecast(context.Background(), 1)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.InDelta(t, 100, result.Forecast[0].Value, 1e-9)
}
