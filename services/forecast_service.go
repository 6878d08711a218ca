package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/configs"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
)

var ErrInsufficientHistory = errors.New("not enough order history to forecast")

// minHistoryPoints matches the predictor sidecar's own lower bound.
const minHistoryPoints = 2

// fallback parameters: trailing window and mean-reversion damping
const (
	fallbackWindow  = 14
	fallbackDamping = 0.08
)

type ForecastService struct {
	Repo   *repository.ReportRepository
	url    string
	client *http.Client
}

func NewForecastService(repo *repository.ReportRepository, cfg *configs.Config) *ForecastService {
	return &ForecastService{
		Repo:   repo,
		url:    cfg.ForecastURL,
		client: &http.Client{Timeout: cfg.ForecastTimeout},
	}
}

type SeriesPoint struct {
	Date  string  `json:"ds"`
	Value float64 `json:"y"`
}

type ForecastPoint struct {
	Date  string  `json:"ds"`
	Value float64 `json:"yhat"`
}

type ForecastResult struct {
	History  []SeriesPoint   `json:"history"`
	Forecast []ForecastPoint `json:"forecast"`
}

// buildSeries folds delivered lines into one revenue point per calendar
// date, ascending.
func (s *ForecastService) buildSeries() ([]SeriesPoint, error) {
	rows, err := s.Repo.DeliveredLines()
	if err != nil {
		return nil, err
	}
	var series []SeriesPoint
	for _, r := range rows {
		date := r.CreatedAt.Format(dateLayout)
		revenue := r.Price * float64(r.Quantity)
		if n := len(series); n > 0 && series[n-1].Date == date {
			series[n-1].Value += revenue
			continue
		}
		series = append(series, SeriesPoint{Date: date, Value: revenue})
	}
	return series, nil
}

// Forecast predicts daily revenue for the next days. The external
// predictor is tried first; any error there falls through to the local
// fallback rather than failing the request.
func (s *ForecastService) Forecast(ctx context.Context, days int) (*ForecastResult, error) {
	series, err := s.buildSeries()
	if err != nil {
		return nil, err
	}
	if len(series) < minHistoryPoints {
		return nil, ErrInsufficientHistory
	}

	lastDate, err := time.Parse(dateLayout, series[len(series)-1].Date)
	if err != nil {
		return nil, err
	}

	values, err := s.predictRemote(ctx, series, days)
	if err != nil {
		values = predictFallback(series, days)
	}

	out := &ForecastResult{History: series, Forecast: make([]ForecastPoint, 0, days)}
	for i, v := range values {
		out.Forecast = append(out.Forecast, ForecastPoint{
			Date:  lastDate.AddDate(0, 0, i+1).Format(dateLayout),
			Value: v,
		})
	}
	return out, nil
}

// sidecar wire contract
type predictReq struct {
	PastValues    []float64 `json:"past_values"`
	PastDates     []string  `json:"past_dates"`
	PredictLength int       `json:"predict_length"`
	LastDate      string    `json:"last_date"`
}

type predictResp struct {
	Forecast []ForecastPoint `json:"forecast"`
}

func (s *ForecastService) predictRemote(ctx context.Context, series []SeriesPoint, days int) ([]float64, error) {
	if s.url == "" {
		return nil, errors.New("forecaster not configured")
	}

	req := predictReq{
		PastValues:    make([]float64, 0, len(series)),
		PastDates:     make([]string, 0, len(series)),
		PredictLength: days,
		LastDate:      series[len(series)-1].Date,
	}
	for _, p := range series {
		req.PastValues = append(req.PastValues, p.Value)
		req.PastDates = append(req.PastDates, p.Date)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/forecast", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecaster returned %d", res.StatusCode)
	}

	var pr predictResp
	if err := json.NewDecoder(res.Body).Decode(&pr); err != nil {
		return nil, err
	}
	if len(pr.Forecast) < days {
		return nil, fmt.Errorf("forecaster returned %d points, want %d", len(pr.Forecast), days)
	}

	values := make([]float64, 0, days)
	for _, p := range pr.Forecast[:days] {
		values = append(values, p.Value)
	}
	return values, nil
}

// predictFallback walks forward from the last observed value with the
// least-squares slope of the trailing window, dampened toward the window
// mean. A heuristic placeholder, not a validated model.
func predictFallback(series []SeriesPoint, days int) []float64 {
	window := series
	if len(window) > fallbackWindow {
		window = series[len(series)-fallbackWindow:]
	}

	mean := 0.0
	for _, p := range window {
		mean += p.Value
	}
	mean /= float64(len(window))

	// least-squares slope over x = 0..n-1
	n := float64(len(window))
	xMean := (n - 1) / 2
	num, den := 0.0, 0.0
	for i, p := range window {
		dx := float64(i) - xMean
		num += dx * (p.Value - mean)
		den += dx * dx
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}

	values := make([]float64, 0, days)
	prior := window[len(window)-1].Value
	for i := 0; i < days; i++ {
		next := prior + slope + fallbackDamping*(mean-prior)
		if next < 0 {
			next = 0
		}
		values = append(values, next)
		prior = next
	}
	return values
}
