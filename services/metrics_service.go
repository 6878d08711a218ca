package services

import (
	"errors"
	"sort"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
)

var ErrBadDate = errors.New("invalid date, want YYYY-MM-DD")

const dateLayout = "2006-01-02"

type MetricsService struct {
	Repo *repository.ReportRepository
}

func NewMetricsService(repo *repository.ReportRepository) *MetricsService {
	return &MetricsService{Repo: repo}
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}

// Daily aggregates sales, distinct orders and item count for the
// server-local date of now.
func (s *MetricsService) Daily(now time.Time) (*repository.DailyMetrics, error) {
	from, to := dayBounds(now)
	return s.Repo.DailyMetrics(from, to)
}

// Items is optionally bounded by an inclusive [from, to] date range.
// A half-open request (only one bound) is treated as unbounded, matching
// the legacy endpoint.
func (s *MetricsService) Items(fromStr, toStr string) ([]repository.ItemMetric, error) {
	if fromStr == "" || toStr == "" {
		return s.Repo.ItemMetrics(nil, nil)
	}
	fromDay, err := time.ParseInLocation(dateLayout, fromStr, time.Local)
	if err != nil {
		return nil, ErrBadDate
	}
	toDay, err := time.ParseInLocation(dateLayout, toStr, time.Local)
	if err != nil {
		return nil, ErrBadDate
	}
	from, _ := dayBounds(fromDay)
	_, to := dayBounds(toDay)
	return s.Repo.ItemMetrics(&from, &to)
}

type PreparedIn struct {
	ItemName         string `json:"item_name" binding:"required"`
	QuantityPrepared int    `json:"quantity_prepared" binding:"required,min=1"`
	Date             string `json:"date" binding:"required"`
}

func (s *MetricsService) RecordPrepared(in *PreparedIn) (uint, error) {
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return 0, ErrBadDate
	}
	rec := &entity.DailyItemQuantity{
		ItemName:         in.ItemName,
		QuantityPrepared: in.QuantityPrepared,
		Date:             in.Date,
	}
	if err := s.Repo.CreatePrepared(rec); err != nil {
		return 0, err
	}
	return rec.ID, nil
}

type WastageRow struct {
	ItemName         string `json:"item_name"`
	QuantityPrepared int    `json:"quantity_prepared"`
	QuantityOrdered  int64  `json:"quantity_ordered"`
	Wastage          int64  `json:"wastage"`
}

// Wastage is prepared minus ordered for the date. Negative values mean
// the kitchen was over-ordered and are surfaced as-is.
func (s *MetricsService) Wastage(date string) ([]WastageRow, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, ErrBadDate
	}

	prepared, err := s.Repo.PreparedForDate(date)
	if err != nil {
		return nil, err
	}
	from, to := dayBounds(day)
	ordered, err := s.Repo.OrderedQuantities(from, to)
	if err != nil {
		return nil, err
	}
	orderedByItem := make(map[string]int64, len(ordered))
	for _, o := range ordered {
		orderedByItem[o.ItemName] = o.Quantity
	}

	rows := make([]WastageRow, 0, len(prepared))
	for _, p := range prepared {
		q := orderedByItem[p.ItemName]
		rows = append(rows, WastageRow{
			ItemName:         p.ItemName,
			QuantityPrepared: p.QuantityPrepared,
			QuantityOrdered:  q,
			Wastage:          int64(p.QuantityPrepared) - q,
		})
	}
	return rows, nil
}

// ----- seasonal ranking -----

var seasonOrder = []string{"Spring", "Summer", "Autumn", "Winter"}

var seasonMonths = map[string][]time.Month{
	"Spring": {time.March, time.April, time.May},
	"Summer": {time.June, time.July, time.August},
	"Autumn": {time.September, time.October, time.November},
	"Winter": {time.December, time.January, time.February},
}

func seasonOf(m time.Month) int {
	for i, name := range seasonOrder {
		for _, sm := range seasonMonths[name] {
			if sm == m {
				return i
			}
		}
	}
	return 0
}

type SeasonItem struct {
	ItemName      string `json:"item_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

type SeasonRank struct {
	Top5    []SeasonItem `json:"top5"`
	Bottom5 []SeasonItem `json:"bottom5"`
}

type SeasonalData struct {
	SelectedSeasons []string              `json:"selectedSeasons"`
	SeasonData      map[string]SeasonRank `json:"seasonData"`
}

// Seasonal buckets all order lines into the four fixed seasons and ranks
// each of the current season plus the three preceding it by quantity.
func (s *MetricsService) Seasonal(now time.Time) (*SeasonalData, error) {
	lines, err := s.Repo.AllLinesSlim()
	if err != nil {
		return nil, err
	}

	// quantities per (season, item), keeping first-seen item order so the
	// descending sort stays stable
	type bucket struct {
		totals map[string]int64
		order  []string
	}
	buckets := make([]bucket, len(seasonOrder))
	for i := range buckets {
		buckets[i] = bucket{totals: make(map[string]int64)}
	}
	for _, l := range lines {
		idx := seasonOf(l.CreatedAt.Month())
		b := &buckets[idx]
		if _, seen := b.totals[l.ItemName]; !seen {
			b.order = append(b.order, l.ItemName)
		}
		b.totals[l.ItemName] += int64(l.Quantity)
	}

	// current season and the three before it, oldest first
	cur := seasonOf(now.Month())
	selected := make([]string, 0, 4)
	for i := 3; i >= 0; i-- {
		idx := (cur - i + len(seasonOrder)) % len(seasonOrder)
		selected = append(selected, seasonOrder[idx])
	}

	data := make(map[string]SeasonRank, len(selected))
	for _, name := range selected {
		b := buckets[indexOfSeason(name)]
		items := make([]SeasonItem, 0, len(b.order))
		for _, itemName := range b.order {
			items = append(items, SeasonItem{ItemName: itemName, TotalQuantity: b.totals[itemName]})
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].TotalQuantity > items[j].TotalQuantity
		})

		top := items
		if len(top) > 5 {
			top = items[:5]
		}
		bottom := items
		if len(bottom) > 5 {
			bottom = items[len(items)-5:]
		}
		data[name] = SeasonRank{
			Top5:    append([]SeasonItem{}, top...),
			Bottom5: append([]SeasonItem{}, bottom...),
		}
	}

	return &SeasonalData{SelectedSeasons: selected, SeasonData: data}, nil
}

func indexOfSeason(name string) int {
	for i, n := range seasonOrder {
		if n == name {
			return i
		}
	}
	return 0
}
