package services_test

import (
	"testing"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertLine(t *testing.T, db *gorm.DB, orderID int64, item string, p float64, qty int, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entity.OrderLine{
		Model:     gorm.Model{CreatedAt: at, UpdatedAt: at},
		OrderID:   orderID,
		UserEmail: "user@example.com",
		ItemName:  item,
		Price:     p,
		Quantity:  qty,
	}).Error)
}

func newMetricsService(db *gorm.DB) *services.MetricsService {
	return services.NewMetricsService(repository.NewReportRepository(db))
}

func TestDailyMetrics(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	now := time.Now()
	insertLine(t, db, 1, "Tea", 10, 2, now)
	insertLine(t, db, 1, "Samosa", 15, 1, now)
	insertLine(t, db, 2, "Tea", 10, 1, now)
	// yesterday's line must not count
	insertLine(t, db, 3, "Tea", 10, 5, now.AddDate(0, 0, -1))

	m, err := svc.Daily(now)
	require.NoError(t, err)
	assert.InDelta(t, 45, m.TotalSales, 1e-9)
	assert.Equal(t, int64(2), m.TotalOrders)
	assert.Equal(t, int64(4), m.TotalItems)
}

func TestDailyMetricsEmptyDay(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	m, err := svc.Daily(time.Now())
	require.NoError(t, err)
	assert.Zero(t, m.TotalSales)
	assert.Zero(t, m.TotalOrders)
	assert.Zero(t, m.TotalItems)
}

func TestItemMetricsSortedByRevenue(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	now := time.Now()
	insertLine(t, db, 1, "Tea", 10, 2, now)    // 20
	insertLine(t, db, 2, "Samosa", 15, 3, now) // 45
	insertLine(t, db, 3, "Tea", 10, 1, now)    // Tea total 30

	metrics, err := svc.Items("", "")
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "Samosa", metrics[0].ItemName)
	assert.InDelta(t, 45, metrics[0].TotalSales, 1e-9)
	assert.Equal(t, int64(3), metrics[0].TotalQuantity)
	assert.Equal(t, "Tea", metrics[1].ItemName)
	assert.Equal(t, int64(3), metrics[1].TotalQuantity)
}

func TestItemMetricsDateRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		require.NoError(t, err)
		return d.Add(12 * time.Hour)
	}
	insertLine(t, db, 1, "Tea", 10, 1, day("2026-03-01"))
	insertLine(t, db, 2, "Tea", 10, 1, day("2026-03-05"))
	insertLine(t, db, 3, "Tea", 10, 1, day("2026-03-09"))

	metrics, err := svc.Items("2026-03-01", "2026-03-05")
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, int64(2), metrics[0].TotalQuantity)

	_, err = svc.Items("not-a-date", "2026-03-05")
	assert.ErrorIs(t, err, services.ErrBadDate)
}

func TestWastage(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)
	repo := repository.NewReportRepository(db)

	const date = "2026-03-10"
	noon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	require.NoError(t, repo.CreatePrepared(&entity.DailyItemQuantity{ItemName: "Tea", QuantityPrepared: 30, Date: date}))
	require.NoError(t, repo.CreatePrepared(&entity.DailyItemQuantity{ItemName: "Samosa", QuantityPrepared: 10, Date: date}))
	require.NoError(t, repo.CreatePrepared(&entity.DailyItemQuantity{ItemName: "Dosa", QuantityPrepared: 5, Date: date}))

	insertLine(t, db, 1, "Tea", 10, 12, noon)
	insertLine(t, db, 2, "Dosa", 40, 8, noon) // over-ordered
	// another day's Tea orders must not count
	insertLine(t, db, 3, "Tea", 10, 99, noon.AddDate(0, 0, 1))

	rows, err := svc.Wastage(date)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byItem := map[string]services.WastageRow{}
	for _, r := range rows {
		byItem[r.ItemName] = r
	}
	assert.Equal(t, int64(18), byItem["Tea"].Wastage)
	// absent orders: wastage equals prepared
	assert.Equal(t, int64(10), byItem["Samosa"].Wastage)
	assert.Zero(t, byItem["Samosa"].QuantityOrdered)
	// negative wastage is surfaced, not clamped
	assert.Equal(t, int64(-3), byItem["Dosa"].Wastage)
}

func TestSeasonalRanking(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	april := time.Date(2026, 4, 10, 12, 0, 0, 0, time.Local)
	may := time.Date(2026, 5, 20, 12, 0, 0, 0, time.Local)

	insertLine(t, db, 1, "Tea", 10, 2, april)
	insertLine(t, db, 2, "Samosa", 15, 5, may)
	insertLine(t, db, 3, "Tea", 10, 1, may)

	now := time.Date(2026, 5, 25, 0, 0, 0, 0, time.Local)
	data, err := svc.Seasonal(now)
	require.NoError(t, err)

	// current season last, three preceding before it
	assert.Equal(t, []string{"Summer", "Autumn", "Winter", "Spring"}, data.SelectedSeasons)

	spring := data.SeasonData["Spring"]
	require.Len(t, spring.Top5, 2)
	assert.Equal(t, "Samosa", spring.Top5[0].ItemName)
	assert.Equal(t, int64(5), spring.Top5[0].TotalQuantity)
	assert.Equal(t, "Tea", spring.Top5[1].ItemName)
	assert.Equal(t, int64(3), spring.Top5[1].TotalQuantity)

	// a season with no orders is present but empty
	winter := data.SeasonData["Winter"]
	assert.Empty(t, winter.Top5)
	assert.Empty(t, winter.Bottom5)
}

func TestSeasonalStableTieBreak(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	march := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	insertLine(t, db, 1, "Idli", 20, 3, march)
	insertLine(t, db, 2, "Vada", 20, 3, march)

	data, err := svc.Seasonal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	spring := data.SeasonData["Spring"]
	require.Len(t, spring.Top5, 2)
	// ties keep first-seen aggregation order
	assert.Equal(t, "Idli", spring.Top5[0].ItemName)
	assert.Equal(t, "Vada", spring.Top5[1].ItemName)
}

func TestRecordPrepared(t *testing.T) {
	db := newTestDB(t)
	svc := newMetricsService(db)

	id, err := svc.RecordPrepared(&services.PreparedIn{
		ItemName:         "Tea",
		QuantityPrepared: 40,
		Date:             "2026-03-10",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.RecordPrepared(&services.PreparedIn{
		ItemName:         "Tea",
		QuantityPrepared: 40,
		Date:             "10/03/2026",
	})
	assert.ErrorIs(t, err, services.ErrBadDate)
}
