package rentals

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/openshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_rentals_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Purchase{}, &entities.Renting{}, &entities.Booking{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db), cleanup
}

func TestRepository_CountByBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.CreatePurchase(&entities.Purchase{UserID: 1, BookID: 10, PurchaseDate: time.Now()}))
	require.NoError(t, repo.CreateRenting(&entities.Renting{UserID: 1, BookID: 10, StartDate: time.Now(), ReturnDate: time.Now()}))
	require.NoError(t, repo.CreateBooking(&entities.Booking{UserID: 1, BookID: 10, Date: time.Now()}))
	require.NoError(t, repo.CreateBooking(&entities.Booking{UserID: 1, BookID: 11, Date: time.Now()}))

	count, err := repo.CountByBook(10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountByBook(12)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_ListOverdue(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	require.NoError(t, repo.CreateRenting(&entities.Renting{UserID: 1, BookID: 10, StartDate: now.Add(-21 * 24 * time.Hour), ReturnDate: now.Add(-7 * 24 * time.Hour)}))
	require.NoError(t, repo.CreateRenting(&entities.Renting{UserID: 2, BookID: 11, StartDate: now, ReturnDate: now.Add(7 * 24 * time.Hour)}))

	overdue, err := repo.ListOverdue(now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, uint(10), overdue[0].BookID)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	require.NoError(t, repo.CreatePurchase(&entities.Purchase{UserID: 1, BookID: 10, PurchaseDate: now}))
	require.NoError(t, repo.CreatePurchase(&entities.Purchase{UserID: 2, BookID: 11, PurchaseDate: now}))
	require.NoError(t, repo.CreateRenting(&entities.Renting{UserID: 1, BookID: 10, StartDate: now, ReturnDate: now}))

	purchases, err := repo.ListPurchasesByUser(1)
	require.NoError(t, err)
	assert.Len(t, purchases, 1)

	rentings, err := repo.ListRentingsByUser(1)
	require.NoError(t, err)
	assert.Len(t, rentings, 1)
}
