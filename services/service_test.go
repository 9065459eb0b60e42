package services

import (
	"testing"

	"canteen-backend/config"
	"canteen-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema. Each
// test gets its own database; the single-connection pool keeps every query
// on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

type fixtures struct {
	diner   models.User
	other   models.User
	staff   models.User
	canteen models.Canteen
	room    models.Room
	dish    models.Dish
	pkg     models.Package
}

// seedFixtures creates the baseline rows most service tests need: a diner, a
// second diner, a staff member, one canteen with a 50-seat room (base fee
// 300), a dish priced 25 and a package priced 120.
func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		diner: models.User{Username: "alice", Email: "alice@example.com", Password: "x", Role: models.RoleDiner},
		other: models.User{Username: "bob", Email: "bob@example.com", Password: "x", Role: models.RoleDiner},
		staff: models.User{Username: "carol", Email: "carol@example.com", Password: "x", Role: models.RoleStaff},
	}
	for _, u := range []*models.User{&f.diner, &f.other, &f.staff} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("failed to seed user %s: %v", u.Username, err)
		}
	}

	f.canteen = models.Canteen{Name: "North Canteen", Location: "Building A"}
	if err := db.Create(&f.canteen).Error; err != nil {
		t.Fatalf("failed to seed canteen: %v", err)
	}

	f.room = models.Room{CanteenID: f.canteen.ID, Name: "Lotus Hall", Capacity: 50, BaseFee: 300}
	if err := db.Create(&f.room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}

	f.dish = models.Dish{CanteenID: f.canteen.ID, Name: "Roast Duck", Price: 25, IsAvailable: true}
	if err := db.Create(&f.dish).Error; err != nil {
		t.Fatalf("failed to seed dish: %v", err)
	}

	f.pkg = models.Package{CanteenID: f.canteen.ID, Name: "Banquet Set A", Price: 120}
	if err := db.Create(&f.pkg).Error; err != nil {
		t.Fatalf("failed to seed package: %v", err)
	}

	return f
}
