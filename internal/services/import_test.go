package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/praxishq/praxis/internal/models"
)

func newImportTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Task{}, &models.TimeEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestTaskImport_Persists(t *testing.T) {
	db := newImportTestDB(t)
	svc := NewTaskService(db, nil)

	est := 10.0
	result, err := svc.Import([]TaskImport{
		{EmployeeID: 1, Description: "filing", EstimatedHours: &est, DueDate: "2025-03-14"},
		{EmployeeID: 2, Title: "review", Estimate: &est},
	})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, expected 2", result.Imported)
	}

	var count int64
	db.Model(&models.Task{}).Where("import_batch_id = ?", result.BatchID).Count(&count)
	if count != 2 {
		t.Errorf("stored rows = %d, expected 2", count)
	}
}

func TestTaskImport_RollsBackOnDBError(t *testing.T) {
	db := newImportTestDB(t)
	// Abort the second insert so the batch fails mid-way.
	if err := db.Exec(`CREATE TRIGGER one_task_only BEFORE INSERT ON tasks
		WHEN (SELECT COUNT(*) FROM tasks) >= 1
		BEGIN SELECT RAISE(ABORT, 'insert rejected'); END`).Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	svc := NewTaskService(db, nil)
	est := 10.0
	_, err := svc.Import([]TaskImport{
		{EmployeeID: 1, Description: "filing", EstimatedHours: &est},
		{EmployeeID: 2, Description: "review", EstimatedHours: &est},
	})
	if err == nil {
		t.Fatal("expected the batch to fail")
	}

	var count int64
	db.Model(&models.Task{}).Count(&count)
	if count != 0 {
		t.Errorf("stored rows = %d, expected the first insert rolled back", count)
	}
}

func TestTimeEntryImport_RollsBackOnDBError(t *testing.T) {
	db := newImportTestDB(t)
	if err := db.Exec(`CREATE TRIGGER one_entry_only BEFORE INSERT ON time_entries
		WHEN (SELECT COUNT(*) FROM time_entries) >= 1
		BEGIN SELECT RAISE(ABORT, 'insert rejected'); END`).Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	svc := NewTimeEntryService(db, nil)
	minutes := 60
	_, err := svc.Import([]TimeEntryImport{
		{EmployeeID: 1, Date: "2025-03-11", Minutes: &minutes},
		{EmployeeID: 2, Date: "2025-03-11", Minutes: &minutes},
	})
	if err == nil {
		t.Fatal("expected the batch to fail")
	}

	var count int64
	db.Model(&models.TimeEntry{}).Count(&count)
	if count != 0 {
		t.Errorf("stored rows = %d, expected the first insert rolled back", count)
	}
}
