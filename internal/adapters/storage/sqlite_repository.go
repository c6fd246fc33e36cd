package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
)

// SQLiteRepository implements the plan and person repositories using GORM.
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.PlanRepository   = (*SQLiteRepository)(nil)
	_ ports.PersonRepository = (*SQLiteRepository)(nil)
)

// gormLogger wraps the planner logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("WEEKPLANER_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the planner database.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode so the SSH share server can read while the TUI writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	for _, model := range []any{&PlanModel{}, &SessionModel{}, &PersonModel{}} {
		if err := db.AutoMigrate(model); err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// GetPlan loads one week's plan. Sessions pass through the domain
// reconstruction path because legacy rows may carry only the string
// time range.
func (r *SQLiteRepository) GetPlan(ctx context.Context, weekID string) (*domain.Plan, error) {
	var planRow PlanModel
	err := r.db.WithContext(ctx).First(&planRow, "week_id = ?", weekID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	var sessionRows []SessionModel
	if err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Order("date, start_min").
		Find(&sessionRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	plan := domain.Plan{WeekID: weekID}
	for _, row := range sessionRows {
		plan.Sessions = append(plan.Sessions, sessionModelToDomain(row))
	}
	plan = domain.NormalizePlan(plan)
	return &plan, nil
}

// ListWeeks returns all stored week ids in order.
func (r *SQLiteRepository) ListWeeks(ctx context.Context) ([]string, error) {
	var weekIDs []string
	if err := r.db.WithContext(ctx).
		Model(&PlanModel{}).
		Order("week_id").
		Pluck("week_id", &weekIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	return weekIDs, nil
}

// SavePlan replaces the stored state of one week with the given snapshot:
// the plan row is upserted, removed sessions are deleted, and every
// session in the snapshot is written back.
func (r *SQLiteRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	if plan.WeekID == "" {
		return fmt.Errorf("plan has no week id")
	}

	return r.withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&PlanModel{WeekID: plan.WeekID}).Error; err != nil {
				return fmt.Errorf("failed to save plan row: %w", err)
			}

			keep := make([]string, 0, len(plan.Sessions))
			for _, s := range plan.Sessions {
				keep = append(keep, s.ID)
			}
			del := tx.Where("week_id = ?", plan.WeekID)
			if len(keep) > 0 {
				del = del.Where("id NOT IN ?", keep)
			}
			if err := del.Delete(&SessionModel{}).Error; err != nil {
				return fmt.Errorf("failed to prune sessions: %w", err)
			}

			for _, s := range plan.Sessions {
				row := domainToSessionModel(plan.WeekID, s)
				if err := tx.Save(&row).Error; err != nil {
					return fmt.Errorf("failed to save session %s: %w", s.ID, err)
				}
			}
			return nil
		})
	})
}

// DeletePlan removes a week and its sessions.
func (r *SQLiteRepository) DeletePlan(ctx context.Context, weekID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_id = ?", weekID).Delete(&SessionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		result := tx.Delete(&PlanModel{WeekID: weekID})
		if result.Error != nil {
			return fmt.Errorf("failed to delete plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrPlanNotFound
		}
		return nil
	})
}

// GetPerson loads one roster member.
func (r *SQLiteRepository) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	var row PersonModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load person: %w", err)
	}
	person := personModelToDomain(row)
	return &person, nil
}

// ListPeople returns the roster ordered by group, then name.
func (r *SQLiteRepository) ListPeople(ctx context.Context) ([]domain.Person, error) {
	var rows []PersonModel
	if err := r.db.WithContext(ctx).
		Order("group_name, name, id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	people := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, personModelToDomain(row))
	}
	return people, nil
}

// PutPerson inserts or updates a roster member.
func (r *SQLiteRepository) PutPerson(ctx context.Context, person domain.Person) error {
	if person.ID == "" {
		return fmt.Errorf("person has no id")
	}
	row := domainToPersonModel(person)
	if err := r.withRetry(func() error {
		return r.db.WithContext(ctx).Save(&row).Error
	}); err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

// SetLicense stores a collected license number on a roster member.
func (r *SQLiteRepository) SetLicense(ctx context.Context, id, licenseNo string) error {
	result := r.db.WithContext(ctx).
		Model(&PersonModel{}).
		Where("id = ?", id).
		Update("license_no", licenseNo)
	if result.Error != nil {
		return fmt.Errorf("failed to set license: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

// DeletePerson removes a roster member.
func (r *SQLiteRepository) DeletePerson(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&PersonModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

// withRetry retries an operation when sqlite reports the database busy
// or locked (WAL readers from the share server).
func (r *SQLiteRepository) withRetry(op func() error) error {
	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		err := op()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}
		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
