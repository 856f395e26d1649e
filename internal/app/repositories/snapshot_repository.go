package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/db"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/dberrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// Snapshot is a point-in-time copy of the in-memory databases
type Snapshot struct {
	Students []*models.Student
	Faculty  []*models.Faculty
	Books    map[string]models.BookStock
	Menus    map[string]map[string]int64
}

// TakeSnapshot copies the databases held by repos
func TakeSnapshot(repos *Repositories) Snapshot {
	students := repos.StudentRepository.All()
	copied := make([]*models.Student, 0, len(students))
	for _, s := range students {
		c := *s
		copied = append(copied, &c)
	}

	faculty := repos.FacultyRepository.All()
	copiedFaculty := make([]*models.Faculty, 0, len(faculty))
	for _, f := range faculty {
		c := *f
		copiedFaculty = append(copiedFaculty, &c)
	}

	return Snapshot{
		Students: copied,
		Faculty:  copiedFaculty,
		Books:    repos.LibraryRepository.Snapshot(),
		Menus:    repos.CanteenRepository.Snapshot(),
	}
}

// SnapshotResult reports one export
type SnapshotResult struct {
	ID       string `json:"id"`
	Students int    `json:"students"`
	Faculty  int    `json:"faculty"`
	Books    int    `json:"books"`
	Canteens int    `json:"canteens"`
}

// SnapshotRepository exports snapshots to PostgreSQL. Rows are upserted, so
// the tables always hold the latest export.
type SnapshotRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSnapshotRepository creates a SnapshotRepository
func NewSnapshotRepository(database *db.PostgresDB) *SnapshotRepository {
	return &SnapshotRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type statement struct {
	sql  string
	args []interface{}
}

// Save writes the snapshot in one transaction
func (r *SnapshotRepository) Save(ctx context.Context, snap Snapshot) (SnapshotResult, error) {
	if r.db == nil {
		return SnapshotResult{}, apperrors.ErrPersistenceDisabled
	}

	result := SnapshotResult{
		ID:       uuid.New().String(),
		Students: len(snap.Students),
		Faculty:  len(snap.Faculty),
		Books:    len(snap.Books),
		Canteens: len(snap.Menus),
	}

	stmts, err := r.buildStatements(snap, result)
	if err != nil {
		return SnapshotResult{}, err
	}

	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, st := range stmts {
			batch.Queue(st.sql, st.args...)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return SnapshotResult{}, fmt.Errorf("snapshot %s: %w", result.ID, apperrors.ErrConflict)
		}
		logger.Error().Err(err).Msg("Error saving campus snapshot")
		return SnapshotResult{}, fmt.Errorf("error saving snapshot: %w", err)
	}

	logger.Info().
		Str("snapshot_id", result.ID).
		Int("students", result.Students).
		Int("faculty", result.Faculty).
		Int("books", result.Books).
		Int("canteens", result.Canteens).
		Msg("Campus snapshot saved")
	return result, nil
}

func (r *SnapshotRepository) buildStatements(snap Snapshot, result SnapshotResult) ([]statement, error) {
	var stmts []statement
	add := func(b squirrel.InsertBuilder) error {
		sql, args, err := b.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build snapshot query: %w", err)
		}
		stmts = append(stmts, statement{sql: sql, args: args})
		return nil
	}

	for _, s := range snap.Students {
		var courseID interface{}
		if s.Course != nil {
			courseID = s.Course.ID
		}
		err := add(r.sb.Insert("students").
			Columns("id", "roll_no", "name", "year", "course_id", "branch", "phone", "email", "fees").
			Values(s.ID, s.RollNo, s.Name, s.Year, courseID, s.Branch, s.Phone, s.Email, s.Fees).
			Suffix(`ON CONFLICT (id) DO UPDATE SET roll_no = EXCLUDED.roll_no, name = EXCLUDED.name,
				year = EXCLUDED.year, course_id = EXCLUDED.course_id, branch = EXCLUDED.branch,
				phone = EXCLUDED.phone, email = EXCLUDED.email, fees = EXCLUDED.fees, updated_at = NOW()`))
		if err != nil {
			return nil, err
		}
	}

	for _, f := range snap.Faculty {
		err := add(r.sb.Insert("faculty").
			Columns("id", "name", "department", "phone", "email").
			Values(f.ID, f.Name, f.Department, f.Phone, f.Email).
			Suffix(`ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, department = EXCLUDED.department,
				phone = EXCLUDED.phone, email = EXCLUDED.email, updated_at = NOW()`))
		if err != nil {
			return nil, err
		}
	}

	for _, title := range sortedTitles(snap.Books) {
		stock := snap.Books[title]
		err := add(r.sb.Insert("library_books").
			Columns("title", "rentable", "non_rentable").
			Values(title, stock.Rentable, stock.NonRentable).
			Suffix(`ON CONFLICT (title) DO UPDATE SET rentable = EXCLUDED.rentable,
				non_rentable = EXCLUDED.non_rentable, updated_at = NOW()`))
		if err != nil {
			return nil, err
		}
	}

	for _, canteen := range sortedTitles(snap.Menus) {
		menu := snap.Menus[canteen]
		for _, item := range sortedTitles(menu) {
			err := add(r.sb.Insert("canteen_menu_items").
				Columns("canteen", "item", "price").
				Values(canteen, item, menu[item]).
				Suffix(`ON CONFLICT (canteen, item) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()`))
			if err != nil {
				return nil, err
			}
		}
	}

	err := add(r.sb.Insert("snapshot_runs").
		Columns("id", "students", "faculty", "books", "canteens").
		Values(result.ID, result.Students, result.Faculty, result.Books, result.Canteens))
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

func sortedTitles[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
