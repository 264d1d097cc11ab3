package shared

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/restriction"
	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads outside transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Students() StudentRepository
	Canteens() CanteenRepository
	Reservations() ReservationRepository
	Restrictions() RestrictionRepository
	Reads() CommandReads
	DB() db.DBTX

	// Serialization points for the check-then-create admission
	// sequence. Both locks are transaction scoped and released on
	// commit or rollback.
	LockStudent(ctx context.Context, studentID uuid.UUID) error
	LockCanteenDate(ctx context.Context, canteenID uuid.UUID, date time.Time) error
}

// CommandReads are the minimal snapshot reads the write side needs for
// its precondition checks. View-shaped reads live in usecase/queries.
type CommandReads interface {
	StudentByID(ctx context.Context, id uuid.UUID) (*StudentSnapshot, error)
	StudentByEmail(ctx context.Context, email string) (*StudentSnapshot, error)
	CanteenByID(ctx context.Context, id uuid.UUID) (*CanteenSnapshot, error)
	OverrideHoursForDate(ctx context.Context, canteenID uuid.UUID, date time.Time) (canteen.WorkingHours, bool, error)
	HasOverlappingOverride(ctx context.Context, canteenID uuid.UUID, startDate, endDate time.Time) (bool, error)
	RestrictionsInForce(ctx context.Context, studentID uuid.UUID, at time.Time) ([]*restriction.Restriction, error)
	ActiveReservationByStudent(ctx context.Context, studentID uuid.UUID) (*ReservationSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	CountOverlappingActive(ctx context.Context, canteenID uuid.UUID, slot reservation.Slot) (int, error)
}

// Minimal snapshots for command read operations
type StudentSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type CanteenSnapshot struct {
	ID       uuid.UUID
	Name     string
	Location string
	Capacity int
	Hours    canteen.WorkingHours
}

type ReservationSnapshot struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	CanteenID uuid.UUID
	Slot      reservation.Slot
	Status    string
}

type StudentRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *student.Student) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, studentID uuid.UUID) error
}

type CanteenRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *canteen.Canteen) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *canteen.Canteen) error
	CreateOverride(ctx context.Context, tx db.DBTX, o *canteen.ScheduleOverride) (uuid.UUID, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	// FindByIDForUpdate locks the row until the surrounding
	// transaction finishes.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*ReservationSnapshot, error)
	// UpdateStatus transitions only rows still in the from status.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to reservation.Status) error
	FindActiveByCanteenDates(ctx context.Context, tx db.DBTX, canteenID uuid.UUID, startDate, endDate time.Time) ([]*ReservationSnapshot, error)
	CancelByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) (int64, error)
	CompleteExpired(ctx context.Context, tx db.DBTX, now time.Time) (int64, error)
}

type RestrictionRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *restriction.Restriction) (uuid.UUID, error)
}
