//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/restriction"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeReads struct {
	student         *shared.StudentSnapshot
	studentErr      error
	canteenSnap     *shared.CanteenSnapshot
	canteenErr      error
	override        canteen.WorkingHours
	hasOverride     bool
	overlapOverride bool
	restrictions    []*restriction.Restriction
	active          *shared.ReservationSnapshot
	overlapCount    int
}

func (f *fakeReads) StudentByID(_ context.Context, _ uuid.UUID) (*shared.StudentSnapshot, error) {
	if f.studentErr != nil {
		return nil, f.studentErr
	}
	return f.student, nil
}

func (f *fakeReads) StudentByEmail(_ context.Context, _ string) (*shared.StudentSnapshot, error) {
	if f.studentErr != nil {
		return nil, f.studentErr
	}
	return f.student, nil
}

func (f *fakeReads) CanteenByID(_ context.Context, _ uuid.UUID) (*shared.CanteenSnapshot, error) {
	if f.canteenErr != nil {
		return nil, f.canteenErr
	}
	return f.canteenSnap, nil
}

func (f *fakeReads) OverrideHoursForDate(_ context.Context, _ uuid.UUID, _ time.Time) (canteen.WorkingHours, bool, error) {
	return f.override, f.hasOverride, nil
}

func (f *fakeReads) HasOverlappingOverride(_ context.Context, _ uuid.UUID, _, _ time.Time) (bool, error) {
	return f.overlapOverride, nil
}

func (f *fakeReads) RestrictionsInForce(_ context.Context, _ uuid.UUID, _ time.Time) ([]*restriction.Restriction, error) {
	return f.restrictions, nil
}

func (f *fakeReads) ActiveReservationByStudent(_ context.Context, _ uuid.UUID) (*shared.ReservationSnapshot, error) {
	return f.active, nil
}

func (f *fakeReads) ReservationByID(_ context.Context, _ uuid.UUID) (*shared.ReservationSnapshot, error) {
	return nil, nil
}

func (f *fakeReads) CountOverlappingActive(_ context.Context, _ uuid.UUID, _ reservation.Slot) (int, error) {
	return f.overlapCount, nil
}

type fakeReservationRepo struct {
	created         []*reservation.Reservation
	createErr       error
	snapshot        *shared.ReservationSnapshot
	findErr         error
	statusSets      []reservation.Status
	updateStatusErr error
	actives         []*shared.ReservationSnapshot
	cancelledIDs    []uuid.UUID
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, r *reservation.Reservation) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, r)
	return r.ID(), nil
}

func (f *fakeReservationRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, _ uuid.UUID) (*shared.ReservationSnapshot, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.snapshot, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, _, to reservation.Status) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.statusSets = append(f.statusSets, to)
	return nil
}

func (f *fakeReservationRepo) FindActiveByCanteenDates(_ context.Context, _ db.DBTX, _ uuid.UUID, _, _ time.Time) ([]*shared.ReservationSnapshot, error) {
	return f.actives, nil
}

func (f *fakeReservationRepo) CancelByIDs(_ context.Context, _ db.DBTX, ids []uuid.UUID) (int64, error) {
	f.cancelledIDs = append(f.cancelledIDs, ids...)
	return int64(len(ids)), nil
}

func (f *fakeReservationRepo) CompleteExpired(_ context.Context, _ db.DBTX, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeTx struct {
	reads       *fakeReads
	repo        *fakeReservationRepo
	students    shared.StudentRepository
	canteens    shared.CanteenRepository
	locks       []string
	lockedDates []time.Time
}

func (f *fakeTx) Students() shared.StudentRepository         { return f.students }
func (f *fakeTx) Canteens() shared.CanteenRepository         { return f.canteens }
func (f *fakeTx) Reservations() shared.ReservationRepository { return f.repo }
func (f *fakeTx) Restrictions() shared.RestrictionRepository { return nil }
func (f *fakeTx) Reads() shared.CommandReads                 { return f.reads }
func (f *fakeTx) DB() db.DBTX                                { return nil }

func (f *fakeTx) LockStudent(_ context.Context, _ uuid.UUID) error {
	f.locks = append(f.locks, "student")
	return nil
}

func (f *fakeTx) LockCanteenDate(_ context.Context, _ uuid.UUID, date time.Time) error {
	f.locks = append(f.locks, "canteen-date")
	f.lockedDates = append(f.lockedDates, date)
	return nil
}

type fakeUoW struct {
	tx       *fakeTx
	began    int
	lastErr  error
	rollback bool
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	f.began++
	err := fn(ctx, f.tx)
	f.lastErr = err
	f.rollback = err != nil
	return err
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f.tx.reads }

type fakeReservationQueries struct {
	view *queries.ReservationView
}

func (f *fakeReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	v := *f.view
	v.ID = id
	return &v, nil
}

func (f *fakeReservationQueries) ActiveByStudent(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return f.view, nil
}

func (f *fakeReservationQueries) ListByStudent(_ context.Context, _ uuid.UUID) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

// ---------------------------------------------------------------------------
// fixtures
// ---------------------------------------------------------------------------

func lunchHours(t *testing.T) canteen.WorkingHours {
	t.Helper()
	from, err := canteen.NewTimeOfDay(11, 0)
	require.NoError(t, err)
	to, err := canteen.NewTimeOfDay(14, 0)
	require.NoError(t, err)
	h, err := canteen.NewWorkingHour(canteen.MealLunch, from, to)
	require.NoError(t, err)
	return canteen.WorkingHours{h}
}

func admissibleState(t *testing.T) (*fakeUoW, *fakeReads, *fakeReservationRepo, uuid.UUID, reqdto.CreateReservationRequest) {
	t.Helper()
	studentID := uuid.New()
	canteenID := uuid.New()

	reads := &fakeReads{
		student: &shared.StudentSnapshot{ID: studentID, Role: "student", IsActive: true},
		canteenSnap: &shared.CanteenSnapshot{
			ID: canteenID, Name: "Studentski Grad", Capacity: 2, Hours: lunchHours(t),
		},
	}
	repo := &fakeReservationRepo{}
	uow := &fakeUoW{tx: &fakeTx{reads: reads, repo: repo}}

	req := reqdto.CreateReservationRequest{
		CanteenID:   canteenID,
		Date:        fixedNow.AddDate(0, 0, 1).Format("2006-01-02"),
		StartTime:   "12:00",
		DurationMin: 30,
	}
	return uow, reads, repo, studentID, req
}

func newCommands(uow *fakeUoW) ReservationCommands {
	return NewReservationCommands(
		uow,
		&fakeReservationQueries{view: &queries.ReservationView{Status: "active"}},
		clock.NewMockClock(fixedNow),
	)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success inserts exactly one active row", func(t *testing.T) {
		uow, _, repo, studentID, req := admissibleState(t)
		view, err := newCommands(uow).Create(ctx, studentID, req)

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		assert.Equal(t, reservation.StatusActive, repo.created[0].Status())
		assert.Equal(t, "active", view.Status)
		assert.False(t, uow.rollback)
	})

	t.Run("both locks taken, student first", func(t *testing.T) {
		uow, _, _, studentID, req := admissibleState(t)
		_, err := newCommands(uow).Create(ctx, studentID, req)

		require.NoError(t, err)
		assert.Equal(t, []string{"student", "canteen-date"}, uow.tx.locks)
	})

	t.Run("invalid slot shape fails before any transaction", func(t *testing.T) {
		uow, _, _, studentID, req := admissibleState(t)
		req.StartTime = "12:15"

		_, err := newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrDomainValidation)
		assert.Zero(t, uow.began)
	})

	t.Run("unknown student", func(t *testing.T) {
		uow, reads, repo, studentID, req := admissibleState(t)
		reads.studentErr = infra.WrapRepoErr("student not found", errors.New("no rows"), infra.KindNotFound)

		_, err := newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrStudentNotFound)
		assert.Empty(t, repo.created)
	})

	t.Run("deactivated student", func(t *testing.T) {
		uow, reads, _, studentID, req := admissibleState(t)
		reads.student.IsActive = false

		_, err := newCommands(uow).Create(ctx, studentID, req)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("unknown canteen", func(t *testing.T) {
		uow, reads, _, studentID, req := admissibleState(t)
		reads.canteenErr = infra.WrapRepoErr("canteen not found", errors.New("no rows"), infra.KindNotFound)

		_, err := newCommands(uow).Create(ctx, studentID, req)
		assert.ErrorIs(t, err, ErrCanteenNotFound)
	})

	t.Run("slot outside working hours", func(t *testing.T) {
		uow, _, repo, studentID, req := admissibleState(t)
		req.StartTime = "15:00"

		_, err := newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrCanteenClosed)
		assert.Empty(t, repo.created)
	})

	t.Run("slot spilling past closing time", func(t *testing.T) {
		uow, _, _, studentID, req := admissibleState(t)
		req.StartTime = "13:30"
		req.DurationMin = 60

		_, err := newCommands(uow).Create(ctx, studentID, req)
		assert.ErrorIs(t, err, ErrCanteenClosed)
	})

	t.Run("override hours replace regular ones", func(t *testing.T) {
		uow, reads, _, studentID, req := admissibleState(t)
		from, _ := canteen.NewTimeOfDay(11, 30)
		to, _ := canteen.NewTimeOfDay(12, 0)
		h, err := canteen.NewWorkingHour(canteen.MealLunch, from, to)
		require.NoError(t, err)
		reads.override = canteen.WorkingHours{h}
		reads.hasOverride = true

		// 12:00 fits the regular lunch window but not the override
		_, err = newCommands(uow).Create(ctx, studentID, req)
		assert.ErrorIs(t, err, ErrCanteenClosed)

		req.StartTime = "11:30"
		_, err = newCommands(uow).Create(ctx, studentID, req)
		assert.NoError(t, err)
	})

	t.Run("restricted student", func(t *testing.T) {
		uow, reads, repo, studentID, req := admissibleState(t)
		restr, err := restriction.NewRestriction(studentID, "no-show", fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour))
		require.NoError(t, err)
		reads.restrictions = []*restriction.Restriction{restr}

		_, err = newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrStudentRestricted)
		assert.Empty(t, repo.created)
	})

	t.Run("expired restriction does not block", func(t *testing.T) {
		uow, reads, _, studentID, req := admissibleState(t)
		restr, err := restriction.NewRestriction(studentID, "old offence", fixedNow.Add(-48*time.Hour), fixedNow.Add(-24*time.Hour))
		require.NoError(t, err)
		reads.restrictions = []*restriction.Restriction{restr}

		_, err = newCommands(uow).Create(ctx, studentID, req)
		assert.NoError(t, err)
	})

	t.Run("existing active reservation", func(t *testing.T) {
		uow, reads, repo, studentID, req := admissibleState(t)
		reads.active = &shared.ReservationSnapshot{ID: uuid.New(), StudentID: studentID, Status: "active"}

		_, err := newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrActiveReservationExists)
		assert.Empty(t, repo.created)
	})

	t.Run("restriction outranks existing reservation", func(t *testing.T) {
		uow, reads, _, studentID, req := admissibleState(t)
		restr, err := restriction.NewRestriction(studentID, "no-show", fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour))
		require.NoError(t, err)
		reads.restrictions = []*restriction.Restriction{restr}
		reads.active = &shared.ReservationSnapshot{ID: uuid.New(), StudentID: studentID, Status: "active"}

		_, err = newCommands(uow).Create(ctx, studentID, req)
		assert.ErrorIs(t, err, ErrStudentRestricted)
	})

	t.Run("capacity exhausted", func(t *testing.T) {
		uow, reads, repo, studentID, req := admissibleState(t)
		reads.overlapCount = reads.canteenSnap.Capacity

		_, err := newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrSlotFull)
		assert.Empty(t, repo.created)
	})

	t.Run("one seat left is admitted", func(t *testing.T) {
		uow, reads, repo, studentID, req := admissibleState(t)
		reads.overlapCount = reads.canteenSnap.Capacity - 1

		_, err := newCommands(uow).Create(ctx, studentID, req)

		require.NoError(t, err)
		assert.Len(t, repo.created, 1)
	})

	t.Run("lost race surfaces as duplicate key and maps to conflict", func(t *testing.T) {
		uow, _, repo, studentID, req := admissibleState(t)
		repo.createErr = infra.WrapRepoErr("failed to create reservation", errors.New("unique violation"), infra.KindDuplicateKey)

		_, err := newCommands(uow).Create(ctx, studentID, req)

		assert.ErrorIs(t, err, ErrActiveReservationExists)
		assert.True(t, uow.rollback)
	})
}

// ---------------------------------------------------------------------------
// Cancel
// ---------------------------------------------------------------------------

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	reservationID := uuid.New()

	activeSnap := func() *shared.ReservationSnapshot {
		return &shared.ReservationSnapshot{
			ID:        reservationID,
			StudentID: ownerID,
			Status:    "active",
		}
	}

	newCancelUoW := func(repo *fakeReservationRepo) *fakeUoW {
		return &fakeUoW{tx: &fakeTx{reads: &fakeReads{}, repo: repo}}
	}

	t.Run("owner cancels active reservation", func(t *testing.T) {
		repo := &fakeReservationRepo{snapshot: activeSnap()}
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, ownerID, false)

		require.NoError(t, err)
		assert.Equal(t, []reservation.Status{reservation.StatusCancelled}, repo.statusSets)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		repo := &fakeReservationRepo{findErr: infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound)}
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, ownerID, false)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("foreign reservation is forbidden", func(t *testing.T) {
		repo := &fakeReservationRepo{snapshot: activeSnap()}
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, uuid.New(), false)

		assert.ErrorIs(t, err, ErrNotReservationOwner)
		assert.Empty(t, repo.statusSets)
	})

	t.Run("admin may cancel any reservation", func(t *testing.T) {
		repo := &fakeReservationRepo{snapshot: activeSnap()}
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, uuid.New(), true)
		assert.NoError(t, err)
	})

	t.Run("already cancelled", func(t *testing.T) {
		snap := activeSnap()
		snap.Status = "cancelled"
		repo := &fakeReservationRepo{snapshot: snap}
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, ownerID, false)
		assert.ErrorIs(t, err, ErrReservationNotCancellable)
	})

	t.Run("status changed between read and update", func(t *testing.T) {
		repo := &fakeReservationRepo{snapshot: activeSnap()}
		repo.updateStatusErr = infra.WrapRepoErr("reservation left the expected status", errors.New("0 rows"), infra.KindConditionFailed)
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, ownerID, false)

		assert.ErrorIs(t, err, ErrReservationNotCancellable)
		assert.True(t, uow.rollback)
	})

	t.Run("completed reservation stays completed", func(t *testing.T) {
		snap := activeSnap()
		snap.Status = "completed"
		repo := &fakeReservationRepo{snapshot: snap}
		uow := newCancelUoW(repo)

		err := newCommands(uow).Cancel(ctx, reservationID, ownerID, false)

		assert.ErrorIs(t, err, ErrReservationNotCancellable)
		assert.Empty(t, repo.statusSets)
	})
}
