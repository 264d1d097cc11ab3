package repository

import (
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanReservationSnapshot(row pgx.Row) (*shared.ReservationSnapshot, error) {
	var (
		id          uuid.UUID
		studentID   uuid.UUID
		canteenID   uuid.UUID
		slotDate    pgtype.Date
		startMin    int32
		durationMin int32
		status      string
	)
	if err := row.Scan(&id, &studentID, &canteenID, &slotDate, &startMin, &durationMin, &status); err != nil {
		return nil, err
	}

	return &shared.ReservationSnapshot{
		ID:        id,
		StudentID: studentID,
		CanteenID: canteenID,
		Slot:      reservation.ReconstructSlot(pgconv.DateFromPgtype(slotDate), int(startMin), int(durationMin)),
		Status:    status,
	}, nil
}
