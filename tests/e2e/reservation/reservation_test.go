//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/student"
	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/tests/common/authtest"
	"canteen-reservation/tests/common/dbtest"
	"canteen-reservation/tests/common/httptest"
	"canteen-reservation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
}

func (s *reservationSuite) createRequest(canteenID uuid.UUID) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CanteenID:   canteenID,
		Date:        s.tomorrow(),
		StartTime:   "12:00",
		DurationMin: 30,
	}
}

func (s *reservationSuite) TestCreate() {
	s.Run("admits a valid reservation", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "eater@example.com", string(student.RoleStudent))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), token)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.Equal("active", response.Status)
		s.Equal(s.tomorrow(), response.Date)
		s.Equal("12:00", response.StartTime)
	})

	s.Run("rejects a second active reservation", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "greedy@example.com", string(student.RoleStudent))

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), token)
		s.Require().Equal(http.StatusCreated, first.Code)

		req := s.createRequest(canteenID)
		req.StartTime = "13:00"
		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, token)
		httptest.AssertErrorResponse(s.T(), second, http.StatusConflict, "active reservation")
	})

	s.Run("rejects a slot outside working hours", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "late@example.com", string(student.RoleStudent))

		req := s.createRequest(canteenID)
		req.StartTime = "15:00"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "closed")
	})

	s.Run("rejects a restricted student", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		studentID := dbtest.CreateTestStudent(s.T(), s.DB, "banned@example.com", string(student.RoleStudent))
		dbtest.CreateTestRestriction(s.T(), s.DB, studentID,
			time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))
		token := authtest.LoginStudent(s.T(), s.Router, "banned@example.com", dbtest.TestStudentPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "restricted")
	})

	s.Run("enforces canteen capacity for overlapping slots", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Tiny Canteen", 1)
		firstToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "first@example.com", string(student.RoleStudent))
		secondToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "second@example.com", string(student.RoleStudent))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), firstToken)
		s.Require().Equal(http.StatusCreated, w.Code)

		// Overlapping slot: 11:30-12:30 against the taken 12:00-12:30.
		req := s.createRequest(canteenID)
		req.StartTime = "11:30"
		req.DurationMin = 60
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, secondToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "fully booked")

		// A non-overlapping slot still fits.
		req = s.createRequest(canteenID)
		req.StartTime = "13:00"
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, secondToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
	})

	s.Run("admission outcome matches the overlap count over stored rows", func() {
		const capacity = 2
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Tiny Canteen", capacity)

		seeds := []struct {
			start    string
			duration int
		}{
			{"12:00", 30},
			{"12:00", 60},
			{"13:00", 30},
		}
		for i, seed := range seeds {
			token := authtest.CreateAndLogin(s.T(), s.DB, s.Router,
				fmt.Sprintf("seed%d@example.com", i), string(student.RoleStudent))
			req := s.createRequest(canteenID)
			req.StartTime = seed.start
			req.DurationMin = seed.duration
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, token)
			s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		}

		slotDate, err := time.ParseInLocation("2006-01-02", s.tomorrow(), time.UTC)
		s.Require().NoError(err)

		// Each candidate is admitted exactly when fewer than capacity
		// stored active slots overlap it, counted with the same
		// interval rule the read side uses.
		candidates := []struct {
			startMin int
			duration int
		}{
			{720, 30},
			{690, 30},
			{750, 60},
			{780, 30},
		}
		for i, cand := range candidates {
			candidate := reservation.ReconstructSlot(slotDate, cand.startMin, cand.duration)

			rows, err := s.DB.Query(context.Background(),
				"SELECT slot_date, start_min, duration_min FROM reservations WHERE canteen_id = $1 AND status = 'active'",
				canteenID)
			s.Require().NoError(err)
			overlapping := 0
			for rows.Next() {
				var d time.Time
				var startMin, durationMin int
				s.Require().NoError(rows.Scan(&d, &startMin, &durationMin))
				if candidate.Overlaps(reservation.ReconstructSlot(d, startMin, durationMin)) {
					overlapping++
				}
			}
			rows.Close()
			s.Require().NoError(rows.Err())

			token := authtest.CreateAndLogin(s.T(), s.DB, s.Router,
				fmt.Sprintf("cand%d@example.com", i), string(student.RoleStudent))
			req := s.createRequest(canteenID)
			req.StartTime = fmt.Sprintf("%02d:%02d", cand.startMin/60, cand.startMin%60)
			req.DurationMin = cand.duration
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, token)

			if overlapping < capacity {
				s.Equal(http.StatusCreated, w.Code, w.Body.String())
			} else {
				httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "fully booked")
			}
		}
	})

	s.Run("concurrent requests from one student keep a single active row", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		studentID := dbtest.CreateTestStudent(s.T(), s.DB, "racer@example.com", string(student.RoleStudent))
		token := authtest.LoginStudent(s.T(), s.Router, "racer@example.com", dbtest.TestStudentPassword)

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := s.createRequest(canteenID)
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, token)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
			default:
				s.Failf("unexpected status", "got %d", code)
			}
		}
		s.Equal(1, created)

		var activeRows int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM reservations WHERE student_id = $1 AND status = 'active'", studentID).Scan(&activeRows)
		s.Require().NoError(err)
		s.Equal(1, activeRows)
	})
}

func (s *reservationSuite) TestLifecycle() {
	s.Run("create, inspect, cancel, rebook", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "cycle@example.com", string(student.RoleStudent))

		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), token)
		var reservation resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &reservation)

		active := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/active", nil, token)
		var activeView resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), active, http.StatusOK, &activeView)

		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(reservation, activeView, opts...); diff != "" {
			s.Failf("active view mismatch", "(-created +active):\n%s", diff)
		}

		cancel := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			reservationsURL+"/"+reservation.ID.String()+"/cancel", nil, token)
		s.Equal(http.StatusNoContent, cancel.Code)

		gone := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/active", nil, token)
		httptest.AssertErrorResponse(s.T(), gone, http.StatusNotFound, "")

		// The cancelled slot no longer blocks a new booking.
		rebook := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), token)
		httptest.AssertSuccessResponse(s.T(), rebook, http.StatusCreated, nil)

		history := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, token)
		var items []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), history, http.StatusOK, &items)
		s.Len(items, 2)
	})

	s.Run("cancelling twice conflicts", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "twice@example.com", string(student.RoleStudent))

		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), token)
		var reservation resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &reservation)

		cancelURL := reservationsURL + "/" + reservation.ID.String() + "/cancel"
		s.Equal(http.StatusNoContent,
			httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, token).Code)
		httptest.AssertErrorResponse(s.T(),
			httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, token),
			http.StatusConflict, "not cancellable")
	})

	s.Run("a student cannot cancel a foreign reservation", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", string(student.RoleStudent))
		intruderToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "intruder@example.com", string(student.RoleStudent))

		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), ownerToken)
		var reservation resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &reservation)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			reservationsURL+"/"+reservation.ID.String()+"/cancel", nil, intruderToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("an admin can cancel any reservation", func() {
		canteenID := dbtest.CreateTestCanteen(s.T(), s.DB, "Studentski Grad", 50)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owned@example.com", string(student.RoleStudent))
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(student.RoleAdmin))

		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(canteenID), ownerToken)
		var reservation resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &reservation)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			reservationsURL+"/"+reservation.ID.String()+"/cancel", nil, adminToken)
		s.Equal(http.StatusNoContent, w.Code)
	})
}
