package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"supreme_fitness_backend/internal/models"
)

func newBookingFixture() (*fakeBookingRepo, *fakeClassRepo, *fakeNotifier, BookingService) {
	bookingRepo := newFakeBookingRepo()
	classRepo := newFakeClassRepo()
	notifier := &fakeNotifier{}
	service := NewBookingService(bookingRepo, classRepo, notifier, newStubDB())
	return bookingRepo, classRepo, notifier, service
}

func seedClass(t *testing.T, classRepo *fakeClassRepo, capacity int, status string) *models.GymClass {
	t.Helper()
	class := &models.GymClass{
		ID:            "class-1",
		TrainerID:     "trainer-1",
		TrainerName:   "Bob Coach",
		Name:          "Morning Yoga",
		StartTime:     time.Now().Add(24 * time.Hour),
		EndTime:       time.Now().Add(25 * time.Hour),
		Capacity:      capacity,
		Price:         15.0,
		Status:        status,
		EnrolledCount: 0,
	}
	if err := classRepo.CreateClass(nil, class); err != nil {
		t.Fatalf("seeding class: %v", err)
	}
	return class
}

func memberPrincipal(id string) models.Principal {
	return models.Principal{ID: id, FullName: "Member " + id, Role: models.RoleMember}
}

func TestReserveBooksSeat(t *testing.T) {
	_, classRepo, notifier, service := newBookingFixture()
	seedClass(t, classRepo, 10, models.ClassStatusActive)

	booking, err := service.Reserve(memberPrincipal("member-1"), "class-1")
	if err != nil {
		t.Fatalf("Reserve returned error: %v", err)
	}
	if booking.Status != models.BookingStatusBooked {
		t.Errorf("booking status = %q, want %q", booking.Status, models.BookingStatusBooked)
	}
	if booking.ClassName != "Morning Yoga" {
		t.Errorf("booking class name = %q, want Morning Yoga", booking.ClassName)
	}
	if booking.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("booking payment status = %q, want pending", booking.PaymentStatus)
	}
	if got := classRepo.enrolled("class-1"); got != 1 {
		t.Errorf("enrolled count = %d, want 1", got)
	}
	if sent := notifier.sentTo("member-1"); len(sent) != 1 || sent[0].Title != "Booking Confirmed" {
		t.Errorf("expected one Booking Confirmed notification, got %+v", sent)
	}
}

func TestReserveUnknownClass(t *testing.T) {
	_, _, _, service := newBookingFixture()

	_, err := service.Reserve(memberPrincipal("member-1"), "missing")
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("err = %v, want ErrClassNotFound", err)
	}
}

func TestReserveInactiveClass(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 10, models.ClassStatusCancelled)

	_, err := service.Reserve(memberPrincipal("member-1"), "class-1")
	if !errors.Is(err, ErrClassNotActive) {
		t.Fatalf("err = %v, want ErrClassNotActive", err)
	}
}

func TestReserveFullClass(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 1, models.ClassStatusActive)

	if _, err := service.Reserve(memberPrincipal("member-1"), "class-1"); err != nil {
		t.Fatalf("first reservation failed: %v", err)
	}

	_, err := service.Reserve(memberPrincipal("member-2"), "class-1")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if got := classRepo.enrolled("class-1"); got != 1 {
		t.Errorf("enrolled count = %d, want 1", got)
	}
}

func TestReserveDuplicate(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 10, models.ClassStatusActive)

	principal := memberPrincipal("member-1")
	if _, err := service.Reserve(principal, "class-1"); err != nil {
		t.Fatalf("first reservation failed: %v", err)
	}

	_, err := service.Reserve(principal, "class-1")
	if !errors.Is(err, ErrDuplicateBooking) {
		t.Fatalf("err = %v, want ErrDuplicateBooking", err)
	}
	if got := classRepo.enrolled("class-1"); got != 1 {
		t.Errorf("enrolled count = %d, want 1", got)
	}
}

// Reserving the last seat from many goroutines must hand it to exactly one
// caller; the rest see the class as full and the counter never passes
// capacity.
func TestReserveConcurrentLastSeat(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 1, models.ClassStatusActive)

	const callers = 16
	results := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.Reserve(memberPrincipal(fmt.Sprintf("member-%d", n)), "class-1")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrCapacityExceeded):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successful reservations = %d, want 1", successes)
	}
	if got := classRepo.enrolled("class-1"); got != 1 {
		t.Errorf("enrolled count = %d, want 1", got)
	}
}

func TestCancelReleasesSeat(t *testing.T) {
	_, classRepo, notifier, service := newBookingFixture()
	seedClass(t, classRepo, 5, models.ClassStatusActive)

	principal := memberPrincipal("member-1")
	booking, err := service.Reserve(principal, "class-1")
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	cancelled, err := service.Cancel(principal, booking.ID)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Errorf("booking status = %q, want cancelled", cancelled.Status)
	}
	if got := classRepo.enrolled("class-1"); got != 0 {
		t.Errorf("enrolled count = %d, want 0", got)
	}

	found := false
	for _, notification := range notifier.sentTo("member-1") {
		if notification.Title == "Booking Cancelled" {
			found = true
		}
	}
	if !found {
		t.Error("expected a Booking Cancelled notification")
	}
}

func TestCancelRepeatIsNoOp(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 5, models.ClassStatusActive)

	principal := memberPrincipal("member-1")
	booking, err := service.Reserve(principal, "class-1")
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}
	if _, err := service.Cancel(principal, booking.ID); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	again, err := service.Cancel(principal, booking.ID)
	if err != nil {
		t.Fatalf("repeat cancel returned error: %v", err)
	}
	if again.Status != models.BookingStatusCancelled {
		t.Errorf("booking status = %q, want cancelled", again.Status)
	}
	if got := classRepo.enrolled("class-1"); got != 0 {
		t.Errorf("enrolled count = %d after repeat cancel, want 0", got)
	}
}

func TestCancelOwnership(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 5, models.ClassStatusActive)

	booking, err := service.Reserve(memberPrincipal("member-1"), "class-1")
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	_, err = service.Cancel(memberPrincipal("member-2"), booking.ID)
	if !errors.Is(err, ErrBookingForbidden) {
		t.Fatalf("err = %v, want ErrBookingForbidden", err)
	}

	admin := models.Principal{ID: "admin-1", FullName: "Ada Admin", Role: models.RoleAdmin}
	if _, err := service.Cancel(admin, booking.ID); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestCancelUnknownBooking(t *testing.T) {
	_, _, _, service := newBookingFixture()

	_, err := service.Cancel(memberPrincipal("member-1"), "missing")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestMarkAttendance(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 5, models.ClassStatusActive)

	booking, err := service.Reserve(memberPrincipal("member-1"), "class-1")
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	updated, err := service.MarkAttendance(booking.ID, models.BookingStatusAttended)
	if err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}
	if updated.Status != models.BookingStatusAttended {
		t.Errorf("booking status = %q, want attended", updated.Status)
	}

	// The seat was consumed at reservation time and stays consumed.
	if got := classRepo.enrolled("class-1"); got != 1 {
		t.Errorf("enrolled count = %d, want 1", got)
	}
}

func TestMarkAttendanceRejectsBadStatus(t *testing.T) {
	_, _, _, service := newBookingFixture()

	_, err := service.MarkAttendance("booking-1", models.BookingStatusCancelled)
	if !errors.Is(err, ErrBadAttendance) {
		t.Fatalf("err = %v, want ErrBadAttendance", err)
	}
}

func TestMarkAttendanceTerminalBooking(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 5, models.ClassStatusActive)

	principal := memberPrincipal("member-1")
	booking, err := service.Reserve(principal, "class-1")
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}
	if _, err := service.Cancel(principal, booking.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	_, err = service.MarkAttendance(booking.ID, models.BookingStatusNoShow)
	if !errors.Is(err, ErrBookingAlreadyOver) {
		t.Fatalf("err = %v, want ErrBookingAlreadyOver", err)
	}
}

func TestListForMember(t *testing.T) {
	_, classRepo, _, service := newBookingFixture()
	seedClass(t, classRepo, 5, models.ClassStatusActive)

	if _, err := service.Reserve(memberPrincipal("member-1"), "class-1"); err != nil {
		t.Fatalf("reservation failed: %v", err)
	}
	if _, err := service.Reserve(memberPrincipal("member-2"), "class-1"); err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	bookings, err := service.ListForMember(memberPrincipal("member-1"))
	if err != nil {
		t.Fatalf("ListForMember returned error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("len(bookings) = %d, want 1", len(bookings))
	}
	if bookings[0].MemberID != "member-1" {
		t.Errorf("booking member = %q, want member-1", bookings[0].MemberID)
	}
}
