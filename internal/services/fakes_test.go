package services

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"sort"
	"sync"
	"time"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
)

// A do-nothing database/sql driver so services can open and commit real
// transactions in tests. The fake repositories below ignore the executor
// they are handed and keep all state in memory.

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return &stubConn{}, nil }

type stubConn struct{}

func (*stubConn) Prepare(string) (driver.Stmt, error) { return &stubStmt{}, nil }
func (*stubConn) Close() error                        { return nil }
func (*stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubStmt struct{}

func (*stubStmt) Close() error  { return nil }
func (*stubStmt) NumInput() int { return -1 }
func (*stubStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(1), nil
}
func (*stubStmt) Query([]driver.Value) (driver.Rows, error) { return &stubRows{}, nil }

type stubRows struct{}

func (*stubRows) Columns() []string              { return nil }
func (*stubRows) Close() error                   { return nil }
func (*stubRows) Next(dest []driver.Value) error { return io.EOF }

func init() {
	sql.Register("servicestub", stubDriver{})
}

func newStubDB() *sql.DB {
	db, err := sql.Open("servicestub", "")
	if err != nil {
		panic(err)
	}
	return db
}

// --- fake repositories ---

type fakeClassRepo struct {
	mu      sync.Mutex
	classes map[string]*models.GymClass
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: map[string]*models.GymClass{}}
}

func (f *fakeClassRepo) CreateClass(_ repositories.SQLExecutor, class *models.GymClass) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *class
	f.classes[class.ID] = &copied
	return nil
}

func (f *fakeClassRepo) GetClassByID(classID string) (*models.GymClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[classID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *class
	return &copied, nil
}

func (f *fakeClassRepo) ListActiveClasses() ([]models.GymClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	classes := []models.GymClass{}
	for _, class := range f.classes {
		if class.Status == models.ClassStatusActive {
			classes = append(classes, *class)
		}
	}
	return classes, nil
}

func (f *fakeClassRepo) ListClassesByTrainer(trainerID string) ([]models.GymClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	classes := []models.GymClass{}
	for _, class := range f.classes {
		if class.TrainerID == trainerID {
			classes = append(classes, *class)
		}
	}
	return classes, nil
}

// IncrementEnrollment mirrors the conditional-update contract of the SQL
// implementation: the seat is granted only while the class is active and
// below capacity, atomically.
func (f *fakeClassRepo) IncrementEnrollment(_ repositories.SQLExecutor, classID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[classID]
	if !ok || class.Status != models.ClassStatusActive || class.EnrolledCount >= class.Capacity {
		return repositories.ErrCapacityReached
	}
	class.EnrolledCount++
	return nil
}

func (f *fakeClassRepo) DecrementEnrollment(_ repositories.SQLExecutor, classID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[classID]
	if !ok {
		return repositories.ErrNotFound
	}
	if class.EnrolledCount > 0 {
		class.EnrolledCount--
	}
	return nil
}

func (f *fakeClassRepo) enrolled(classID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.classes[classID].EnrolledCount
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) CreateBooking(_ repositories.SQLExecutor, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.MemberID == booking.MemberID &&
			existing.ClassID == booking.ClassID &&
			existing.Status == models.BookingStatusBooked {
			return repositories.ErrDuplicateKey
		}
	}
	booking.BookingTime = time.Now()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) GetBookingByID(bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListBookingsByMember(memberID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bookings := []models.Booking{}
	for _, booking := range f.bookings {
		if booking.MemberID == memberID {
			bookings = append(bookings, *booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingTime.After(bookings[j].BookingTime)
	})
	return bookings, nil
}

func (f *fakeBookingRepo) HasActiveBooking(memberID, classID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.MemberID == memberID && booking.ClassID == classID &&
			booking.Status == models.BookingStatusBooked {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) TransitionStatus(_ repositories.SQLExecutor, bookingID, fromStatus, toStatus string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok || booking.Status != fromStatus {
		return false, nil
	}
	booking.Status = toStatus
	return true, nil
}

func (f *fakeBookingRepo) SetPaymentStatus(_ repositories.SQLExecutor, bookingID, paymentStatus, paymentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return repositories.ErrNotFound
	}
	booking.PaymentStatus = paymentStatus
	booking.PaymentID = &paymentID
	return nil
}

func (f *fakeBookingRepo) CountAttendedByMember(memberID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, booking := range f.bookings {
		if booking.MemberID == memberID && booking.Status == models.BookingStatusAttended {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(_ repositories.SQLExecutor, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	user.DateJoined = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindUserByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindUserByID(userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ListUsers() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []models.User{}
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepo) ListUserIDsByRole(role string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := []string{}
	for _, user := range f.users {
		if user.Role == role {
			ids = append(ids, user.ID)
		}
	}
	return ids, nil
}

func (f *fakeUserRepo) SetApproved(userID string, approved bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.IsApproved = approved
	return nil
}

func (f *fakeUserRepo) SetActive(userID string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.IsActive = active
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (f *fakePaymentRepo) CreatePayment(_ repositories.SQLExecutor, payment *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *payment
	f.payments[payment.ID] = &copied
	return nil
}

func (f *fakePaymentRepo) GetPaymentByID(paymentID string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[paymentID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *payment
	return &copied, nil
}

func (f *fakePaymentRepo) CompletePayment(_ repositories.SQLExecutor, paymentID, externalOrderID string, completedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[paymentID]
	if !ok || payment.Status != models.PaymentStatusPending {
		return false, nil
	}
	payment.Status = models.PaymentStatusCompleted
	payment.ExternalOrderID = &externalOrderID
	payment.CompletedAt = &completedAt
	return true, nil
}

type fakeProgressRepo struct {
	mu      sync.Mutex
	entries []models.Progress
}

func (f *fakeProgressRepo) CreateEntry(entry *models.Progress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.RecordedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeProgressRepo) ListEntriesByMember(memberID string) ([]models.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := []models.Progress{}
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].MemberID == memberID {
			entries = append(entries, f.entries[i])
		}
	}
	return entries, nil
}

type fakeFeedbackRepo struct {
	mu      sync.Mutex
	records []models.Feedback
}

func (f *fakeFeedbackRepo) CreateFeedback(feedback *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	feedback.CreatedAt = time.Now()
	f.records = append(f.records, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) ListFeedbackByTrainer(trainerID string) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := []models.Feedback{}
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].TrainerID != nil && *f.records[i].TrainerID == trainerID {
			records = append(records, f.records[i])
		}
	}
	return records, nil
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	rows    map[string]*models.Notification
	failing bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{rows: map[string]*models.Notification{}}
}

func (f *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return repositories.ErrDatabaseError
	}
	notification.CreatedAt = time.Now()
	copied := *notification
	f.rows[notification.ID] = &copied
	return nil
}

func (f *fakeNotificationRepo) ListNotificationsByUser(userID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notifications := []models.Notification{}
	for _, notification := range f.rows {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (f *fakeNotificationRepo) MarkRead(notificationID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notification, ok := f.rows[notificationID]
	if !ok || notification.UserID != userID {
		return false, nil
	}
	notification.IsRead = true
	return true, nil
}

// fakeNotifier records Notify calls and satisfies NotificationService.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (f *fakeNotifier) Notify(userID, title, message, notificationType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, models.Notification{
		UserID: userID, Title: title, Message: message, Type: notificationType,
	})
}

func (f *fakeNotifier) ListForUser(models.Principal) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Notification{}, f.sent...), nil
}

func (f *fakeNotifier) MarkRead(models.Principal, string) error { return nil }

func (f *fakeNotifier) sentTo(userID string) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []models.Notification{}
	for _, notification := range f.sent {
		if notification.UserID == userID {
			matched = append(matched, notification)
		}
	}
	return matched
}
