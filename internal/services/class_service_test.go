package services

import (
	"errors"
	"testing"
	"time"

	"supreme_fitness_backend/internal/models"
)

func newClassFixture(t *testing.T) (*fakeClassRepo, ClassService) {
	t.Helper()
	classRepo := newFakeClassRepo()
	userRepo := newFakeUserRepo()

	trainer := &models.User{
		ID:         "trainer-1",
		Email:      "coach@example.com",
		FullName:   "Bob Coach",
		Role:       models.RoleTrainer,
		IsActive:   true,
		IsApproved: true,
	}
	if err := userRepo.CreateUser(nil, trainer); err != nil {
		t.Fatalf("seeding trainer: %v", err)
	}

	service := NewClassService(classRepo, userRepo, newStubDB())
	return classRepo, service
}

func validClassRequest() CreateClassRequest {
	start := time.Now().Add(24 * time.Hour)
	return CreateClassRequest{
		TrainerID: "trainer-1",
		Name:      "Morning Yoga",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Capacity:  20,
		Price:     12.0,
	}
}

func TestCreateClassResolvesTrainerName(t *testing.T) {
	_, service := newClassFixture(t)

	class, err := service.CreateClass(validClassRequest())
	if err != nil {
		t.Fatalf("CreateClass returned error: %v", err)
	}
	if class.TrainerName != "Bob Coach" {
		t.Errorf("trainer name = %q, want Bob Coach", class.TrainerName)
	}
	if class.Status != models.ClassStatusActive {
		t.Errorf("status = %q, want active", class.Status)
	}
	if class.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", class.DurationMinutes)
	}
	if class.EnrolledCount != 0 {
		t.Errorf("enrolled count = %d, want 0", class.EnrolledCount)
	}
}

func TestCreateClassUnknownTrainer(t *testing.T) {
	_, service := newClassFixture(t)

	req := validClassRequest()
	req.TrainerID = "missing"
	_, err := service.CreateClass(req)
	if !errors.Is(err, ErrTrainerNotFound) {
		t.Fatalf("err = %v, want ErrTrainerNotFound", err)
	}
}

func TestCreateClassValidation(t *testing.T) {
	_, service := newClassFixture(t)

	badCapacity := validClassRequest()
	badCapacity.Capacity = 0

	badPrice := validClassRequest()
	badPrice.Price = -1

	badWindow := validClassRequest()
	badWindow.EndTime = badWindow.StartTime

	for name, req := range map[string]CreateClassRequest{
		"zero capacity":  badCapacity,
		"negative price": badPrice,
		"empty window":   badWindow,
	} {
		if _, err := service.CreateClass(req); !errors.Is(err, ErrClassValidation) {
			t.Errorf("%s: err = %v, want ErrClassValidation", name, err)
		}
	}
}

func TestListActiveClassesFiltersStatus(t *testing.T) {
	classRepo, service := newClassFixture(t)

	if _, err := service.CreateClass(validClassRequest()); err != nil {
		t.Fatalf("CreateClass returned error: %v", err)
	}
	cancelled := &models.GymClass{
		ID:        "class-cancelled",
		TrainerID: "trainer-1",
		Name:      "Old Class",
		Status:    models.ClassStatusCancelled,
		Capacity:  10,
	}
	if err := classRepo.CreateClass(nil, cancelled); err != nil {
		t.Fatalf("seeding cancelled class: %v", err)
	}

	classes, err := service.ListActiveClasses()
	if err != nil {
		t.Fatalf("ListActiveClasses returned error: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("len(classes) = %d, want 1", len(classes))
	}
	if classes[0].Name != "Morning Yoga" {
		t.Errorf("class name = %q, want Morning Yoga", classes[0].Name)
	}
}

func TestListClassesByTrainer(t *testing.T) {
	classRepo, service := newClassFixture(t)

	if _, err := service.CreateClass(validClassRequest()); err != nil {
		t.Fatalf("CreateClass returned error: %v", err)
	}
	other := &models.GymClass{
		ID:        "class-other",
		TrainerID: "trainer-2",
		Name:      "Boxing",
		Status:    models.ClassStatusActive,
		Capacity:  10,
	}
	if err := classRepo.CreateClass(nil, other); err != nil {
		t.Fatalf("seeding class: %v", err)
	}

	classes, err := service.ListClassesByTrainer("trainer-1")
	if err != nil {
		t.Fatalf("ListClassesByTrainer returned error: %v", err)
	}
	if len(classes) != 1 || classes[0].TrainerID != "trainer-1" {
		t.Errorf("unexpected classes: %+v", classes)
	}
}
