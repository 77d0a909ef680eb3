package usecase_test

import (
	"context"

	"go-medlink-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Experience, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, id, profileID string) error {
	return m.Called(ctx, id, profileID).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Create(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockEducationRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Education, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockEducationRepo) Update(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockEducationRepo) Delete(ctx context.Context, id, profileID string) error {
	return m.Called(ctx, id, profileID).Error(0)
}

type MockInstitutionRepo struct {
	mock.Mock
}

func (m *MockInstitutionRepo) GetByID(ctx context.Context, id string) (*domain.Institution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Institution), args.Error(1)
}

func (m *MockInstitutionRepo) GetByProfileID(ctx context.Context, profileID string) (*domain.Institution, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Institution), args.Error(1)
}

func (m *MockInstitutionRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Institution, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Institution), args.Error(1)
}

func (m *MockInstitutionRepo) Upsert(ctx context.Context, inst *domain.Institution) error {
	return m.Called(ctx, inst).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobRepo) FetchWithCompany(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByInstitution(ctx context.Context, institutionID string) ([]domain.Job, error) {
	args := m.Called(ctx, institutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockJobRepo) ApplicationExists(ctx context.Context, jobID int64, applicantID string) (bool, error) {
	args := m.Called(ctx, jobID, applicantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepo) FetchApplicationsByUser(ctx context.Context, applicantID string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) GetByIDWithOrganizer(ctx context.Context, id int64) (*domain.EventWithOrganizer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventWithOrganizer), args.Error(1)
}

func (m *MockEventRepo) FetchUpcoming(ctx context.Context, limit, offset int) ([]domain.EventWithOrganizer, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.EventWithOrganizer), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepo) Register(ctx context.Context, eventID int64, profileID string) error {
	return m.Called(ctx, eventID, profileID).Error(0)
}

func (m *MockEventRepo) IsRegistered(ctx context.Context, eventID int64, profileID string) (bool, error) {
	args := m.Called(ctx, eventID, profileID)
	return args.Bool(0), args.Error(1)
}
