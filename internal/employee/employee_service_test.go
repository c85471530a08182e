package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"payrollpro/internal/employee"
	"payrollpro/internal/events"
	"payrollpro/internal/messaging/kafka"

	employeeerrors "payrollpro/internal/employee/errors"
	kafkaMock "payrollpro/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn   func(tx *sql.Tx) employee.Repository
	createFn   func(ctx context.Context, empl *employee.Employee) error
	findAllFn  func(ctx context.Context) ([]employee.Employee, error)
	searchFn   func(ctx context.Context, term string) ([]employee.Employee, error)
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn   func(ctx context.Context, empl *employee.Employee) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Search(ctx context.Context, term string) ([]employee.Employee, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, term)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type employeeServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   employee.Service
	repo      *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo, rdb)

	return &employeeServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

	var created *employee.Employee
	deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
		created = empl
		return nil
	}

	resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		Name:        "Jane Doe",
		IDNumber:    "12345",
		PhoneNumber: "0712345678",
		Position:    "Accountant",
		BasicSalary: "30000",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, "12345", resp.IDNumber)
	assert.Equal(t, float64(30000), resp.BasicSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_PublishesOutboxEvent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	repo := &fakeEmployeeRepository{}
	svc := employee.NewServiceWithOutbox(db, repo, outbox, rdb)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()
	redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, "employee", event.AggregateType)
			assert.Equal(t, events.EmployeeCreatedTopic, event.Topic)
			assert.Equal(t, kafka.OutboxStatusPending, event.Status)

			var payload events.EmployeeCreatedEvent
			assert.NoError(t, json.Unmarshal(event.Payload, &payload))
			assert.Equal(t, "employee_created", payload.EventType)
			assert.Equal(t, event.AggregateID, payload.EmployeeID)
			return nil
		})

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:        "Jane Doe",
		IDNumber:    "12345",
		BasicSalary: "30000",
	})

	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	t.Run("missing required fields", func(t *testing.T) {
		for _, req := range []employee.CreateEmployeeRequest{
			{IDNumber: "12345", BasicSalary: "30000"},
			{Name: "Jane", BasicSalary: "30000"},
			{Name: "Jane", IDNumber: "12345"},
			{Name: "   ", IDNumber: "12345", BasicSalary: "30000"},
		} {
			_, err := deps.service.Create(ctx, req)
			assert.ErrorIs(t, err, employeeerrors.ErrMissingRequiredFields)
		}
	})

	t.Run("invalid basic salary", func(t *testing.T) {
		for _, salary := range []string{"abc", "-1"} {
			_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
				Name:        "Jane",
				IDNumber:    "12345",
				BasicSalary: salary,
			})
			assert.ErrorIs(t, err, employeeerrors.ErrInvalidBasicSalary)
		}
	})

	// Validasi gagal sebelum transaksi dibuka
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_CacheHit(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	cached := []employee.EmployeeResponse{
		{ID: uuid.New().String(), Name: "Jane Doe", IDNumber: "12345", BasicSalary: 30000},
	}
	data, err := json.Marshal(cached)
	assert.NoError(t, err)

	deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(data))
	deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		t.Fatal("cache hit must not touch the database")
		return nil, nil
	}

	resp, err := deps.service.GetOptions(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_CacheMiss(t *testing.T) {
	ctx := context.Background()
	emplID := uuid.New()
	now := time.Now().UTC()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
	deps.redisMock.Regexp().ExpectSet(employee.EmployeeOptionsKey, `.*`, 1*time.Hour).SetVal("OK")

	deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		return []employee.Employee{
			{ID: emplID, Name: "Jane Doe", IDNumber: "12345", BasicSalary: 30000, CreatedAt: now},
		}, nil
	}

	resp, err := deps.service.GetOptions(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, emplID.String(), resp[0].ID)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestEmployeeService_GetAll_Search(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	searched := ""
	deps.repo.searchFn = func(ctx context.Context, term string) ([]employee.Employee, error) {
		searched = term
		return []employee.Employee{{ID: uuid.New(), Name: "Jane Doe"}}, nil
	}

	resp, err := deps.service.GetAll(ctx, "  jane ")

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "jane", searched)
}

func TestEmployeeService_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	emplID := uuid.New()
	createdAt := time.Now().UTC().Add(-24 * time.Hour)

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{
			ID:          emplID,
			Name:        "Jane Doe",
			IDNumber:    "12345",
			PhoneNumber: "0712345678",
			Position:    "Accountant",
			BasicSalary: 30000,
			CreatedAt:   createdAt,
		}, nil
	}

	var updated *employee.Employee
	deps.repo.updateFn = func(ctx context.Context, empl *employee.Employee) error {
		updated = empl
		return nil
	}

	newSalary := "45000"
	newPosition := "Senior Accountant"
	resp, err := deps.service.Update(ctx, emplID.String(), employee.UpdateEmployeeRequest{
		Position:    &newPosition,
		BasicSalary: &newSalary,
	})

	assert.NoError(t, err)
	assert.Equal(t, emplID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	// Field yang tidak dikirim tetap utuh
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "12345", updated.IDNumber)
	assert.Equal(t, "Senior Accountant", resp.Position)
	assert.Equal(t, float64(45000), resp.BasicSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Update(ctx, uuid.New().String(), employee.UpdateEmployeeRequest{})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	// Dua kali delete untuk id yang sama, dua-duanya sukses
	for i := 0; i < 2; i++ {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)
	}

	id := uuid.New().String()
	assert.NoError(t, deps.service.Delete(ctx, id))
	assert.NoError(t, deps.service.Delete(ctx, id))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
