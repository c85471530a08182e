package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payrollpro/internal/employee"

	employeeerrors "payrollpro/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn     func(ctx context.Context, search string) ([]employee.EmployeeResponse, error)
	getOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, search)
}

func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getOptionsFn(ctx)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestEmployeeHandler_Create(t *testing.T) {
	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "Jane Doe", req.Name)
			assert.Equal(t, "12345", req.IDNumber)
			return employee.EmployeeResponse{
				ID:          uuid.New().String(),
				Name:        req.Name,
				IDNumber:    req.IDNumber,
				BasicSalary: 30000,
			}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"Jane Doe","id_number":"12345","basic_salary":"30000"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestEmployeeHandler_Create_MissingFields(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// basic_salary tidak dikirim, ditolak oleh binding
	body := `{"name":"Jane Doe","id_number":"12345"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestEmployeeHandler_GetAll_Pagination(t *testing.T) {
	all := make([]employee.EmployeeResponse, 25)
	for i := range all {
		all[i] = employee.EmployeeResponse{ID: uuid.New().String(), Name: "Employee"}
	}

	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
			assert.Empty(t, search)
			return all, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?page=3&page_size=10", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var page []employee.EmployeeResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 5)

	var meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	}
	assert.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestEmployeeHandler_GetAll_Search(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "jane", search)
			return []employee.EmployeeResponse{{ID: uuid.New().String(), Name: "Jane Doe"}}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?q=jane", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		getByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil)

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestEmployeeHandler_Update(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeEmployeeService{
		updateFn: func(ctx context.Context, targetID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, targetID)
			assert.Nil(t, req.Name)
			assert.NotNil(t, req.Position)
			return employee.EmployeeResponse{ID: targetID, Position: *req.Position}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"position":"Senior Accountant"}`
	c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+id, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	deleted := ""
	svc := &fakeEmployeeService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, deleted)
}
