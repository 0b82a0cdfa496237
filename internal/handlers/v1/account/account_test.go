package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/model"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context, query service.ListQuery) ([]service.Account, bool, error) {
	args := m.Called(ctx, query)
	accounts, _ := args.Get(0).([]service.Account)
	return accounts, args.Bool(1), args.Error(2)
}

func (m *mockAccountService) GetAccount(ctx context.Context, id int64) (*service.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*service.Account)
	return a, args.Error(1)
}

func (m *mockAccountService) CreateAccount(ctx context.Context, in model.Account) (*service.Account, error) {
	args := m.Called(ctx, in)
	a, _ := args.Get(0).(*service.Account)
	return a, args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, in model.Account) (*service.Account, error) {
	args := m.Called(ctx, in)
	a, _ := args.Get(0).(*service.Account)
	return a, args.Error(1)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *mockAccountService) {
	t.Helper()
	svc := &mockAccountService{}
	svc.Test(t)
	t.Cleanup(func() { svc.AssertExpectations(t) })

	_, api := humatest.New(t)
	RegisterAll(api, svc)
	return api, svc
}

func TestListAccounts_PassesQueryAndSetsNextPage(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("ListAccounts", mock.Anything, service.ListQuery{Page: 1, Size: 2, Filter: "chk"}).
		Return([]service.Account{
			{ID: 1, Name: "Checking", Active: true},
			{ID: 2, Name: "Old checking", InstitutionID: model.Int64(4)},
		}, true, nil)

	resp := api.Get("/api/accounts?page=1&size=2&filter=chk")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "2", resp.Header().Get("X-Next-Page"))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Checking", body[0]["name"])
	assert.Equal(t, true, body[0]["active"])
	assert.NotContains(t, body[0], "institutionId")
	assert.Equal(t, false, body[1]["active"])
	assert.Equal(t, float64(4), body[1]["institutionId"])
}

func TestListAccounts_EmptyIsArray(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("ListAccounts", mock.Anything, service.ListQuery{}).Return(nil, false, nil)

	resp := api.Get("/api/accounts")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
	assert.Empty(t, resp.Header().Get("X-Next-Page"))
}

func TestListAccounts_SizeTooLarge(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/api/accounts?size=101")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestListAccounts_PageTooLarge(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/api/accounts?page=1000001")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetAccount(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("GetAccount", mock.Anything, int64(3)).Return(&service.Account{ID: 3, Name: "Savings"}, nil)
	svc.On("GetAccount", mock.Anything, int64(4)).Return(nil, service.ErrNotFound)

	resp := api.Get("/api/accounts/3")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":3,"name":"Savings","active":false}`, resp.Body.String())

	resp = api.Get("/api/accounts/4")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateAccount_CoalescesActiveAndReturns201(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.GetName() == "Checking" && !a.Active && *a.CategoryID == 2
	})).Return(&service.Account{ID: 10, Name: "Checking", CategoryID: model.Int64(2)}, nil)

	resp := api.Put("/api/accounts", map[string]any{
		"name":       "Checking",
		"categoryId": 2,
		"users":      []map[string]any{{"login": "alice"}},
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.JSONEq(t, `{"id":10,"name":"Checking","active":false,"categoryId":2}`, resp.Body.String())
}

func TestAccountSchema_DocumentsMissingUsers(t *testing.T) {
	api, _ := newTestAPI(t)

	schema := api.OpenAPI().Components.Schemas.Map()["Account"]
	require.NotNil(t, schema)
	assert.NotContains(t, schema.Properties, "users")
	assert.Contains(t, schema.Description, "never include users")
}

func TestCreateAccount_ValidationError(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, &service.ValidationError{Field: "name", Message: "is required"})

	resp := api.Put("/api/accounts", map[string]any{"active": true})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.name")
}

func TestUpdateAccount(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.ID != nil && *a.ID == 5 && a.Active
	})).Return(&service.Account{ID: 5, Name: "Brokerage", Active: true}, nil)

	resp := api.Post("/api/accounts", map[string]any{"id": 5, "name": "Brokerage", "active": true})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":5,"name":"Brokerage","active":true}`, resp.Body.String())
}

func TestUpdateAccount_NotFound(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("UpdateAccount", mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)

	resp := api.Post("/api/accounts", map[string]any{"id": 5, "name": "Brokerage"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteAccount(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("DeleteAccount", mock.Anything, int64(5)).Return(nil)
	svc.On("DeleteAccount", mock.Anything, int64(6)).Return(errors.New("db down"))

	assert.Equal(t, http.StatusNoContent, api.Delete("/api/accounts/5").Code)
	assert.Equal(t, http.StatusInternalServerError, api.Delete("/api/accounts/6").Code)
}
