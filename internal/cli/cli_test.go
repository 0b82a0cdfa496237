package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninebudget/ninebudget/client"
)

type recorded struct {
	method string
	path   string
	query  string
	body   map[string]any
}

type fakeAPI struct {
	t        *testing.T
	mux      *http.ServeMux
	mu       sync.Mutex
	requests []recorded
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{t: t, mux: http.NewServeMux()}
}

func (f *fakeAPI) handle(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			assert.NoError(f.t, json.Unmarshal(raw, &rec.body))
		}
		f.mu.Lock()
		f.requests = append(f.requests, rec)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func run(t *testing.T, api *fakeAPI, sessionFile string, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(api.mux)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	r := NewRunner(&out, client.Config{
		BaseURL:     srv.URL + "/api",
		SessionFile: sessionFile,
		UserAgent:   "ninebudget-test",
	}, quietLogger())
	err := r.App().RunContext(context.Background(), append([]string{"ninebudget"}, args...))
	return out.String(), err
}

const groceries = `{"id":1,"name":"Groceries","amount":400,"amountSpent":120.5,"budgetTiming":"MONTHLY","useLeftOver":true,"active":true,
	"category":{"id":2,"name":"Food","subCategories":[{"id":7,"name":"Produce"}]},
	"transactions":[{"id":3,"name":"Market","amount":20.5,"transactionDate":"2026-03-01T00:00:00Z","budgetId":1}]}`

func TestViewNames_Order(t *testing.T) {
	r := NewRunner(io.Discard, client.Config{}, quietLogger())

	assert.Equal(t, []string{
		"home", "budgets", "budget-new", "budget-detail", "accounts", "account-detail",
		"transactions", "institutions", "institution-create", "login", "logout",
		"forget-password", "reset-password", "swagger",
	}, ViewNames(r))
}

func TestBudgets_ListPassesPaging(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/budgets", http.StatusOK, "["+groceries+"]")

	out, err := run(t, api, "", "budgets", "--page", "2", "--size", "5", "--filter", "gro")
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	assert.Equal(t, "filter=gro&page=2&size=5", api.requests[0].query)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "279.50")
	assert.Contains(t, out, "MONTHLY")
}

func TestBudgetNew_SendsCoalescedBody(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("PUT /api/budgets", http.StatusCreated, `{"id":9,"name":"Rent","amount":1200,"active":true,"useLeftOver":false}`)

	out, err := run(t, api, "",
		"budget-new", "--name", "Rent", "--amount", "1200.00", "--timing", "monthly",
		"--account-id", "5b1f4c1e-8d0a-4f6e-9f39-1d3c2b7a9e10", "--category-id", "1")
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	body := api.requests[0].body
	assert.Equal(t, "Rent", body["name"])
	assert.EqualValues(t, 1200, body["amount"])
	assert.Equal(t, "MONTHLY", body["budgetTiming"])
	assert.Equal(t, false, body["useLeftOver"])
	assert.Equal(t, true, body["active"])
	assert.Equal(t, "5b1f4c1e-8d0a-4f6e-9f39-1d3c2b7a9e10", body["accountId"])
	assert.Equal(t, map[string]any{"id": float64(1)}, body["category"])
	assert.Contains(t, out, "Created budget 9 (Rent)")
}

func TestBudgetNew_RejectsBadInputBeforeCallingAPI(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "amount", args: []string{"--amount", "lots"}},
		{name: "timing", args: []string{"--amount", "10", "--timing", "DAILY"}},
		{name: "account id", args: []string{"--amount", "10", "--account-id", "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.handle("PUT /api/budgets", http.StatusCreated, `{}`)

			_, err := run(t, api, "", append([]string{"budget-new", "--name", "x"}, tt.args...)...)
			assert.Error(t, err)
			assert.Empty(t, api.requests)
		})
	}
}

func TestBudgetDetail_ShowsDerivedAmounts(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/budgets/1", http.StatusOK, groceries)

	out, err := run(t, api, "", "budget-detail", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Budget 1: Groceries")
	assert.Contains(t, out, "Remaining:   279.50")
	assert.Contains(t, out, "Carryover:   279.50")
	assert.Contains(t, out, "Category:    Food")
	assert.Contains(t, out, "- Produce")
	assert.Contains(t, out, "Market")
}

func TestBudgetDetail_Delete(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("DELETE /api/budgets/4", http.StatusNoContent, "")

	out, err := run(t, api, "", "budget-detail", "--delete", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted budget 4")
}

func TestBudgetDetail_NotFound(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/budgets/8", http.StatusNotFound, `{"title":"Not Found","status":404,"detail":"budget not found"}`)

	_, err := run(t, api, "", "budget-detail", "8")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestBudgetDetail_RequiresID(t *testing.T) {
	_, err := run(t, newFakeAPI(t), "", "budget-detail")
	assert.ErrorContains(t, err, "id argument is required")
}

func TestAccounts_CreateThenList(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("PUT /api/accounts", http.StatusCreated, `{"id":3,"name":"Checking","active":true}`)
	api.handle("GET /api/accounts", http.StatusOK, `[{"id":3,"name":"Checking","active":true,"institutionId":4}]`)

	out, err := run(t, api, "", "accounts", "--create", "Checking")
	require.NoError(t, err)

	require.Len(t, api.requests, 2)
	assert.Equal(t, map[string]any{"name": "Checking", "active": true}, api.requests[0].body)
	assert.Contains(t, out, "Created account 3 (Checking)")
	assert.Contains(t, out, "INSTITUTION")
}

func TestAccountDetail_UpdatesOnlyGivenFields(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/accounts/3", http.StatusOK, `{"id":3,"name":"Checking","active":true,"budgetId":6}`)
	api.handle("POST /api/accounts", http.StatusOK, `{"id":3,"name":"Checking","active":false,"budgetId":6}`)

	out, err := run(t, api, "", "account-detail", "--active=false", "3")
	require.NoError(t, err)

	require.Len(t, api.requests, 2)
	assert.Equal(t, map[string]any{"id": float64(3), "name": "Checking", "active": false, "budgetId": float64(6)}, api.requests[1].body)
	assert.Contains(t, out, "Active:      no")
}

func TestTransactionsAdd(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("POST /api/budgets/1/transactions", http.StatusOK, groceries)

	out, err := run(t, api, "", "transactions", "add", "--budget", "1", "--name", "Market", "--amount", "20.50", "--date", "2026-03-01")
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	body := api.requests[0].body
	assert.Equal(t, "Market", body["name"])
	assert.EqualValues(t, 20.5, body["amount"])
	assert.Equal(t, "2026-03-01T00:00:00Z", body["transactionDate"])
	assert.Contains(t, out, "Recorded 20.50 against Groceries, remaining 279.50")
}

func TestInstitutionCreate(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("PUT /api/institutions", http.StatusCreated, `{"id":"0e5c0c5a-3b8e-4a47-8c7c-2f7a5c3b9d11","name":"Credit Union","active":true,"type":"BANK"}`)

	out, err := run(t, api, "", "institution-create", "--name", "Credit Union", "--type", "bank", "--balance", "10.25")
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	assert.Equal(t, "BANK", api.requests[0].body["type"])
	assert.EqualValues(t, 10.25, api.requests[0].body["balance"])
	assert.Contains(t, out, "Created institution 0e5c0c5a-3b8e-4a47-8c7c-2f7a5c3b9d11")
}

func TestInstitutionCreate_UnknownType(t *testing.T) {
	_, err := run(t, newFakeAPI(t), "", "institution-create", "--name", "x", "--type", "PAWNSHOP")
	assert.ErrorContains(t, err, "unknown institution type")
}

func TestLoginLogout_PersistsSession(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("POST /api/authenticate", http.StatusOK, `{"id_token":"header.payload.signature"}`)
	sessionFile := filepath.Join(t.TempDir(), "session")

	out, err := run(t, api, sessionFile, "login", "--username", "ada", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ada")
	assert.Equal(t, map[string]any{"username": "ada", "password": "secret"}, api.requests[0].body)

	raw, err := os.ReadFile(sessionFile)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", string(bytes.TrimSpace(raw)))

	_, err = run(t, api, sessionFile, "logout")
	require.NoError(t, err)
	_, err = os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err))
}

func TestSwagger_ListsPaths(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/openapi.json", http.StatusOK, `{"info":{"title":"Ninebudget API","version":"1.0.0"},
		"paths":{"/api/budgets":{"get":{},"put":{},"post":{}},"/api/accounts/{id}":{"get":{},"delete":{}}}}`)

	out, err := run(t, api, "", "swagger")
	require.NoError(t, err)

	assert.Contains(t, out, "Ninebudget API 1.0.0")
	assert.Regexp(t, `/api/accounts/\{id\}\s+DELETE GET`, out)
	assert.Regexp(t, `/api/budgets\s+GET POST PUT`, out)
}

func TestDebug_DumpsEntities(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/accounts", http.StatusOK, `[{"id":3,"name":"Checking","active":true}]`)

	out, err := run(t, api, "", "--debug", "accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "--- accounts")
	assert.Contains(t, out, "model.Account")
}

func TestHome_SummarisesActiveBudgets(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/accounts", http.StatusOK, `[{"id":3,"name":"Checking","active":true},{"id":4,"name":"Old","active":false}]`)
	api.handle("GET /api/budgets", http.StatusOK, "["+groceries+`,{"id":2,"name":"Paused","amount":50,"active":false}]`)

	out, err := run(t, api, "", "home")
	require.NoError(t, err)

	assert.Contains(t, out, "Accounts: 2 (1 active)")
	assert.Contains(t, out, "Budgeted: 400.00  Spent: 120.50  Remaining: 279.50  Carryover: 279.50")
	assert.Contains(t, out, "Groceries")
	assert.NotContains(t, out, "Paused")
}

func TestHome_RefreshRedrawsArePassive(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/accounts", http.StatusOK, `[]`)
	api.handle("GET /api/budgets", http.StatusOK, `[]`)
	srv := httptest.NewServer(api.mux)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		passive []bool
	)
	record := func(next client.Doer) client.Doer {
		return client.DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			mu.Lock()
			passive = append(passive, client.IsPassive(req.Context()))
			if len(passive) >= 6 {
				cancel()
			}
			mu.Unlock()
			return resp, err
		})
	}

	r := NewRunner(io.Discard, client.Config{BaseURL: srv.URL + "/api", UserAgent: "ninebudget-test"}, quietLogger())
	r.NewClient = func(cfg client.Config, opts ...client.Option) (*client.Client, error) {
		return client.New(cfg, append(opts, client.WithInterceptor("record", record))...)
	}

	err := r.App().RunContext(ctx, []string{"ninebudget", "home", "--refresh", "10ms"})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(passive), 6)
	assert.Equal(t, []bool{false, false}, passive[:2])
	for _, p := range passive[2:] {
		assert.True(t, p)
	}
}

func TestTransactions_List(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/budgets/1", http.StatusOK, groceries)

	out, err := run(t, api, "", "transactions", "--budget", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-03-01")
	assert.Contains(t, out, "Market")
	assert.Contains(t, out, "20.50")
}

func TestTransactions_RequiresBudget(t *testing.T) {
	_, err := run(t, newFakeAPI(t), "", "transactions")
	assert.ErrorContains(t, err, "--budget is required")
}
