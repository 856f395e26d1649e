package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/pkg/auth"
)

const testPassword = "campus-admin-pass"

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Outcome *struct {
		Status string `json:"status"`
	} `json:"outcome"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T, opts ...func(*config.Config)) (*testAPI, *Dependencies) {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Server.Mode = "production"
	cfg.JWT.Secret = "test-secret"
	cfg.Campus.HostelFeeDelay = "0s"
	cfg.Campus.CanteenRequestDelay = "0s"
	cfg.Campus.LibraryShelvingDelay = "0s"

	hash, err := auth.HashPasswordWithCost(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Admin.Password = hash
	for _, opt := range opts {
		opt(cfg)
	}

	lgr := zerolog.Nop()
	campus, _, err := SetupCampus(cfg, lgr)
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, campus, nil, lgr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go deps.ActivityHub.Run(ctx)
	stop := deps.Activity.Start()
	t.Cleanup(func() {
		stop()
		cancel()
	})

	router, err := SetupRouter(cfg, deps, lgr)
	require.NoError(t, err)

	return &testAPI{t: t, router: router}, deps
}

// serve runs one request without asserting, so it is safe off the test goroutine
func (a *testAPI) serve(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) do(method, path string, body interface{}) (int, apiEnvelope) {
	a.t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(a.t, err)
	}
	w := a.serve(method, path, raw)

	var env apiEnvelope
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (a *testAPI) login() {
	a.t.Helper()
	code, env := a.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "admin", "password": testPassword})
	require.Equal(a.t, http.StatusOK, code)

	var token struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(a.t, token.AccessToken)
	a.token = token.AccessToken
}

func (a *testAPI) rentable() map[string]int {
	a.t.Helper()
	code, env := a.do(http.MethodGet, "/api/v1/library/books/rentable", nil)
	require.Equal(a.t, http.StatusOK, code)

	var books map[string]int
	require.NoError(a.t, json.Unmarshal(env.Data, &books))
	return books
}

func TestAPI_Auth(t *testing.T) {
	api, _ := newTestAPI(t)

	code, _ := api.do(http.MethodPost, "/api/v1/library/issue", map[string]string{"title": "Python Programming", "studentId": "S101"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = api.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	api.login()
	code, _ = api.do(http.MethodPost, "/api/v1/library/issue", map[string]string{"title": "Python Programming", "studentId": "S101"})
	assert.Equal(t, http.StatusOK, code)
}

func TestAPI_LibraryIssueAndReturn(t *testing.T) {
	api, _ := newTestAPI(t)
	api.login()
	assert.Equal(t, 2, api.rentable()["Python Programming"])

	loan := map[string]string{"title": "Python Programming", "studentId": "S101"}
	code, env := api.do(http.MethodPost, "/api/v1/library/issue", loan)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", env.Outcome.Status)
	assert.Equal(t, 1, api.rentable()["Python Programming"])

	code, _ = api.do(http.MethodPost, "/api/v1/library/return", loan)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, api.rentable()["Python Programming"])

	code, env = api.do(http.MethodPost, "/api/v1/library/return", map[string]string{"title": "Compilers", "studentId": "S101"})
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "CREATED", env.Outcome.Status)

	code, _ = api.do(http.MethodPost, "/api/v1/library/issue", map[string]string{"title": "Python Programming", "studentId": "S999"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_SoftOutcomes(t *testing.T) {
	api, _ := newTestAPI(t)
	api.login()

	member := map[string]string{"studentId": "S101"}
	code, _ := api.do(http.MethodPost, "/api/v1/clubs/Dance%20Club/members", member)
	assert.Equal(t, http.StatusOK, code)
	code, env := api.do(http.MethodPost, "/api/v1/clubs/Dance%20Club/members", member)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)
	assert.Equal(t, "ALREADY_PRESENT", env.Outcome.Status)

	code, _ = api.do(http.MethodDelete, "/api/v1/nnf/events/past/Nothing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = api.do(http.MethodPost, "/api/v1/hostels/Aryabhatt%20Hostel/rooms/999/fees", map[string]int64{"amount": 100})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_ALLOCATED", env.Outcome.Status)

	code, _ = api.do(http.MethodPost, "/api/v1/canteens/IET%20Cafeteria/orders", map[string]string{"studentId": "S102", "item": "Pizza"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestAPI_HostelFees(t *testing.T) {
	api, deps := newTestAPI(t)
	api.login()

	code, _ := api.do(http.MethodPut, "/api/v1/hostels/Aryabhatt%20Hostel/rooms/101", map[string][]string{"studentIds": {"S101", "S103"}})
	require.Equal(t, http.StatusOK, code)

	code, _ = api.do(http.MethodPost, "/api/v1/hostels/Aryabhatt%20Hostel/rooms/101/fees", map[string]int64{"amount": 15000})
	require.Equal(t, http.StatusOK, code)

	s, err := deps.Campus.Student("S103")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), s.Fees)
}

func TestAPI_Validation(t *testing.T) {
	api, _ := newTestAPI(t)
	api.login()

	code, _ := api.do(http.MethodPost, "/api/v1/academic/grades", map[string]interface{}{
		"facultyId": "F201", "studentId": "S101", "year": 2, "semester": 1, "subject": "OOP", "grade": "Z",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = api.do(http.MethodPost, "/api/v1/academic/grades", map[string]interface{}{
		"facultyId": "F201", "studentId": "S101", "year": 2, "semester": 1, "subject": "OOP", "grade": "B+",
	})
	assert.Equal(t, http.StatusOK, code)

	code, _ = api.do(http.MethodPost, "/api/v1/clubs/Chess%20Club/members", map[string]string{"studentId": "S101"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_SnapshotWithoutDatabase(t *testing.T) {
	api, _ := newTestAPI(t)
	api.login()

	code, _ := api.do(http.MethodPost, "/api/v1/admin/snapshot", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestAPI_ActivityFeed(t *testing.T) {
	api, _ := newTestAPI(t)
	api.login()

	code, _ := api.do(http.MethodPost, "/api/v1/nnf/startups", map[string]string{"name": "EduSpark"})
	require.Equal(t, http.StatusOK, code)

	var events []struct {
		Topic  string `json:"topic"`
		Route  string `json:"route"`
		Status string `json:"status"`
	}
	require.Eventually(t, func() bool {
		_, env := api.do(http.MethodGet, "/api/v1/activity?topic=nnf", nil)
		return json.Unmarshal(env.Data, &events) == nil && len(events) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "nnf", events[0].Topic)
	assert.Equal(t, "/api/v1/nnf/startups", events[0].Route)
	assert.Equal(t, "OK", events[0].Status)
}

func TestAPI_ReadsNotBlockedByDeskDelay(t *testing.T) {
	const delay = 600 * time.Millisecond
	api, deps := newTestAPI(t, func(cfg *config.Config) {
		cfg.Campus.CanteenRequestDelay = delay.String()
	})
	api.login()

	body, err := json.Marshal(map[string]interface{}{"item": "Pizza", "price": 80})
	require.NoError(t, err)

	started := time.Now()
	requested := make(chan int, 1)
	go func() {
		requested <- api.serve(http.MethodPost, "/api/v1/canteens/IET%20Cafeteria/requests", body).Code
	}()

	time.Sleep(100 * time.Millisecond)
	readStart := time.Now()
	code, _ := api.do(http.MethodGet, "/api/v1/library/books", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Less(t, time.Since(readStart), 300*time.Millisecond)

	require.Equal(t, http.StatusOK, <-requested)
	assert.GreaterOrEqual(t, time.Since(started), delay)

	canteen, err := deps.Campus.Canteen("IET Cafeteria")
	require.NoError(t, err)
	assert.Equal(t, int64(80), canteen.Menu()["Pizza"])
}

func TestAPI_StudentsHugePage(t *testing.T) {
	api, _ := newTestAPI(t)

	code, env := api.do(http.MethodGet, "/api/v1/students?page=2305843009213693953&size=5", nil)
	require.Equal(t, http.StatusOK, code)

	var list struct {
		Students []json.RawMessage `json:"students"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list.Students)
}
