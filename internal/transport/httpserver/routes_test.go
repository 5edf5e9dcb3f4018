package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-membership-go/internal/config"
	checkinsdomain "gym-membership-go/internal/domain/checkins"
	"gym-membership-go/internal/domain/failure"
	membersdomain "gym-membership-go/internal/domain/members"
	membershipsdomain "gym-membership-go/internal/domain/memberships"
	plansdomain "gym-membership-go/internal/domain/plans"
	"gym-membership-go/internal/transport/httpserver/handler"
	checkinshandler "gym-membership-go/internal/transport/httpserver/handler/checkins"
	commonhandler "gym-membership-go/internal/transport/httpserver/handler/common"
	membershandler "gym-membership-go/internal/transport/httpserver/handler/members"
	membershipshandler "gym-membership-go/internal/transport/httpserver/handler/memberships"
	"gym-membership-go/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	memberID     = "7b0f4c1e-8d3a-4f61-9a57-2c1e5d9b0a11"
	planID       = "1c9d2e3f-4a5b-4c6d-8e7f-9a0b1c2d3e4f"
	membershipID = "a4c3b2d1-0e9f-4a8b-b7c6-d5e4f3a2b1c0"
)

var fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type fakePlans struct {
	items []plansdomain.Plan
	err   error
}

func (f *fakePlans) ListPlans(context.Context) ([]plansdomain.Plan, error) {
	return f.items, f.err
}

type fakeLedger struct {
	assignErr  error
	cancelErr  error
	lastAssign membershipsdomain.AssignPlanInput
	lastCancel time.Time
}

func (f *fakeLedger) AssignPlan(_ context.Context, input membershipsdomain.AssignPlanInput) (*membershipsdomain.Membership, error) {
	f.lastAssign = input
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	return &membershipsdomain.Membership{
		ID:        membershipID,
		MemberID:  input.MemberID,
		PlanID:    input.PlanID,
		StartDate: input.StartDate,
		Status:    membershipsdomain.StatusActive,
		Plan:      plansdomain.Plan{ID: input.PlanID, Name: "Basic", PriceInCents: 2999},
	}, nil
}

func (f *fakeLedger) CancelMembership(_ context.Context, id string, effectiveDate time.Time) (*membershipsdomain.Membership, error) {
	f.lastCancel = effectiveDate
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return &membershipsdomain.Membership{
		ID:          id,
		MemberID:    memberID,
		PlanID:      planID,
		Status:      membershipsdomain.StatusCancelled,
		CancelledAt: &effectiveDate,
		Plan:        plansdomain.Plan{ID: planID, Name: "Basic", PriceInCents: 2999},
	}, nil
}

type fakeMembers struct {
	createErr  error
	lastSearch string
	summary    *membersdomain.Summary
}

func (f *fakeMembers) CreateMember(_ context.Context, input membersdomain.CreateMemberInput) (*membersdomain.Member, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &membersdomain.Member{ID: memberID, Email: input.Email, FirstName: input.FirstName, LastName: input.LastName}, nil
}

func (f *fakeMembers) ListMembers(_ context.Context, search string) ([]membersdomain.Member, error) {
	f.lastSearch = search
	return nil, nil
}

func (f *fakeMembers) GetMemberSummary(context.Context, string) (*membersdomain.Summary, error) {
	return f.summary, nil
}

type fakeGate struct {
	err error
}

func (f *fakeGate) CheckIn(_ context.Context, memberID string) (*checkinsdomain.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &checkinsdomain.CheckIn{ID: "c1", MemberID: memberID, Timestamp: fixedNow}, nil
}

type testEnv struct {
	router  http.Handler
	plans   *fakePlans
	ledger  *fakeLedger
	members *fakeMembers
	gate    *fakeGate
	pingErr error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.Discard()
	env := &testEnv{
		plans:   &fakePlans{},
		ledger:  &fakeLedger{},
		members: &fakeMembers{},
		gate:    &fakeGate{},
	}

	ping := commonhandler.PingFunc(func(context.Context) error { return env.pingErr })
	handlers := handler.New(
		commonhandler.New(ping, log),
		membershandler.New(env.members, log),
		membershipshandler.New(env.plans, env.ledger, log),
		checkinshandler.New(env.gate, log),
	)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "# metrics\n")
	})

	cfg := config.Config{CORSOrigins: []string{"http://localhost:5173"}}
	env.router = NewRouter(cfg, handlers, metrics)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	message, ok := body["error"].(string)
	require.True(t, ok, "expected error message string, got %s", rec.Body.String())
	require.NotEmpty(t, message)
	code, ok := body["code"].(string)
	require.True(t, ok, "expected error code, got %s", rec.Body.String())
	return code
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	env.pingErr = errors.New("connection refused")
	rec = env.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
}

func TestListPlansOnBothPaths(t *testing.T) {
	env := newTestEnv(t)
	desc := "Access to gym floor and basic equipment"
	env.plans.items = []plansdomain.Plan{{ID: planID, Name: "Basic", Description: &desc, PriceInCents: 2999}}

	for _, path := range []string{"/api/plans", "/api/memberships/plans"} {
		rec := env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Basic", items[0]["name"])
		assert.EqualValues(t, 2999, items[0]["priceInCents"])
		assert.Equal(t, desc, items[0]["description"])
	}
}

func TestListPlansEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/plans", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListPlansInternalError(t *testing.T) {
	env := newTestEnv(t)
	env.plans.err = errors.New("db down")

	rec := env.do(t, http.MethodGet, "/api/plans", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
}

func TestCreateMember(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/members", map[string]string{
		"email": "ana@example.com", "firstName": "Ana", "lastName": "Lima",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, memberID, body["id"])
	assert.Equal(t, "Ana", body["firstName"])
}

func TestCreateMemberValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []map[string]string{
		{"email": "not-an-email", "firstName": "Ana", "lastName": "Lima"},
		{"email": "Ana <ana@example.com>", "firstName": "Ana", "lastName": "Lima"},
		{"email": "ana@example.com", "firstName": " ", "lastName": "Lima"},
		{"email": "ana@example.com", "firstName": "Ana", "lastName": string(bytes.Repeat([]byte("x"), 101))},
	}
	for _, tc := range cases {
		rec := env.do(t, http.MethodPost, "/api/members", tc)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc)
		assert.Equal(t, "validation_failed", errorCode(t, rec))
	}

	rec := env.do(t, http.MethodPost, "/api/members", map[string]string{"email": "a@b.co", "unknown": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", errorCode(t, rec))
}

func TestCreateMemberEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	env.members.createErr = failure.ErrEmailExists

	rec := env.do(t, http.MethodPost, "/api/members", map[string]string{
		"email": "ana@example.com", "firstName": "Ana", "lastName": "Lima",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_exists", errorCode(t, rec))
}

func TestErrorBodyCarriesMessageAsString(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.assignErr = failure.ErrActiveMembershipExists

	rec := env.do(t, http.MethodPost, "/api/memberships", map[string]string{
		"memberId": memberID, "planId": planID, "startDate": "2024-05-01",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"member already has an active membership","code":"active_membership_exists"}`, rec.Body.String())
}

func TestListMembersPassesSearch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/members?search=ana", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.Equal(t, "ana", env.members.lastSearch)
}

func TestGetMember(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/members/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/members/"+memberID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "member_not_found", errorCode(t, rec))

	last := fixedNow.Add(-time.Hour)
	env.members.summary = &membersdomain.Summary{
		Member: membersdomain.Member{ID: memberID, Email: "ana@example.com", FirstName: "Ana", LastName: "Lima"},
		ActiveMembership: &membershipsdomain.Membership{
			ID: membershipID, MemberID: memberID, PlanID: planID, Status: membershipsdomain.StatusActive,
			Plan: plansdomain.Plan{ID: planID, Name: "Premium", PriceInCents: 5999},
		},
		LastCheckIn:            &last,
		CheckInCountLast30Days: 4,
	}

	rec = env.do(t, http.MethodGet, "/api/members/"+memberID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ana@example.com", body["email"])
	assert.EqualValues(t, 4, body["checkInCountLast30Days"])
	assert.NotNil(t, body["lastCheckIn"])

	active, ok := body["activeMembership"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ACTIVE", active["status"])
	assert.Nil(t, active["cancelledAt"])
	assert.Equal(t, "Premium", active["plan"].(map[string]interface{})["name"])
}

func TestAssignPlan(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/memberships", map[string]string{
		"memberId": memberID, "planId": planID, "startDate": "2024-05-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ACTIVE", decodeBody(t, rec)["status"])
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), env.ledger.lastAssign.StartDate)
}

func TestAssignPlanAcceptsTimestampDate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/memberships", map[string]string{
		"memberId": memberID, "planId": planID, "startDate": "2024-05-01T22:30:00-03:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), env.ledger.lastAssign.StartDate)
}

func TestAssignPlanFailures(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"member", failure.ErrMemberNotFound, http.StatusNotFound, "member_not_found"},
		{"plan", failure.ErrPlanNotFound, http.StatusNotFound, "plan_not_found"},
		{"conflict", failure.ErrActiveMembershipExists, http.StatusConflict, "active_membership_exists"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.ledger.assignErr = tc.err

			rec := env.do(t, http.MethodPost, "/api/memberships", map[string]string{
				"memberId": memberID, "planId": planID, "startDate": "2024-05-01",
			})
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, errorCode(t, rec))
		})
	}
}

func TestAssignPlanValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/memberships", map[string]string{
		"memberId": "nope", "planId": planID, "startDate": "2024-05-01",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/memberships", map[string]string{
		"memberId": memberID, "planId": planID, "startDate": "01/05/2024",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelMembership(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPatch, "/api/memberships/"+membershipID+"/cancel", map[string]string{"cancelledAt": "2024-05-31"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "CANCELLED", body["status"])
	assert.NotNil(t, body["cancelledAt"])
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), env.ledger.lastCancel)

	env.ledger.cancelErr = failure.ErrActiveMembershipNotFound
	rec = env.do(t, http.MethodPatch, "/api/memberships/"+membershipID+"/cancel", map[string]string{"cancelledAt": "2024-05-31"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "active_membership_not_found", errorCode(t, rec))

	rec = env.do(t, http.MethodPatch, "/api/memberships/"+membershipID+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckIn(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/check-ins", map[string]string{"memberId": memberID})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, memberID, decodeBody(t, rec)["memberId"])

	env.gate.err = failure.ErrNoActiveMembership
	rec = env.do(t, http.MethodPost, "/api/check-ins", map[string]string{"memberId": memberID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "no_active_membership", errorCode(t, rec))
}

func TestMetricsAndCORS(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodOptions, "/api/members", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight := httptest.NewRecorder()
	env.router.ServeHTTP(preflight, req)
	assert.Equal(t, "http://localhost:5173", preflight.Header().Get("Access-Control-Allow-Origin"))
}
