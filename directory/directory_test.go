package directory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"idcard/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	employees []models.Employee
	err       error
	calls     int
}

func (f *fakeFetcher) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

func employee(username, password string) models.Employee {
	return models.Employee{Profile: models.Profile{Username: username, EmployeeNo: "NO-" + username}, Password: password}
}

func TestDemoEmployees(t *testing.T) {
	demo := DemoEmployees()
	require.Len(t, demo, 2)
	assert.Equal(t, "john.doe", demo[0].Username)
	assert.Equal(t, "jane.smith", demo[1].Username)

	demo[0].Username = "mutated"
	assert.Equal(t, "john.doe", DemoEmployees()[0].Username)

	assert.Equal(t, []models.LoginInput{
		{Username: "john.doe", Password: "demo123"},
		{Username: "jane.smith", Password: "demo456"},
	}, DemoCredentials())
}

func TestEmployeesPrefersRemote(t *testing.T) {
	remote := &fakeFetcher{employees: []models.Employee{employee("remote.user", "pw")}}
	d := New(remote, nil)

	employees, source := d.Employees(context.Background())
	assert.Equal(t, SourceRemote, source)
	require.Len(t, employees, 1)
	assert.Equal(t, "remote.user", employees[0].Username)
}

func TestEmployeesFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	remote := &fakeFetcher{err: errors.New("boom")}
	d := New(remote, zap.New(core))

	employees, source := d.Employees(context.Background())
	assert.Equal(t, SourceFallback, source)
	assert.Len(t, employees, 2)
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
}

func TestEmployeesWithoutRemote(t *testing.T) {
	employees, source := New(nil, nil).Employees(context.Background())
	assert.Equal(t, SourceFallback, source)
	assert.Len(t, employees, 2)
}

func TestEmployeesRefetchesEveryCall(t *testing.T) {
	remote := &fakeFetcher{employees: []models.Employee{employee("a", "b")}}
	d := New(remote, nil)

	d.Employees(context.Background())
	_, _ = d.Find(context.Background(), "a")
	_, _ = d.Authenticate(context.Background(), "a", "b")
	assert.Equal(t, 3, remote.calls)
}

func TestAuthenticateViaFallback(t *testing.T) {
	d := New(&fakeFetcher{err: errors.New("not configured")}, nil)

	profile, err := d.Authenticate(context.Background(), "john.doe", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", profile.EmployeeNo)

	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "demo123")
}

func TestAuthenticateCaseRules(t *testing.T) {
	d := New(nil, nil)
	ctx := context.Background()

	_, err := d.Authenticate(ctx, "john.doe", "demo123")
	require.NoError(t, err)

	_, err = d.Authenticate(ctx, "John.Doe", "demo123")
	require.NoError(t, err)

	_, err = d.Authenticate(ctx, "JANE.SMITH", "demo456")
	require.NoError(t, err)

	_, err = d.Authenticate(ctx, "john.doe", "DEMO123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.Authenticate(ctx, "john.doe", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.Authenticate(ctx, "nobody", "demo123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRemoteDoesNotFallBackOnMismatch(t *testing.T) {
	d := New(&fakeFetcher{employees: []models.Employee{employee("remote.user", "pw")}}, nil)

	_, err := d.Authenticate(context.Background(), "john.doe", "demo123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	profile, err := d.Authenticate(context.Background(), "REMOTE.user", "pw")
	require.NoError(t, err)
	assert.Equal(t, "remote.user", profile.Username)
}

func TestMatchFirstRowWins(t *testing.T) {
	first := employee("dup", "same")
	first.Office = "first"
	second := employee("DUP", "same")
	second.Office = "second"

	got, ok := Match([]models.Employee{first, second}, "Dup", "same")
	require.True(t, ok)
	assert.Equal(t, "first", got.Office)

	_, ok = Match(nil, "dup", "same")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	d := New(nil, nil)

	profile, err := d.Find(context.Background(), "JANE.smith")
	require.NoError(t, err)
	assert.Equal(t, "EMP002", profile.EmployeeNo)

	_, err = d.Find(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	remote := &fakeFetcher{employees: []models.Employee{employee("b", "1"), employee("a", "2")}}

	profiles, err := New(remote, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "b", profiles[0].Username)
	assert.Equal(t, "a", profiles[1].Username)
}

func TestWithFallback(t *testing.T) {
	custom := func() []models.Employee { return []models.Employee{employee("only", "pw")} }
	d := New(nil, nil, WithFallback(custom))

	profiles, err := d.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "only", profiles[0].Username)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	remote := &fakeFetcher{err: errors.New("down")}
	d := New(remote, nil, WithMetrics(metrics))
	ctx := context.Background()

	_, _ = d.Authenticate(ctx, "john.doe", "demo123")
	_, _ = d.Authenticate(ctx, "john.doe", "nope")
	remote.err = nil
	remote.employees = []models.Employee{employee("x", "y")}
	_, _ = d.List(ctx)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.fetches.WithLabelValues(string(SourceFallback))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.fetches.WithLabelValues(string(SourceRemote))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.logins.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.logins.WithLabelValues("failure")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.observeFetch(SourceRemote)
	m.observeLogin(true)
}
