package directory

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"idcard/models"
)

var (
	// ErrInvalidCredentials is deliberately silent about which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("employee not found")
	ErrNoSource           = errors.New("no employee source configured")
)

// Fetcher loads the full, current employee table.
type Fetcher interface {
	FetchEmployees(ctx context.Context) ([]models.Employee, error)
}

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Directory answers employee lookups from the remote source, degrading to
// the fallback table whenever the remote source fails. Remote failures are
// logged and never returned to callers.
type Directory struct {
	remote   Fetcher
	fallback func() []models.Employee
	logger   *zap.Logger
	metrics  *Metrics
}

type Option func(*Directory)

// WithFallback replaces DemoEmployees as the fallback table.
func WithFallback(fn func() []models.Employee) Option {
	return func(d *Directory) { d.fallback = fn }
}

func WithMetrics(m *Metrics) Option {
	return func(d *Directory) { d.metrics = m }
}

// New returns a directory over remote. A nil remote always falls back.
func New(remote Fetcher, logger *zap.Logger, opts ...Option) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Directory{
		remote:   remote,
		fallback: DemoEmployees,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Directory) tryRemote(ctx context.Context) ([]models.Employee, error) {
	if d.remote == nil {
		return nil, ErrNoSource
	}
	return d.remote.FetchEmployees(ctx)
}

// Employees resolves the employee table: remote first, fallback on any error.
func (d *Directory) Employees(ctx context.Context) ([]models.Employee, Source) {
	employees, err := d.tryRemote(ctx)
	if err == nil {
		d.metrics.observeFetch(SourceRemote)
		return employees, SourceRemote
	}

	d.logger.Warn("employee source unavailable, using demo employees", zap.Error(err))
	d.metrics.observeFetch(SourceFallback)
	return d.fallback(), SourceFallback
}

// Authenticate returns the profile of the first employee whose username
// matches case-insensitively and whose password matches exactly.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (models.Profile, error) {
	employees, source := d.Employees(ctx)

	emp, ok := Match(employees, username, password)
	d.metrics.observeLogin(ok)
	if !ok {
		d.logger.Info("login rejected", zap.String("username", username), zap.String("source", string(source)))
		return models.Profile{}, ErrInvalidCredentials
	}

	d.logger.Info("login accepted", zap.String("username", emp.Username), zap.String("source", string(source)))
	return emp.Profile, nil
}

// Find returns the profile for username, compared case-insensitively.
func (d *Directory) Find(ctx context.Context, username string) (models.Profile, error) {
	employees, _ := d.Employees(ctx)
	for _, emp := range employees {
		if strings.EqualFold(emp.Username, username) {
			return emp.Profile, nil
		}
	}
	return models.Profile{}, ErrNotFound
}

// List returns every profile in source order.
func (d *Directory) List(ctx context.Context) ([]models.Profile, error) {
	employees, _ := d.Employees(ctx)
	profiles := make([]models.Profile, 0, len(employees))
	for _, emp := range employees {
		profiles = append(profiles, emp.Profile)
	}
	return profiles, nil
}

// Match scans employees in order and returns the first credential match.
// Duplicate usernames resolve to the earliest row.
func Match(employees []models.Employee, username, password string) (models.Employee, bool) {
	for _, emp := range employees {
		if strings.EqualFold(emp.Username, username) && emp.Password == password {
			return emp, true
		}
	}
	return models.Employee{}, false
}
