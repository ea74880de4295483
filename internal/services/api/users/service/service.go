// Package service contains users workflows
package service

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/password"
	"storefront/internal/modkit/httpkit"
	"storefront/internal/modkit/repokit"
	"storefront/internal/platform/auth"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/logger"
	str "storefront/internal/platform/strings"
	ptime "storefront/internal/platform/time"
	"storefront/internal/services/api/users/domain"
	"storefront/internal/services/api/users/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for users
type Service interface {
	domain.ServicePort
	domain.Authenticator
	domain.Provisioner
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	hash    func(string) (string, error)
	compare func(hash, pw string) error
	newID   func() string
}

// New creates a new users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		hash:    password.Hash,
		compare: password.Compare,
		newID:   func() string { return uuid.NewString() },
	}
}

// Register creates a CLIENT account
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	return s.Create(ctx, in, auth.RoleClient)
}

// Create stores a new account with the given roles; duplicate emails are a conflict on field email
func (s *Svc) Create(ctx context.Context, in domain.RegisterInput, roles ...string) (domain.User, error) {
	if len(roles) == 0 {
		roles = []string{auth.RoleClient}
	}
	if v := password.Check(in.Password); len(v) > 0 {
		return domain.User{}, perr.WithField(perr.Validationf("password must contain %s", password.Describe(v)), "password")
	}
	h, err := s.hash(in.Password)
	if err != nil {
		return domain.User{}, perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}

	row := repo.RowUser{
		ID:           s.newID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		Phone:        str.Ptr(strings.TrimSpace(in.Phone)),
		BirthDate:    ptime.Ptr(in.BirthDate.Time),
		PasswordHash: h,
	}
	err = repokit.WithTxRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.Insert(ctx, row); err != nil {
			return err
		}
		for _, role := range roles {
			if err := r.AddRole(ctx, row.ID, role); err != nil {
				return err
			}
		}
		created, err := r.ByID(ctx, row.ID)
		row = created
		return err
	})
	if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		return domain.User{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeDuplicateKey, "email already registered"), "email")
	}
	if err != nil {
		return domain.User{}, err
	}
	logger.C(ctx).Info().Str("user_id", row.ID).Strs("roles", row.Roles).Msg("user created")
	return toUser(row), nil
}

// Get returns a user to an admin or to the user themself
func (s *Svc) Get(ctx context.Context, caller httpkit.Principal, id string) (domain.User, error) {
	if err := caller.SelfOrAdmin(id); err != nil {
		return domain.User{}, err
	}
	row, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return toUser(row), nil
}

// List pages through all users
func (s *Svc) List(ctx context.Context, page, size int) (httpkit.Page[domain.User], error) {
	rows, err := s.Repo.List(ctx, size, max(page-1, 0)*size)
	if err != nil {
		return httpkit.Page[domain.User]{}, err
	}
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return httpkit.Page[domain.User]{}, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, toUser(r))
	}
	return httpkit.NewPage(out, page, size, total), nil
}

// Update replaces the profile fields of a user, for admins or the user themself
func (s *Svc) Update(ctx context.Context, caller httpkit.Principal, id string, in domain.UpdateInput) (domain.User, error) {
	if err := caller.SelfOrAdmin(id); err != nil {
		return domain.User{}, err
	}
	var out repo.RowUser
	err := repokit.WithTxRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.Update(ctx, id, strings.TrimSpace(in.Name), str.Ptr(strings.TrimSpace(in.Phone)), ptime.Ptr(in.BirthDate.Time)); err != nil {
			return err
		}
		var err error
		out, err = r.ByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return toUser(out), nil
}

// Delete removes a user; users with orders are kept and the call is a conflict
func (s *Svc) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.C(ctx).Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// Authenticate returns the user owning email when password matches
// unknown emails and wrong passwords are the same 401
func (s *Svc) Authenticate(ctx context.Context, email, pw string) (domain.User, error) {
	bad := perr.Unauthorizedf("bad credentials")
	row, err := s.Repo.ByEmail(ctx, normalizeEmail(email))
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		// unknown emails pay for a bcrypt compare like wrong passwords do
		_ = s.compare(password.DecoyHash(), pw)
		return domain.User{}, bad
	}
	if err != nil {
		return domain.User{}, err
	}
	if err := s.compare(row.PasswordHash, pw); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return domain.User{}, bad
		}
		return domain.User{}, perr.Wrap(err, perr.ErrorCodeUnknown, "compare password")
	}
	return toUser(row), nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func toUser(r repo.RowUser) domain.User {
	u := domain.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     str.Deref(r.Phone),
		Roles:     r.Roles,
		CreatedAt: r.CreatedAt,
	}
	if u.Roles == nil {
		u.Roles = []string{}
	}
	if r.BirthDate != nil {
		d := flexdate.On(*r.BirthDate)
		u.BirthDate = &d
	}
	return u
}
