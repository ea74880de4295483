// Package repo provides postgres access for users
package repo

import (
	"context"
	"time"

	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store"
)

// Repo defines the repository contract for users
type Repo interface {
	Insert(ctx context.Context, u RowUser) error
	AddRole(ctx context.Context, userID, role string) error
	ByID(ctx context.Context, id string) (RowUser, error)
	ByEmail(ctx context.Context, email string) (RowUser, error)
	List(ctx context.Context, limit, offset int) ([]RowUser, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id, name string, phone *string, birth *time.Time) error
	Delete(ctx context.Context, id string) error
}

// RowUser is a users row joined with its roles
type RowUser struct {
	ID           string
	Name         string
	Email        string
	Phone        *string
	BirthDate    *time.Time
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const selectUser = `
select u.id::text, u.name, u.email, u.phone, u.birth_date, u.password_hash,
coalesce((select array_agg(r.role order by r.role) from user_roles r where r.user_id = u.id), '{}'::text[]),
u.created_at
from users u
`

func scanUser(row store.Row) (RowUser, error) {
	var u RowUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.BirthDate, &u.PasswordHash, &u.Roles, &u.CreatedAt)
	return u, err
}

func (r *queries) Insert(ctx context.Context, u RowUser) error {
	_, err := r.q.Exec(ctx, `
insert into users (id, name, email, phone, birth_date, password_hash)
values ($1, $2, $3, $4, $5, $6)
`, u.ID, u.Name, u.Email, u.Phone, u.BirthDate, u.PasswordHash)
	return perr.FromPostgresWithField(err, "insert user")
}

func (r *queries) AddRole(ctx context.Context, userID, role string) error {
	_, err := r.q.Exec(ctx, `insert into user_roles (user_id, role) values ($1, $2) on conflict do nothing`, userID, role)
	return perr.FromPostgres(err, "add role")
}

func (r *queries) ByID(ctx context.Context, id string) (RowUser, error) {
	u, err := store.One(ctx, r.q, scanUser, selectUser+`where u.id = $1`, id)
	return u, store.NotFound(err, "user")
}

func (r *queries) ByEmail(ctx context.Context, email string) (RowUser, error) {
	u, err := store.One(ctx, r.q, scanUser, selectUser+`where u.email = $1`, email)
	return u, store.NotFound(err, "user")
}

func (r *queries) List(ctx context.Context, limit, offset int) ([]RowUser, error) {
	return store.Many(ctx, r.q, scanUser, selectUser+`order by u.created_at, u.id limit $1 offset $2`, limit, offset)
}

func (r *queries) Count(ctx context.Context) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*)::int from users`)
}

func (r *queries) Update(ctx context.Context, id, name string, phone *string, birth *time.Time) error {
	err := store.ExecOne(ctx, r.q, `
update users set name = $2, phone = $3, birth_date = $4, updated_at = now()
where id = $1
`, id, name, phone, birth)
	return store.NotFound(err, "user")
}

func (r *queries) Delete(ctx context.Context, id string) error {
	err := store.ExecOne(ctx, r.q, `delete from users where id = $1`, id)
	if perr.IsStillReferenced(err) {
		return perr.Wrap(err, perr.ErrorCodeConflict, "user has orders and cannot be deleted")
	}
	return store.NotFound(err, "user")
}
