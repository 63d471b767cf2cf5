package app

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// ErrUserNotFound is returned when no user has the requested account.
var ErrUserNotFound = errors.New("user not found")

// User is a registered account.
type User struct {
	ID        string    `json:"id"`
	Account   string    `json:"account"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStore persists users in SQLite.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create stores a new user under a fresh id.
func (s *UserStore) Create(ctx context.Context, account, name, email string) (User, error) {
	u := User{
		ID:        uuid.NewString(),
		Account:   account,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, account, name, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Account, u.Name, u.Email, u.CreatedAt.Unix())
	if err != nil {
		return User{}, serr.Wrap(err, "account", account)
	}
	return u, nil
}

// FindByAccount returns the user with the given account.
func (s *UserStore) FindByAccount(ctx context.Context, account string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, account, name, email, created_at FROM users WHERE account = ?`, account)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, serr.Wrap(err, "account", account)
	}
	return u, nil
}

// List returns all users ordered by account.
func (s *UserStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account, name, email, created_at FROM users ORDER BY account`)
	if err != nil {
		return nil, serr.Wrap(err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, serr.Wrap(err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (User, error) {
	var (
		u       User
		created int64
	)
	if err := row.Scan(&u.ID, &u.Account, &u.Name, &u.Email, &created); err != nil {
		return User{}, err
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	return u, nil
}
