// Package university provides a fixture-backed directory used to verify
// university account credentials and look up the role and scopes granted
// to an external user.
package university

import (
	"encoding/json"
	"os"
	"sync"

	"unihub/internal/pkg/errs"
	"unihub/internal/pkg/password"
)

// Record is a single directory entry keyed by login.
type Record struct {
	Login        string   `json:"login"`
	PasswordHash string   `json:"password_hash"`
	UserID       string   `json:"user_id"`
	Role         string   `json:"role"`
	Scopes       []string `json:"scopes"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
}

// Account is what a successful credential check yields.
type Account struct {
	UserID   string
	Role     string
	Scopes   []string
	FullName string
	Email    string
}

type Directory struct {
	mu      sync.RWMutex
	records map[string]Record
	path    string
}

// NewDirectory loads the fixture file at path. An empty path yields an
// empty directory, in which case every authentication attempt reports
// the directory as unavailable.
func NewDirectory(path string) (*Directory, error) {
	d := &Directory{path: path, records: map[string]Record{}}
	if path == "" {
		return d, nil
	}
	if err := d.reload(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Directory) reload() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return errs.Wrap(err, "failed to read university directory fixtures")
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return errs.Wrap(err, "failed to decode university directory fixtures")
	}

	byLogin := make(map[string]Record, len(records))
	for _, r := range records {
		byLogin[r.Login] = r
	}

	d.mu.Lock()
	d.records = byLogin
	d.mu.Unlock()
	return nil
}

// Authenticate checks login and plaintext password against the directory.
// It returns ErrAuthUnavailable when no fixtures are loaded and
// ErrInvalidCredentials when the login is unknown or the password does
// not match.
func (d *Directory) Authenticate(login, plaintext string) (Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.records) == 0 {
		return Account{}, errs.Mark(errs.New("university directory has no records"), errs.ErrAuthUnavailable)
	}

	rec, ok := d.records[login]
	if !ok {
		return Account{}, errs.Mark(errs.New("unknown login"), errs.ErrInvalidCredentials)
	}
	if err := password.ComparePassword(rec.PasswordHash, plaintext); err != nil {
		return Account{}, errs.Mark(errs.New("password mismatch"), errs.ErrInvalidCredentials)
	}

	return Account{
		UserID:   rec.UserID,
		Role:     rec.Role,
		Scopes:   append([]string(nil), rec.Scopes...),
		FullName: rec.FullName,
		Email:    rec.Email,
	}, nil
}
