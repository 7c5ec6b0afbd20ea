package auth

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrUnknownUser   = errors.New("unknown username")
	ErrWrongPassword = errors.New("wrong password")
	ErrDuplicateUser = errors.New("username already exists")
	ErrInvalidRole   = errors.New("invalid role")
)

// Account is one login identity. Usernames are case-sensitive.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Registry holds the user accounts for the lifetime of the process. Accounts
// are never persisted; a restart resets the registry to its bootstrap state.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]Account)}
}

// Bootstrap installs an account without the password strength gate. Used for
// the seed admin only.
func (r *Registry) Bootstrap(username, password, role string) error {
	if !ValidRole(role) {
		return ErrInvalidRole
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[username] = Account{Username: username, PasswordHash: hash, Role: role}
	return nil
}

// Add creates a new account. The password must pass the strength gate and
// the username must be free.
func (r *Registry) Add(username, password, role string) error {
	if !ValidRole(role) {
		return ErrInvalidRole
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[username]; exists {
		return ErrDuplicateUser
	}
	r.accounts[username] = Account{Username: username, PasswordHash: hash, Role: role}
	return nil
}

// ResetPassword replaces the password of an existing account.
func (r *Registry) ResetPassword(username, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	account, exists := r.accounts[username]
	if !exists {
		return ErrUnknownUser
	}
	account.PasswordHash = hash
	r.accounts[username] = account
	return nil
}

// Authenticate verifies the credentials. Unknown usernames and wrong
// passwords stay distinguishable here; the transport collapses both into one
// message before it reaches a caller.
func (r *Registry) Authenticate(username, password string) (Account, error) {
	r.mu.RLock()
	account, exists := r.accounts[username]
	r.mu.RUnlock()
	if !exists {
		return Account{}, ErrUnknownUser
	}
	if err := CheckPassword(account.PasswordHash, password); err != nil {
		return Account{}, ErrWrongPassword
	}
	return account, nil
}

// List returns every account sorted by username.
func (r *Registry) List() []Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

// Count returns the number of registered accounts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
