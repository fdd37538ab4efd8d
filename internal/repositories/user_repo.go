package repositories

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
)

// UserRecord pairs the public user with its credential hash.
type UserRecord struct {
	User         models.User
	PasswordHash string
}

// UserRepo is the in-memory account store behind the stub credential check.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]UserRecord
	nextID  int
}

func NewUserRepo(seed []UserRecord) *UserRepo {
	r := &UserRepo{byEmail: map[string]UserRecord{}, nextID: 1}
	for _, rec := range seed {
		r.byEmail[strings.ToLower(rec.User.Email)] = rec
		r.nextID++
	}
	return r
}

func (r *UserRepo) FindByEmail(email string) (UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return UserRecord{}, domain.NotFoundError{Resource: "user"}
	}
	return rec, nil
}

func (r *UserRepo) Create(user models.User, passwordHash string) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(user.Email))
	if key == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[key]; exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	}
	if user.ID == "" {
		user.ID = "u" + strconv.Itoa(r.nextID)
	}
	r.nextID++
	r.byEmail[key] = UserRecord{User: user, PasswordHash: passwordHash}
	return user, nil
}
