package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

// UserService handles registration, sessions and user lookups. Revoked
// session tokens are kept in an in-memory blacklist until they expire.
type UserService struct {
	Store store.Store

	mu        sync.Mutex
	blackList map[string]bool
}

func NewUserService(s store.Store) *UserService {
	return &UserService{
		Store:     s,
		blackList: make(map[string]bool),
	}
}

// InitialsFromName builds initials from the first letters of up to two name
// tokens.
func InitialsFromName(name string) string {
	var initials strings.Builder
	for _, token := range strings.Fields(name) {
		for _, r := range token {
			initials.WriteRune(r)
			break
		}
		if initials.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(initials.String())
}

// Register creates a user with a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("Invalid email: a user with this email already exists")
	}

	if len(password) < 8 {
		return nil, fmt.Errorf("Invalid password: must be at least 8 characters long")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Initials:     InitialsFromName(name),
		PasswordHash: string(hashed),
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User %s registered", user.ID)
	return user, nil
}

// Login checks the credentials and issues a session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout blacklists the session token.
func (s *UserService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blackList[token] = true
}

// IsRevoked implements middleware.Revoker.
func (s *UserService) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blackList[token]
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Store.GetUser(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Store.ListUsers(ctx)
}

// ResolveMember returns the user matching a template team-member entry: by
// exact email first, then case-insensitive name, else a newly created user.
func (s *UserService) ResolveMember(ctx context.Context, member string) (*models.User, error) {
	member = strings.TrimSpace(member)
	if member == "" {
		return nil, fmt.Errorf("Invalid team member: empty name")
	}

	if user, err := s.Store.GetUserByEmail(ctx, member); err != nil {
		return nil, err
	} else if user != nil {
		return user, nil
	}

	if user, err := s.Store.FindUserByName(ctx, member); err != nil {
		return nil, err
	} else if user != nil {
		return user, nil
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     member,
		Initials: InitialsFromName(member),
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: USER_AUTO_CREATED, Description: Created user %s for template member %q", user.ID, member)
	return user, nil
}
