package filestore

import (
	"context"
	"strings"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

const usersFile = "users"

// userRecord is the on-disk user shape. The model hides PasswordHash from
// API JSON, so the file codec carries it in an explicit field, the way the
// bson tag does for the mongo driver.
type userRecord struct {
	models.User
	PasswordHash string `json:"passwordHash,omitempty"`
}

func toRecord(u models.User) userRecord {
	return userRecord{User: u, PasswordHash: u.PasswordHash}
}

func (r userRecord) toModel() models.User {
	u := r.User
	u.PasswordHash = r.PasswordHash
	return u
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := load[userRecord](s, usersFile)
	if err != nil {
		return err
	}
	users = append(users, toRecord(*u))
	return save(s, usersFile, users)
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool { return u.ID == id })
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool { return u.Email != "" && u.Email == email })
}

func (s *Store) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool { return strings.EqualFold(u.Name, name) })
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load[userRecord](s, usersFile)
	if err != nil {
		return nil, err
	}
	var users []models.User
	for _, r := range records {
		users = append(users, r.toModel())
	}
	return users, nil
}

func (s *Store) findUser(match func(models.User) bool) (*models.User, error) {
	records, err := load[userRecord](s, usersFile)
	if err != nil {
		return nil, err
	}
	for i := range records {
		u := records[i].toModel()
		if match(u) {
			return &u, nil
		}
	}
	return nil, nil
}
