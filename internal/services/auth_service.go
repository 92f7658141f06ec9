package services

import (
	"github.com/avelory/studyhub/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdateProfile(userID uint, username string, email string) error
	UpdateImageFile(userID uint, imageFile string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) UsernameTaken(username string) (bool, error) {
	return service.users.ExistsByUsername(username)
}

func (service *AuthService) EmailTaken(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) UpdateProfile(userID uint, username string, email string) error {
	return service.users.UpdateProfile(userID, username, email)
}

func (service *AuthService) UpdateImageFile(userID uint, imageFile string) error {
	return service.users.UpdateImageFile(userID, imageFile)
}
