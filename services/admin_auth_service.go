package services

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to seeded and updated admin passwords
const MinPasswordLength = 8

// AdminAuthService handles admin password operations
type AdminAuthService struct {
	cost int
}

func NewAdminAuthService() *AdminAuthService {
	return &AdminAuthService{cost: bcrypt.DefaultCost}
}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}

var adminAuthService *AdminAuthService

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService()
	}
	return adminAuthService
}

func HashAdminPassword(password string) (string, error) {
	return GetAdminAuthService().HashPassword(password)
}

func VerifyAdminPassword(hash, password string) bool {
	return GetAdminAuthService().VerifyPassword(hash, password)
}

func ValidateAdminPassword(password string) bool {
	return GetAdminAuthService().ValidatePassword(password)
}
