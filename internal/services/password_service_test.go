package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(bcrypt.MinCost, 0)
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "lotusflower42"},
		{name: "empty", password: "", wantErr: ErrPasswordEmpty},
		{name: "too short", password: "abc123", wantErr: ErrPasswordTooShort},
		{name: "too long", password: strings.Repeat("a1", 40), wantErr: ErrPasswordTooLong},
		{name: "no letter", password: "1234567890", wantErr: ErrPasswordNoLetter},
		{name: "no number", password: "onlyletters", wantErr: ErrPasswordNoNumber},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.service.ValidatePassword(tt.password)
			if tt.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_CustomMinimum() {
	service := NewPasswordService(bcrypt.MinCost, 16)

	s.ErrorIs(service.ValidatePassword("lotusflower42"), ErrPasswordTooShort)
	s.NoError(service.ValidatePassword("lotusflower42abcd"))
}

func (s *PasswordServiceTestSuite) TestHashPassword() {
	hash, err := s.service.HashPassword("lotusflower42")
	s.Require().NoError(err)
	s.NotEqual("lotusflower42", hash)
	s.True(strings.HasPrefix(hash, "$2a$"))

	cost, err := bcrypt.Cost([]byte(hash))
	s.Require().NoError(err)
	s.Equal(bcrypt.MinCost, cost)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Invalid() {
	hash, err := s.service.HashPassword("short")
	s.ErrorIs(err, ErrPasswordTooShort)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Salted() {
	first, err := s.service.HashPassword("lotusflower42")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("lotusflower42")
	s.Require().NoError(err)
	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	hash, err := s.service.HashPassword("lotusflower42")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("lotusflower42", hash))
	s.False(s.service.ComparePassword("lotusflower43", hash))
	s.False(s.service.ComparePassword("lotusflower42", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_InvalidCostFallsBack() {
	service := NewPasswordService(99, 0).(*PasswordService)
	s.Equal(DefaultBCryptCost, service.cost)
	s.Equal(DefaultMinPasswordLength, service.minLength)
}
