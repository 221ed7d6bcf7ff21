package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	service := New(userRepo)
	return service, userRepo
}

func TestGetBalance(t *testing.T) {
	service, userRepo := NewMock(t)
	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: "u1",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 12, BonusCoins: 3}, nil)
			},
			expectedUser: &domain.User{ID: "u1", Balance: 12, BonusCoins: 3},
		},
		{
			name:   "Unknown user",
			userID: "ghost",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Error retrieving balance",
			userID: "u1",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestGrant(t *testing.T) {
	service, userRepo := NewMock(t)
	tests := []struct {
		name          string
		balance       float64
		bonusCoins    float64
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:    "Grant regular coins",
			balance: 10,
			prepareMock: func() {
				userRepo.EXPECT().AddCoins(gomock.Any(), "u1", 10.0, 0.0).Return(&domain.User{ID: "u1", Balance: 15}, nil)
			},
			expectedUser: &domain.User{ID: "u1", Balance: 15},
		},
		{
			name:       "Grant bonus coins",
			bonusCoins: 5,
			prepareMock: func() {
				userRepo.EXPECT().AddCoins(gomock.Any(), "u1", 0.0, 5.0).Return(&domain.User{ID: "u1", BonusCoins: 5}, nil)
			},
			expectedUser: &domain.User{ID: "u1", BonusCoins: 5},
		},
		{
			name:          "Zero grant",
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative grant",
			balance:       -1,
			bonusCoins:    5,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:    "Unknown user",
			balance: 1,
			prepareMock: func() {
				userRepo.EXPECT().AddCoins(gomock.Any(), "u1", 1.0, 0.0).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:    "Repository error",
			balance: 1,
			prepareMock: func() {
				userRepo.EXPECT().AddCoins(gomock.Any(), "u1", 1.0, 0.0).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Grant(context.Background(), "u1", tt.balance, tt.bonusCoins)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}
