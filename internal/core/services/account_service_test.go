package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string, ownerID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ArchiveAccount(ctx context.Context, accountID string, ownerID string, now time.Time) error {
	args := m.Called(ctx, accountID, ownerID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvc
	ownerID  string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	balance := decimal.NewFromInt(150)
	req := dto.CreateAccountRequest{
		Name:            "Test Savings",
		AccountType:     "bank",
		CurrencyCode:    "USD",
		StartingBalance: &balance,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(suite.ownerID, createdAccount.OwnerID)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(req.AccountType, createdAccount.AccountType)
	suite.Equal(req.CurrencyCode, createdAccount.CurrencyCode)
	suite.True(createdAccount.StartingBalance.Equal(balance))
	suite.False(createdAccount.IsArchived)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)
	suite.WithinDuration(time.Now(), createdAccount.UpdatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "No Balance"}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.StartingBalance.IsZero()
	})).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.True(createdAccount.StartingBalance.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Test Error", CurrencyCode: "EUR"}

	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedAccount := &domain.Account{
		AccountID:    testID,
		OwnerID:      suite.ownerID,
		Name:         "Found Account",
		AccountType:  "cash",
		CurrencyCode: "CAD",
	}

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(expectedAccount, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.ownerID, testID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(expectedAccount, account)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	// The repository reports rows belonging to another owner the same way.
	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.ownerID, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expectedAccounts := []domain.Account{
		{AccountID: uuid.NewString(), OwnerID: suite.ownerID, Name: "List Acc 1"},
		{AccountID: uuid.NewString(), OwnerID: suite.ownerID, Name: "List Acc 2"},
	}

	suite.mockRepo.On("ListAccounts", ctx, suite.ownerID, false).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.ownerID, false)

	suite.Require().NoError(err)
	suite.Equal(expectedAccounts, accounts)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Empty() {
	ctx := context.Background()
	var expectedAccounts []domain.Account // nil from the repository

	suite.mockRepo.On("ListAccounts", ctx, suite.ownerID, true).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.ownerID, true)

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.NotNil(accounts) // Should be an empty slice, not nil

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListAccounts", ctx, suite.ownerID, false).Return(nil, expectedErr).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.ownerID, false)

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success_NameAndType() {
	ctx := context.Background()
	testID := uuid.NewString()
	initialTime := time.Now().Add(-time.Hour)

	originalAccount := &domain.Account{
		AccountID:    testID,
		OwnerID:      suite.ownerID,
		Name:         "Original Name",
		AccountType:  "cash",
		CurrencyCode: "USD",
		AuditFields: domain.AuditFields{
			CreatedAt: initialTime,
			UpdatedAt: initialTime,
		},
	}

	newName := "Updated Name"
	newType := "bank"
	req := dto.UpdateAccountRequest{
		Name:        &newName,
		AccountType: &newType,
	}

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(originalAccount, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == testID &&
			acc.Name == newName &&
			acc.AccountType == newType &&
			acc.CurrencyCode == "USD" && // untouched field retained
			acc.UpdatedAt.After(initialTime)
	})).Return(nil).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, testID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updatedAccount)
	suite.Equal(newName, updatedAccount.Name)
	suite.Equal(newType, updatedAccount.AccountType)
	suite.Equal("USD", updatedAccount.CurrencyCode)
	suite.True(updatedAccount.UpdatedAt.After(initialTime))
	suite.Equal(initialTime, updatedAccount.CreatedAt)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_EmptyPatchStillTouchesRow() {
	ctx := context.Background()
	testID := uuid.NewString()
	initialTime := time.Now().Add(-time.Hour)

	originalAccount := &domain.Account{
		AccountID: testID,
		OwnerID:   suite.ownerID,
		Name:      "No Change",
		AuditFields: domain.AuditFields{
			CreatedAt: initialTime,
			UpdatedAt: initialTime,
		},
	}

	req := dto.UpdateAccountRequest{} // no pointers set

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(originalAccount, nil).Once()

	// Even an empty patch refreshes UpdatedAt and writes the row back.
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == testID &&
			acc.Name == "No Change" &&
			acc.UpdatedAt.After(initialTime)
	})).Return(nil).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, testID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updatedAccount)
	suite.Equal("No Change", updatedAccount.Name)
	suite.True(updatedAccount.UpdatedAt.After(initialTime))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()
	newName := "Doesn't matter"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, testID, req)

	suite.Require().Error(err)
	suite.Nil(updatedAccount)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_UpdateError() {
	ctx := context.Background()
	testID := uuid.NewString()

	originalAccount := &domain.Account{
		AccountID: testID,
		OwnerID:   suite.ownerID,
		Name:      "Update Fail",
	}

	newName := "Will Fail"
	req := dto.UpdateAccountRequest{Name: &newName}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(originalAccount, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, testID, req)

	suite.Require().Error(err)
	suite.Nil(updatedAccount)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestArchiveAccount_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{AccountID: testID, OwnerID: suite.ownerID, Name: "To Archive"}

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(existing, nil).Once()
	suite.mockRepo.On("ArchiveAccount", ctx, testID, suite.ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ArchiveAccount(ctx, suite.ownerID, testID)

	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestArchiveAccount_AlreadyArchived() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{AccountID: testID, OwnerID: suite.ownerID, Name: "Archived", IsArchived: true}

	// Archiving an already archived account succeeds without error.
	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(existing, nil).Once()
	suite.mockRepo.On("ArchiveAccount", ctx, testID, suite.ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ArchiveAccount(ctx, suite.ownerID, testID)

	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestArchiveAccount_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ArchiveAccount(ctx, suite.ownerID, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "ArchiveAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
