package services_test

import (
	"context"
	"testing"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	"github.com/alfahim/currency_display_app/internal/core/domain"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplaySettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReaderSvc struct {
	mock.Mock
}

func (m *MockCurrencyReaderSvc) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReaderSvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockSettingsRepository
	mockCurrencySvc *MockCurrencyReaderSvc
	service         portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.service = services.NewSettingsService(suite.mockRepo, suite.mockCurrencySvc, "SAR")
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestCurrentCurrency_Stored() {
	ctx := context.Background()
	stored := &domain.DisplaySettings{CurrentCurrency: "USD"}

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(stored, nil).Once()

	suite.Equal("USD", suite.service.CurrentCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestCurrentCurrency_CachesAfterFirstRead() {
	ctx := context.Background()
	stored := &domain.DisplaySettings{CurrentCurrency: "USD"}

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(stored, nil).Once()

	suite.Equal("USD", suite.service.CurrentCurrency(ctx))
	// Second call must be served from cache, not the repository.
	suite.Equal("USD", suite.service.CurrentCurrency(ctx))
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "GetDisplaySettings", 1)
}

func (suite *SettingsServiceTestSuite) TestCurrentCurrency_NothingStoredFallsBackToDefault() {
	ctx := context.Background()

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal("SAR", suite.service.CurrentCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestCurrentCurrency_RepoErrorFallsBackToDefault() {
	ctx := context.Background()

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(nil, assert.AnError).Once()

	suite.Equal("SAR", suite.service.CurrentCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetDisplaySettings_Stored() {
	ctx := context.Background()
	stored := &domain.DisplaySettings{CurrentCurrency: "EUR"}

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(stored, nil).Once()

	settings, err := suite.service.GetDisplaySettings(ctx)

	suite.Require().NoError(err)
	suite.Equal("EUR", settings.CurrentCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetDisplaySettings_NothingStoredReturnsDefault() {
	ctx := context.Background()

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetDisplaySettings(ctx)

	suite.Require().NoError(err)
	suite.Equal("SAR", settings.CurrentCurrency)
	suite.Empty(settings.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetDisplaySettings_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("GetDisplaySettings", ctx).Return(nil, assert.AnError).Once()

	settings, err := suite.service.GetDisplaySettings(ctx)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateCurrentCurrency_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	registered := &domain.Currency{CurrencyCode: "USD"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(registered, nil).Once()
	suite.mockRepo.On("SaveDisplaySettings", ctx, mock.MatchedBy(func(s domain.DisplaySettings) bool {
		return s.CurrentCurrency == "USD" && s.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	settings, err := suite.service.UpdateCurrentCurrency(ctx, "USD", updaterUserID)

	suite.Require().NoError(err)
	suite.Equal("USD", settings.CurrentCurrency)

	// The new selection is visible without another repository round trip.
	suite.Equal("USD", suite.service.CurrentCurrency(ctx))

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateCurrentCurrency_UnregisteredCurrency() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.UpdateCurrentCurrency(ctx, "ZZZ", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDisplaySettings", mock.Anything, mock.Anything)
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateCurrentCurrency_SaveError() {
	ctx := context.Background()
	registered := &domain.Currency{CurrencyCode: "USD"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(registered, nil).Once()
	suite.mockRepo.On("SaveDisplaySettings", ctx, mock.AnythingOfType("domain.DisplaySettings")).Return(assert.AnError).Once()

	settings, err := suite.service.UpdateCurrentCurrency(ctx, "USD", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
