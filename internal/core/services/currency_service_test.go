package services_test

import (
	"context"
	"testing"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	"github.com/alfahim/currency_display_app/internal/core/domain"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/core/services"
	"github.com/alfahim/currency_display_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "TST",
		Symbol:       "T",
		Name:         "Test Currency",
		Decimals:     2,
		Position:     "after",
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "TST").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == req.CurrencyCode && c.Symbol == req.Symbol &&
			c.Decimals == req.Decimals && c.Position == domain.SymbolAfter &&
			c.CreatedBy == creatorUserID && c.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(req.CurrencyCode, currency.CurrencyCode)
	suite.Equal(req.Symbol, currency.Symbol)
	suite.Equal(creatorUserID, currency.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "SAR",
		Symbol:       "﷼",
		Name:         "Saudi Riyal",
		Decimals:     2,
		Position:     "after",
	}
	existing := &domain.Currency{CurrencyCode: "SAR"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "SAR").Return(existing, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "ERR",
		Symbol:       "E",
		Name:         "Error Currency",
		Decimals:     2,
		Position:     "before",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCurrencyByCode", ctx, "ERR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(expectedErr).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Currency{
		CurrencyCode: "TST",
		Symbol:       "T",
		Name:         "Test Currency",
		Decimals:     2,
		Position:     domain.SymbolAfter,
	}
	newSymbol := "TT"
	newDecimals := 3
	req := dto.UpdateCurrencyRequest{Symbol: &newSymbol, Decimals: &newDecimals}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "TST").Return(existing, nil).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Symbol == "TT" && c.Decimals == 3 && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "TST", req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal("TT", currency.Symbol)
	suite.Equal(3, currency.Decimals)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "NTF", dto.UpdateCurrencyRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	code := "TST"
	expectedCurrency := &domain.Currency{CurrencyCode: code}

	suite.mockRepo.On("FindCurrencyByCode", ctx, code).Return(expectedCurrency, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, code)

	suite.Require().NoError(err)
	suite.Equal(expectedCurrency, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "NTF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestResolveConfig_Registered() {
	ctx := context.Background()
	registered := &domain.Currency{
		CurrencyCode: "SAR",
		Symbol:       "﷼",
		Decimals:     2,
		Position:     domain.SymbolAfter,
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "SAR").Return(registered, nil).Once()

	config := suite.service.ResolveConfig(ctx, "SAR")

	suite.Equal(*registered, config)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestResolveConfig_UnknownFallsBackToDefault() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	config := suite.service.ResolveConfig(ctx, "ZZZ")

	suite.Equal("ZZZ", config.CurrencyCode)
	suite.Equal("ZZZ", config.Symbol)
	suite.Equal(2, config.Decimals)
	suite.Equal(domain.SymbolAfter, config.Position)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestResolveConfig_RepoErrorFallsBackToDefault() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "SAR").Return(nil, assert.AnError).Once()

	config := suite.service.ResolveConfig(ctx, "SAR")

	suite.Equal("SAR", config.CurrencyCode)
	suite.Equal(domain.SymbolAfter, config.Position)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
