package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
	"github.com/quickquid/quickquid_backend/internal/core/services"
	"github.com/quickquid/quickquid_backend/internal/dto"
	"github.com/quickquid/quickquid_backend/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) TransferFunds(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransferService) ListTransfersForAccount(ctx context.Context, accountNumber string) ([]domain.TransferEntry, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransferEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Test Suite ---
type TransferHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTransferService *MockTransferService
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTransferService = new(MockTransferService)

	container := &portssvc.ServiceContainer{Transfer: suite.mockTransferService}
	handlers.RegisterRoutes(suite.router, container)
}

func (suite *TransferHandlerTestSuite) postTransfer(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransferHandlerTestSuite) TestCreateTransfer_Success() {
	branchID := int64(3)
	saved := &domain.Transaction{
		TransactionID:       10,
		Amount:              decimal.NewFromFloat(100.00),
		Description:         "rent",
		Status:              domain.Completed,
		TransactionDate:     time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		SenderAccountID:     1,
		ReceiverAccountID:   2,
		OriginatingBranchID: &branchID,
	}

	suite.mockTransferService.On("TransferFunds", mock.Anything, mock.MatchedBy(func(req dto.CreateTransferRequest) bool {
		return req.SenderAccount == "ACC-1001" &&
			req.ReceiverAccount == "ACC-2002" &&
			req.Amount.Equal(decimal.NewFromFloat(100.00)) &&
			req.OriginatingBranch != nil && req.OriginatingBranch.ID == 3
	})).Return(saved, nil).Once()

	w := suite.postTransfer(gin.H{
		"amount":            100.00,
		"senderAccount":     "ACC-1001",
		"receiverAccount":   "ACC-2002",
		"description":       "rent",
		"originatingBranch": gin.H{"id": 3},
	})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(10), body.ID)
	suite.Equal(domain.Completed, body.Status)
	suite.Equal("2024-03-15T10:30:00", body.TransactionDate)
	suite.Equal(int64(1), body.SenderAccountID)
	suite.Equal(int64(2), body.ReceiverAccountID)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_FailedStatusStillCreated() {
	saved := &domain.Transaction{
		TransactionID:   11,
		Amount:          decimal.NewFromFloat(9000.00),
		Status:          domain.Failed,
		TransactionDate: time.Now().UTC(),
	}

	suite.mockTransferService.On("TransferFunds", mock.Anything, mock.AnythingOfType("dto.CreateTransferRequest")).Return(saved, nil).Once()

	w := suite.postTransfer(gin.H{
		"amount":            9000.00,
		"senderAccount":     "ACC-1001",
		"receiverAccount":   "ACC-2002",
		"originatingBranch": gin.H{"id": 3},
	})

	// Insufficient balance records a FAILED transaction, it is not an error.
	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.Failed, body.Status)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_MissingFields() {
	w := suite.postTransfer(gin.H{"amount": 100.00})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message": "Missing required fields"}`, w.Body.String())
	suite.mockTransferService.AssertNotCalled(suite.T(), "TransferFunds", mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_SenderNotFound() {
	suite.mockTransferService.On("TransferFunds", mock.Anything, mock.AnythingOfType("dto.CreateTransferRequest")).
		Return(nil, services.ErrSenderAccountNotFound).Once()

	w := suite.postTransfer(gin.H{
		"amount":            100.00,
		"senderAccount":     "NOPE",
		"receiverAccount":   "ACC-2002",
		"originatingBranch": gin.H{"id": 3},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message": "Sender account not found"}`, w.Body.String())
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_MissingBranch() {
	suite.mockTransferService.On("TransferFunds", mock.Anything, mock.AnythingOfType("dto.CreateTransferRequest")).
		Return(nil, services.ErrBranchRequired).Once()

	w := suite.postTransfer(gin.H{
		"amount":          100.00,
		"senderAccount":   "ACC-1001",
		"receiverAccount": "ACC-2002",
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Bank branch ID not found in originatingBranch"}`, w.Body.String())
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_NonPositiveAmount() {
	suite.mockTransferService.On("TransferFunds", mock.Anything, mock.AnythingOfType("dto.CreateTransferRequest")).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "amount must be a positive number", apperrors.ErrValidation)).Once()

	w := suite.postTransfer(gin.H{
		"amount":            -5.00,
		"senderAccount":     "ACC-1001",
		"receiverAccount":   "ACC-2002",
		"originatingBranch": gin.H{"id": 3},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestListTransfersByAccount_Success() {
	bank := "First National - Downtown"
	entries := []domain.TransferEntry{
		{
			Amount:          decimal.NewFromFloat(100.00),
			SenderName:      "Ada Lovelace",
			ReceiverName:    "Grace Hopper",
			BankLabel:       &bank,
			TransactionDate: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
			Description:     "rent",
			Status:          domain.Completed,
		},
		{
			Amount:          decimal.NewFromFloat(9000.00),
			SenderName:      "Ada Lovelace",
			ReceiverName:    "Grace Hopper",
			TransactionDate: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
			Status:          domain.Failed,
		},
	}

	suite.mockTransferService.On("ListTransfersForAccount", mock.Anything, "ACC-1001").Return(entries, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transfers/account?accountNumber=ACC-1001", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.TransferEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("Ada Lovelace", body[0].Sender)
	suite.Require().NotNil(body[0].Bank)
	suite.Equal(bank, *body[0].Bank)
	suite.Equal("2024-03-15T10:30:00", body[0].Date)
	suite.Nil(body[1].Bank)
	suite.Equal(domain.Failed, body[1].Status)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestListTransfersByAccount_MissingAccountNumber() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transfers/account", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message": "Account number is required"}`, w.Body.String())
	suite.mockTransferService.AssertNotCalled(suite.T(), "ListTransfersForAccount", mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestListTransfersByAccount_AccountNotFound() {
	suite.mockTransferService.On("ListTransfersForAccount", mock.Anything, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transfers/account?accountNumber=NOPE", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"message": "Account not found"}`, w.Body.String())
	suite.mockTransferService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransferHandler(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
