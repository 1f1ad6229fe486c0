package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"thrgacha/internal/model"
	"thrgacha/internal/repository/mocks"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockTokenRepo *mocks.MockTokenRepo
	tokenService  *TokenService
	ctx           context.Context

	testRoomID        string
	testParticipantID string
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTokenRepo = mocks.NewMockTokenRepo(s.mockCtrl)
	s.tokenService = NewTokenService(s.mockTokenRepo)
	s.ctx = context.Background()

	s.testRoomID = "room-1"
	s.testParticipantID = "p_abc12345"
}

func (s *TokenServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TokenServiceTestSuite) TestGetBalanceLazyCreates() {
	s.mockTokenRepo.EXPECT().
		Get(gomock.Any(), s.testParticipantID, s.testRoomID).
		Return(&model.TokenBalance{Count: 0}, nil)

	balance, err := s.tokenService.GetBalance(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().NoError(err)
	s.Zero(balance.Count)
}

func (s *TokenServiceTestSuite) TestCredit() {
	s.mockTokenRepo.EXPECT().
		Credit(gomock.Any(), s.testParticipantID, s.testRoomID, 3).
		Return(&model.TokenBalance{Count: 5}, nil)

	balance, err := s.tokenService.Credit(s.ctx, s.testParticipantID, s.testRoomID, 3)

	s.Require().NoError(err)
	s.Equal(5, balance.Count)
}

func (s *TokenServiceTestSuite) TestCreditRejectsNonPositiveAmount() {
	_, err := s.tokenService.Credit(s.ctx, s.testParticipantID, s.testRoomID, 0)
	s.True(errors.Is(err, ErrValidation))

	_, err = s.tokenService.Credit(s.ctx, s.testParticipantID, s.testRoomID, -1)
	s.True(errors.Is(err, ErrValidation))
}

func (s *TokenServiceTestSuite) TestDebit() {
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 1}, nil)

	balance, err := s.tokenService.Debit(s.ctx, s.testParticipantID, s.testRoomID, 1)

	s.Require().NoError(err)
	s.Equal(1, balance.Count)
}

func (s *TokenServiceTestSuite) TestDebitInsufficient() {
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(nil, nil)

	_, err := s.tokenService.Debit(s.ctx, s.testParticipantID, s.testRoomID, 1)
	s.True(errors.Is(err, ErrInsufficientTokens))
}

func (s *TokenServiceTestSuite) TestDebitRejectsNonPositiveAmount() {
	_, err := s.tokenService.Debit(s.ctx, s.testParticipantID, s.testRoomID, 0)
	s.True(errors.Is(err, ErrValidation))
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
