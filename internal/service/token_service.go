package service

import (
	"context"
	"fmt"

	"thrgacha/internal/model"
	"thrgacha/internal/repository"
)

// TokenService is the spin token ledger. Balances never go negative; the
// debit-if-sufficient check is a single atomic repository operation, so
// two concurrent spins cannot both consume the last token.
type TokenService struct {
	tokenRepo repository.TokenRepo
}

// NewTokenService creates a new token service.
func NewTokenService(tokenRepo repository.TokenRepo) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
	}
}

// GetBalance returns the balance for a participant in a room, creating a
// zero record on first read.
func (s *TokenService) GetBalance(ctx context.Context, participantID, roomID string) (*model.TokenBalance, error) {
	balance, err := s.tokenRepo.Get(ctx, participantID, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token balance: %w", err)
	}
	return balance, nil
}

// Credit adds tokens and returns the new balance.
func (s *TokenService) Credit(ctx context.Context, participantID, roomID string, amount int) (*model.TokenBalance, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive", ErrValidation)
	}

	balance, err := s.tokenRepo.Credit(ctx, participantID, roomID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit tokens: %w", err)
	}
	return balance, nil
}

// Debit removes tokens, failing with ErrInsufficientTokens when the
// balance does not cover the amount. The balance is unchanged on failure.
func (s *TokenService) Debit(ctx context.Context, participantID, roomID string, amount int) (*model.TokenBalance, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", ErrValidation)
	}

	balance, err := s.tokenRepo.Debit(ctx, participantID, roomID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit tokens: %w", err)
	}
	if balance == nil {
		return nil, ErrInsufficientTokens
	}
	return balance, nil
}
