// This file implements UserService: registration, profiles, the friend
// graph, the leaderboard, and session token mint/verify.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/snowsquad/engine/internal/common"
	"github.com/snowsquad/engine/internal/dbx"
	"github.com/snowsquad/engine/internal/logging"
	"github.com/snowsquad/engine/internal/server/auth"
	"github.com/snowsquad/engine/internal/server/config"
	"github.com/snowsquad/engine/internal/server/models"
	"github.com/snowsquad/engine/internal/server/repositories/repomanager"
)

// Profile is a user record prepared for display.
type Profile struct {
	User        *models.User
	FriendCount int
}

// UserService provides account-related operations:
// - Register: create the point ledger row for a new identity
// - Profile: user record with friend count
// - AddFriend / Friends / Leaderboard: the social layer
// - IssueToken / Authenticate: session tokens
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	log                   logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		log:                   log,
	}
}

// Register creates the ledger row for a new identity: zero points, zero
// completions, no friends.
func (s *UserService) Register(ctx context.Context, id, email, userName string) (*models.User, error) {
	user := &models.User{
		ID:        id,
		Email:     email,
		UserName:  userName,
		Points:    0,
		CreatedAt: time.Now().UTC(),
	}
	repo := s.repomanager.Users(s.db)
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	s.log.Info(ctx, "user registered", "user_id", id, "username", userName)
	return user, nil
}

// Profile returns the user record plus their friend count.
func (s *UserService) Profile(ctx context.Context, id string) (*Profile, error) {
	userRepo := s.repomanager.Users(s.db)
	friendRepo := s.repomanager.Friends(s.db)

	user, err := userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	friends, err := friendRepo.List(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing friends: %v", err)
	}
	return &Profile{User: user, FriendCount: len(friends)}, nil
}

// AddFriend resolves the target by username and inserts both directed edges
// in one transaction, so the graph stays symmetric. Adding an existing
// friend, or yourself, is a no-op.
func (s *UserService) AddFriend(ctx context.Context, selfID, targetUserName string) error {
	userRepo := s.repomanager.Users(s.db)

	target, err := userRepo.GetByUserName(ctx, targetUserName)
	if err != nil {
		return err
	}
	if target.ID == selfID {
		return nil
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Friends(tx)
		if err := repoTx.Add(ctx, selfID, target.ID); err != nil {
			return err
		}
		return repoTx.Add(ctx, target.ID, selfID)
	})
	if err != nil {
		return fmt.Errorf("error adding friend: %v", err)
	}

	s.log.Info(ctx, "friend added", "user_id", selfID, "friend_id", target.ID)
	return nil
}

// Friends returns the user's friends.
func (s *UserService) Friends(ctx context.Context, userID string) ([]*models.User, error) {
	repo := s.repomanager.Friends(s.db)
	friends, err := repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing friends: %v", err)
	}
	return friends, nil
}

// Leaderboard returns the user and their friends ordered by points.
func (s *UserService) Leaderboard(ctx context.Context, userID string) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)
	board, err := repo.Leaderboard(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading leaderboard: %v", err)
	}
	return board, nil
}

// IssueToken mints a session token for an existing user.
func (s *UserService) IssueToken(ctx context.Context, userID string) (string, error) {
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, userID); err != nil {
		return "", err
	}
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticate resolves a session token to the user id it was minted for.
func (s *UserService) Authenticate(tokenString string) (string, error) {
	return auth.GetUserIDFromToken(tokenString, s.jwtSecret)
}
