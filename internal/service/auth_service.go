package service

import (
	"classroom_backend/internal/config"
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"classroom_backend/pkg/logger"
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	verifyTokenLength = 32
	verifyTokenTTL    = 48 * time.Hour
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Mail     *MailService
	RDB      *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, mailSvc *MailService, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Mail:     mailSvc,
		RDB:      rdb,
		Cfg:      cfg,
	}
}

func verifyKey(token string) string {
	return "verify:" + token
}

// Register creates the user unverified and sends the verification mail.
func (s *AuthService) Register(ctx context.Context, user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.IsVerified = false

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	return s.sendVerification(ctx, user)
}

func (s *AuthService) sendVerification(ctx context.Context, user *model.User) error {
	token := model.RandomString(verifyTokenLength, true)
	if err := s.RDB.Set(ctx, verifyKey(token), user.ID, verifyTokenTTL).Err(); err != nil {
		return err
	}

	if err := s.Mail.SendVerification(ctx, user, token); err != nil {
		// Registration stands even when the mail provider is down; the
		// user can request another token.
		logger.Log.Error("failed to send verification mail",
			zap.Uint("userId", user.ID), zap.Error(err))
	}
	return nil
}

// Verify consumes a verification token and marks the user verified.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	var userID uint
	err := s.RDB.Get(ctx, verifyKey(token)).Scan(&userID)
	if errors.Is(err, redis.Nil) {
		return util.ErrVerificationExpired
	}
	if err != nil {
		return err
	}

	if err := s.UserRepo.MarkVerified(userID); err != nil {
		return err
	}

	s.RDB.Del(ctx, verifyKey(token))
	return nil
}

// ResendVerification issues a fresh token for a not-yet-verified account.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}
	return s.sendVerification(ctx, user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return "", util.ErrUserNotVerified
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
