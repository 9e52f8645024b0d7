package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quest-zone/feature/content"
)

var (
	// ErrInvalidCredentials is returned on a failed sign-in or a bad token.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotConfigured is returned when admin sign-in has no database or secret.
	ErrNotConfigured = errors.New("admin access is not configured")
)

// AdminUser is one row of the admin_users table.
type AdminUser struct {
	ID           string `gorm:"primaryKey"`
	Username     string
	PasswordHash string
}

// TableName returns the table backing AdminUser.
func (AdminUser) TableName() string {
	return "admin_users"
}

// Session identifies a signed-in admin.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Service implements admin sign-in and content publishing.
type Service struct {
	db        *gorm.DB
	store     *content.Store
	logger    *zap.Logger
	jwtSecret string
	tokenTTL  time.Duration
}

// NewService creates a new admin service. A nil db or empty secret leaves
// sign-in unconfigured.
func NewService(db *gorm.DB, store *content.Store, logger *zap.Logger, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		db:        db,
		store:     store,
		logger:    logger,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// IsConfigured reports whether admin sign-in can work at all.
func (s *Service) IsConfigured() bool {
	return s.db != nil && s.jwtSecret != ""
}

// Login checks the credentials against admin_users and returns a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}

	var user AdminUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("admin login for unknown user", zap.String("username", username))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to read admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("admin login with wrong password", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"usr": user.Username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("admin signed in", zap.String("username", user.Username))
	return signed, nil
}

// VerifyToken validates a session token and returns the session it carries.
func (s *Service) VerifyToken(tokenString string) (Session, error) {
	if s.jwtSecret == "" {
		return Session{}, ErrNotConfigured
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidCredentials
	}

	session := Session{}
	if sub, ok := claims["sub"].(string); ok {
		session.UserID = sub
	}
	if usr, ok := claims["usr"].(string); ok {
		session.Username = usr
	}
	return session, nil
}

// SaveAll publishes an edit payload section by section, then refreshes the
// live content from the remote tables. Sections are saved in a fixed order
// and the first failure stops the pass; earlier sections stay published.
func (s *Service) SaveAll(ctx context.Context, payload SavePayload) error {
	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return err
	}

	if payload.Settings != nil {
		if err := s.store.SaveSettings(ctx, *payload.Settings); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	if payload.Quests != nil {
		if err := s.store.SaveQuests(ctx, payload.Quests); err != nil {
			return fmt.Errorf("quests: %w", err)
		}
	}
	if payload.Gallery != nil {
		if err := s.store.SaveGallery(ctx, payload.Gallery); err != nil {
			return fmt.Errorf("gallery: %w", err)
		}
	}
	if payload.Reviews != nil {
		if err := s.store.SaveReviews(ctx, payload.Reviews); err != nil {
			return fmt.Errorf("reviews: %w", err)
		}
	}
	if payload.Offers != nil {
		if err := s.store.SaveOffers(ctx, payload.Offers); err != nil {
			return fmt.Errorf("offers: %w", err)
		}
	}

	s.store.Refresh(ctx)
	s.logger.Info("admin content published")
	return nil
}
