package operator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/item-location/cmd/config"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	operatorrepo "github.com/muhammadheryan/item-location/repository/operator"
	redisrepo "github.com/muhammadheryan/item-location/repository/redis"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/muhammadheryan/item-location/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type OperatorApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.OperatorSession, error)
	Logout(ctx context.Context, session *model.OperatorSession) error
}

// Claims carries the operator's role so authorization needs no lookup.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type OperatorAppImpl struct {
	config       *config.Config
	operatorRepo operatorrepo.OperatorRepository
	redisRepo    redisrepo.Repository
}

func NewOperatorApp(config *config.Config, operatorRepo operatorrepo.OperatorRepository, redisRepo redisrepo.Repository) OperatorApp {
	return &OperatorAppImpl{
		config:       config,
		operatorRepo: operatorRepo,
		redisRepo:    redisRepo,
	}
}

func (s *OperatorAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	// Find operator by email or username
	filter := &model.OperatorFilter{}
	if strings.Contains(req.Identifier, "@") {
		filter.Email = req.Identifier
	} else {
		filter.Username = req.Identifier
	}

	op, err := s.operatorRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err operatorRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if op == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(op)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, op.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Username: op.Username,
		Role:     op.Role,
		Token:    token,
	}, nil
}

// ValidateToken checks the signature and that the session still exists in
// Redis for the same operator.
func (s *OperatorAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.OperatorSession, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	operatorID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid operator id in token")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	redisOperatorID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}
	if redisOperatorID != operatorID {
		return nil, fmt.Errorf("token does not match operator session")
	}

	return &model.OperatorSession{
		OperatorID: operatorID,
		Username:   claims.Username,
		Role:       claims.Role,
		SessionID:  claims.ID,
	}, nil
}

func (s *OperatorAppImpl) Logout(ctx context.Context, session *model.OperatorSession) error {
	if err := s.redisRepo.DeleteSession(ctx, session.SessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *OperatorAppImpl) generateJWT(op *model.OperatorEntity) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	now := time.Now()
	claims := Claims{
		Username: op.Username,
		Role:     op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(op.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
