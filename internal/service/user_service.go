package service

import (
	"Encore/internal/api/dto"
	"Encore/internal/model"
	"Encore/internal/pkg/email"
	"Encore/internal/pkg/redis"
	"Encore/internal/pkg/security"
	"Encore/internal/pkg/util"
	"Encore/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const verificationCodeTTL = 24 * time.Hour

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (string, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error)
	Logout(ctx context.Context, token string) error
	VerifyEmail(ctx context.Context, verifyDTO *dto.VerifyEmailDTO) error
	GetMe(ctx context.Context, userID string) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	sender   *email.Sender
}

func NewUserService(userRepo repository.UserRepo, sender *email.Sender) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		sender:   sender,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (string, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username: regDTO.Username,
		Email:    regDTO.Email,
		Password: passwordHash,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 唯一索引兜底并发注册
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUserExist
		}
		return "", err
	}

	code := util.GenerateCode(6)
	if err = s.userRepo.SetVerificationCode(ctx, user.ID, code, time.Now().Add(verificationCodeTTL)); err != nil {
		return "", err
	}

	// 邮件投递不阻塞注册
	go s.sendVerificationMail(user.Email, code)

	return user.ID.Hex(), nil
}

func (s *userServiceImpl) sendVerificationMail(to, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	body := fmt.Sprintf("Your Encore verification code is %s. It expires in 24 hours.", code)
	if err := s.sender.Send(ctx, to, "Verify your Encore account", body); err != nil {
		log.Error("send verification mail failed", "to", to, "err", err)
	}
}

func (s *userServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID.Hex())
}

func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *userServiceImpl) VerifyEmail(ctx context.Context, verifyDTO *dto.VerifyEmailDTO) error {
	user, err := s.userRepo.GetUserByEmail(ctx, verifyDTO.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrUserAlreadyVerified
	}
	if user.VerificationCode == "" ||
		user.VerificationCode != verifyDTO.Code ||
		time.Now().After(user.VerificationCodeExpires) {
		return ErrCodeIncorrect
	}

	return s.userRepo.MarkVerified(ctx, user.ID)
}

func (s *userServiceImpl) GetMe(ctx context.Context, userID string) (*dto.UserDTO, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	user, err := s.userRepo.GetUserByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserDTO{
		ID:         user.ID.Hex(),
		Username:   user.Username,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}, nil
}
