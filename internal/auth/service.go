package auth

import (
	"log/slog"
	"strings"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/ngo"
	"golang.org/x/crypto/bcrypt"
)

// Repository defines the account storage for both donor and NGO credentials
type Repository interface {
	CreateDonor(d *Donor) error
	GetDonorByEmail(email string) (*Donor, error)
	DonorEmailExists(email string) (bool, error)
	CreateNGO(n *ngo.NGO) error
	GetNGOByEmail(email string) (*ngo.NGO, error)
	NGOEmailExists(email string) (bool, error)
}

// DonorLoginResult flattens the token pair next to the donor profile.
type DonorLoginResult struct {
	AuthTokens
	Donor DonorProfile `json:"donor"`
}

type NGOLoginResult struct {
	AuthTokens
	NGO NGOProfile `json:"ngo"`
}

// Service handles registration, login and token refresh for both account
// types
type Service struct {
	repo           Repository
	tokenGenerator TokenGenerator
	logger         *slog.Logger
	bcryptCost     int
}

func NewService(repo Repository, tokenGen TokenGenerator, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:           repo,
		tokenGenerator: tokenGen,
		logger:         logger,
		bcryptCost:     bcryptCost,
	}
}

// RegisterDonor validates the payload, hashes the password and stores the
// donor account. Duplicate emails conflict.
func (s *Service) RegisterDonor(dto RegisterDonorDTO) (int64, error) {
	if verr := dto.Validate(); verr != nil {
		return 0, verr
	}

	email := normalizeEmail(dto.Email)

	taken, err := s.repo.DonorEmailExists(email)
	if err != nil {
		s.logger.Error("failed to check donor email", "error", err)
		return 0, internal.NewStorageError("failed to register donor", err)
	}
	if taken {
		return 0, internal.ErrEmailTaken
	}

	hash, err := s.hashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return 0, internal.NewInternalError("failed to register donor", err)
	}

	d := &Donor{
		Name:         strings.TrimSpace(dto.Name),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.repo.CreateDonor(d); err != nil {
		s.logger.Error("failed to create donor", "error", err)
		return 0, internal.NewStorageError("failed to register donor", err)
	}

	s.logger.Info("donor registered", "donor_id", d.ID)

	return d.ID, nil
}

// RegisterNGO stores a new unverified NGO account.
func (s *Service) RegisterNGO(dto RegisterNGODTO) (int64, error) {
	if verr := dto.Validate(); verr != nil {
		return 0, verr
	}

	email := normalizeEmail(dto.Email)

	taken, err := s.repo.NGOEmailExists(email)
	if err != nil {
		s.logger.Error("failed to check NGO email", "error", err)
		return 0, internal.NewStorageError("failed to register NGO", err)
	}
	if taken {
		return 0, internal.ErrEmailTaken
	}

	hash, err := s.hashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return 0, internal.NewInternalError("failed to register NGO", err)
	}

	n := &ngo.NGO{
		Name:               strings.TrimSpace(dto.Name),
		Email:              email,
		PasswordHash:       hash,
		OrganizationName:   strings.TrimSpace(dto.OrganizationName),
		RegistrationNumber: dto.RegistrationNumber,
		Phone:              dto.Phone,
		Address:            dto.Address,
		IsVerified:         false,
	}

	if err := s.repo.CreateNGO(n); err != nil {
		s.logger.Error("failed to create NGO", "error", err)
		return 0, internal.NewStorageError("failed to register NGO", err)
	}

	s.logger.Info("ngo registered", "ngo_id", n.ID)

	return n.ID, nil
}

// LoginDonor verifies credentials and issues a token pair. Unknown email and
// wrong password produce the same error.
func (s *Service) LoginDonor(dto LoginDTO) (*DonorLoginResult, error) {
	if verr := dto.Validate(); verr != nil {
		return nil, verr
	}

	d, err := s.repo.GetDonorByEmail(normalizeEmail(dto.Email))
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(d.ID, internal.UserTypeDonor)
	if err != nil {
		return nil, err
	}

	s.logger.Info("donor logged in", "donor_id", d.ID)

	return &DonorLoginResult{
		AuthTokens: tokens,
		Donor: DonorProfile{
			ID:    d.ID,
			Name:  d.Name,
			Email: d.Email,
		},
	}, nil
}

// LoginNGO verifies NGO credentials and issues a token pair.
func (s *Service) LoginNGO(dto LoginDTO) (*NGOLoginResult, error) {
	if verr := dto.Validate(); verr != nil {
		return nil, verr
	}

	n, err := s.repo.GetNGOByEmail(normalizeEmail(dto.Email))
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(n.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(n.ID, internal.UserTypeNGO)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ngo logged in", "ngo_id", n.ID)

	return &NGOLoginResult{
		AuthTokens: tokens,
		NGO: NGOProfile{
			ID:               n.ID,
			Name:             n.Name,
			Email:            n.Email,
			OrganizationName: n.OrganizationName,
			IsVerified:       n.IsVerified,
		},
	}, nil
}

// Refresh re-issues the token pair from a valid refresh token.
func (s *Service) Refresh(dto RefreshTokenDTO) (AuthTokens, error) {
	if verr := dto.Validate(); verr != nil {
		return AuthTokens{}, verr
	}

	claims, err := s.tokenGenerator.ValidateToken(dto.RefreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	return s.issueTokens(claims.UserID, claims.UserType)
}

// ValidateAccessToken parses and validates an access token.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) issueTokens(userID int64, userType string) (AuthTokens, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(userID, userType)
	if err != nil {
		s.logger.Error("failed to sign access token", "error", err)
		return AuthTokens{}, internal.NewInternalError("failed to issue tokens", err)
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID, userType)
	if err != nil {
		s.logger.Error("failed to sign refresh token", "error", err)
		return AuthTokens{}, internal.NewInternalError("failed to issue tokens", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
