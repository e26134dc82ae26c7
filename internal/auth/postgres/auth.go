package postgres

import (
	"github.com/frahmantamala/donation-platform/internal/auth"
	"github.com/frahmantamala/donation-platform/internal/ngo"
	"gorm.io/gorm"
)

// AuthRepository implements the auth.Repository interface using GORM
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateDonor(d *auth.Donor) error {
	return r.db.Create(d).Error
}

func (r *AuthRepository) GetDonorByEmail(email string) (*auth.Donor, error) {
	var d auth.Donor
	err := r.db.Where("email = ?", email).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *AuthRepository) DonorEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&auth.Donor{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *AuthRepository) CreateNGO(n *ngo.NGO) error {
	return r.db.Create(n).Error
}

func (r *AuthRepository) GetNGOByEmail(email string) (*ngo.NGO, error) {
	var n ngo.NGO
	err := r.db.Where("email = ?", email).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *AuthRepository) NGOEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ngo.NGO{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// DonorContact returns the name and email for a donor id. The receipt mailer
// uses it to address donation receipts.
func (r *AuthRepository) DonorContact(donorID int64) (name, email string, err error) {
	var d auth.Donor
	if err := r.db.Select("name, email").Where("id = ?", donorID).First(&d).Error; err != nil {
		return "", "", err
	}
	return d.Name, d.Email, nil
}
