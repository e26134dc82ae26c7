package postgres

import (
	"github.com/frahmantamala/donation-platform/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(e *expense.Expense) error {
	return r.db.Create(e).Error
}

func (r *ExpenseRepository) GetByCampaignID(campaignID int64) ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Where("campaign_id = ?", campaignID).
		Order("expense_date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) CampaignExists(campaignID int64) (bool, error) {
	var count int64
	err := r.db.Table("campaigns").Where("id = ?", campaignID).Count(&count).Error
	return count > 0, err
}
