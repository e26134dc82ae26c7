package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts and a campaign for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"donations", "expenses", "fund_allocations", "campaigns", "ngo_verifications", "ngos", "donors"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		donorEmail := "donor@mail.com"
		var exists int
		row := db.Raw("SELECT 1 FROM donors WHERE email = ?", donorEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("sample donor already exists")
		} else {
			if err := db.Exec("INSERT INTO donors (name, email, password_hash, created_at) VALUES (?, ?, ?, now())",
				"Sample Donor", donorEmail, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert sample donor: %v", err)
			}
			fmt.Println("Seeded donor:", donorEmail)
		}

		ngoEmail := "ngo@mail.com"
		row = db.Raw("SELECT 1 FROM ngos WHERE email = ?", ngoEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("sample NGO already exists")
			return
		}

		if err := db.Exec(`INSERT INTO ngos (name, email, password_hash, organization_name, registration_number, is_verified, created_at)
			VALUES (?, ?, ?, ?, ?, true, now())`,
			"Sample Contact", ngoEmail, string(hash), "Helping Hands Foundation", "REG-0001").Error; err != nil {
			log.Fatalf("failed to insert sample NGO: %v", err)
		}
		fmt.Println("Seeded NGO:", ngoEmail)

		var ngoID int64
		row = db.Raw("SELECT id FROM ngos WHERE email = ?", ngoEmail).Row()
		if err := row.Scan(&ngoID); err != nil {
			log.Fatalf("failed to read seeded NGO id: %v", err)
		}

		if err := db.Exec(`INSERT INTO campaigns
			(ngo_id, title, description, target_amount, start_date, end_date, bank_details, status, current_amount, created_at, updated_at)
			VALUES (?, ?, ?, ?, current_date, current_date + interval '90 days', ?, 'active', 0, now(), now())`,
			ngoID,
			"Clean Water for All",
			"Install water filtration units in rural communities.",
			10000.00,
			`{"account_name":"Helping Hands Foundation","account_number":"1234567890","bank_name":"First National","routing_code":"FNB-001"}`,
		).Error; err != nil {
			log.Fatalf("failed to insert sample campaign: %v", err)
		}
		fmt.Println("Seeded campaign: Clean Water for All")
	},
}
