package database

import (
	"fmt"
	"os"

	"paquetes-elclub/logger"
	"paquetes-elclub/models/announcement"
	"paquetes-elclub/models/customer"
	"paquetes-elclub/models/log"
	"paquetes-elclub/models/notification"
	"paquetes-elclub/models/parcel"
	"paquetes-elclub/models/rate"
	"paquetes-elclub/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE") // Optional: "disable", "require", etc.

	// Set default sslmode if not provided
	if sslmode == "" {
		sslmode = "disable"
	}

	// Build PostgreSQL DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	// TranslateError lets unique-index violations surface as gorm.ErrDuplicatedKey,
	// which the announcement service relies on for its insert-retry path.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	// Handle foreign key constraints after migrations
	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	// Create indexes for better performance
	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models
func autoMigrate() error {
	// First, migrate models without foreign key constraints in stages

	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&user.User{},
		&customer.Customer{},
		&rate.Rate{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Models with dependencies on Stage 1
	stage2Models := []interface{}{
		&announcement.Announcement{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: Models depending on announcements
	stage3Models := []interface{}{
		&parcel.Parcel{},
		&parcel.ParcelStatusEvent{},
		&notification.Notification{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	remainingModels := []interface{}{
		// Logging
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance. The unique
// indexes on tracking_code and guide_number are the correctness backstop for
// the allocator's check-then-insert pattern and must exist before traffic.
func createIndexes() error {
	// Announcement indexes
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_announcements_tracking_code ON package_announcements(tracking_code)").Error; err != nil {
		return fmt.Errorf("failed to create announcement tracking_code index: %w", err)
	}
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_announcements_guide_number ON package_announcements(guide_number)").Error; err != nil {
		return fmt.Errorf("failed to create announcement guide_number index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_announcements_phone ON package_announcements(phone)").Error; err != nil {
		return fmt.Errorf("failed to create announcement phone index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_announcements_announced_at ON package_announcements(announced_at)").Error; err != nil {
		return fmt.Errorf("failed to create announcement announced_at index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_announcements_is_active ON package_announcements(is_active)").Error; err != nil {
		return fmt.Errorf("failed to create announcement is_active index: %w", err)
	}

	// Customer indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_phone ON customers(phone)").Error; err != nil {
		return fmt.Errorf("failed to create customer phone index: %w", err)
	}

	// Parcel indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_status ON parcels(status)").Error; err != nil {
		return fmt.Errorf("failed to create parcel status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_customer_id ON parcels(customer_id)").Error; err != nil {
		return fmt.Errorf("failed to create parcel customer_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_received_at ON parcels(received_at)").Error; err != nil {
		return fmt.Errorf("failed to create parcel received_at index: %w", err)
	}

	// Notification indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status)").Error; err != nil {
		return fmt.Errorf("failed to create notification status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_announcement_id ON notifications(announcement_id)").Error; err != nil {
		return fmt.Errorf("failed to create notification announcement_id index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)").Error; err != nil {
		return fmt.Errorf("failed to create log method index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	// Define constraints with their names for checking existence
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_announcements_customer",
			sql: `ALTER TABLE package_announcements ADD CONSTRAINT fk_announcements_customer
				  FOREIGN KEY (customer_id) REFERENCES customers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_parcels_announcement",
			sql: `ALTER TABLE parcels ADD CONSTRAINT fk_parcels_announcement
				  FOREIGN KEY (announcement_id) REFERENCES package_announcements(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_parcels_customer",
			sql: `ALTER TABLE parcels ADD CONSTRAINT fk_parcels_customer
				  FOREIGN KEY (customer_id) REFERENCES customers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_notifications_announcement",
			sql: `ALTER TABLE notifications ADD CONSTRAINT fk_notifications_announcement
				  FOREIGN KEY (announcement_id) REFERENCES package_announcements(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		// Check if constraint already exists
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
