package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salon-booking-api/internal/models"
)

// Connect establishes a connection to the database
func Connect(databaseURL string) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("database connected and migrated successfully")
	return db, nil
}

// autoMigrate runs automatic migrations for all models
func autoMigrate(db *gorm.DB) error {
	modelList := []interface{}{
		&models.Tenant{},
		&models.Service{},
		&models.Master{},
		&models.MasterService{},
		&models.Schedule{},
		&models.Client{},
		&models.Appointment{},
	}

	for _, model := range modelList {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	if err := createConstraints(db); err != nil {
		return fmt.Errorf("failed to create constraints: %w", err)
	}

	return nil
}

// createIndexes creates additional database indexes for better performance
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_tenants_active ON tenants(is_active)",

		"CREATE INDEX IF NOT EXISTS idx_services_tenant ON services(tenant_id)",
		"CREATE INDEX IF NOT EXISTS idx_services_name ON services(tenant_id, name)",

		"CREATE INDEX IF NOT EXISTS idx_masters_tenant ON masters(tenant_id)",
		"CREATE INDEX IF NOT EXISTS idx_masters_name ON masters(tenant_id, name)",

		"CREATE INDEX IF NOT EXISTS idx_master_services_master ON master_services(master_id)",
		"CREATE INDEX IF NOT EXISTS idx_master_services_service ON master_services(service_id)",

		"CREATE INDEX IF NOT EXISTS idx_schedules_master ON schedules(master_id)",

		"CREATE INDEX IF NOT EXISTS idx_clients_tenant ON clients(tenant_id)",

		"CREATE INDEX IF NOT EXISTS idx_appointments_tenant ON appointments(tenant_id)",
		"CREATE INDEX IF NOT EXISTS idx_appointments_master_time ON appointments(master_id, start_time, end_time)",
		"CREATE INDEX IF NOT EXISTS idx_appointments_client_time ON appointments(client_id, start_time, end_time)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			slog.Warn("failed to create index", "query", index, "error", err)
		}
	}

	return nil
}

// createConstraints creates additional database constraints
func createConstraints(db *gorm.DB) error {
	constraints := []string{
		"ALTER TABLE services ADD CONSTRAINT IF NOT EXISTS chk_service_price CHECK (price > 0)",
		"ALTER TABLE services ADD CONSTRAINT IF NOT EXISTS chk_service_duration CHECK (duration_minutes > 0)",
		"ALTER TABLE schedules ADD CONSTRAINT IF NOT EXISTS chk_schedule_day CHECK (day_of_week BETWEEN 1 AND 7)",
		"ALTER TABLE appointments ADD CONSTRAINT IF NOT EXISTS chk_appointment_time CHECK (end_time > start_time)",
	}

	for _, constraint := range constraints {
		if err := db.Exec(constraint).Error; err != nil {
			slog.Warn("failed to create constraint", "query", constraint, "error", err)
		}
	}

	return nil
}

// CreateUniqueConstraints installs the database-level overlap-prevention
// backstop behind the application's serializable-transaction conflict
// check (§5): a trigger that aborts any insert/update whose [start_time,
// end_time) interval overlaps another appointment for the same master,
// or for the same client, adapted from the teacher's single-table
// OVERLAPS trigger into two checks keyed on master_id and client_id.
func CreateUniqueConstraints(db *gorm.DB) error {
	statements := []string{
		`CREATE OR REPLACE FUNCTION check_appointment_conflict()
			RETURNS TRIGGER AS $$
			BEGIN
			IF EXISTS (
				SELECT 1 FROM appointments
				WHERE master_id = NEW.master_id
				AND id != COALESCE(NEW.id, 0)
				AND (start_time, end_time) OVERLAPS (NEW.start_time, NEW.end_time)
			) THEN
				RAISE EXCEPTION 'master is already booked for that time';
			END IF;
			IF EXISTS (
				SELECT 1 FROM appointments
				WHERE client_id = NEW.client_id
				AND id != COALESCE(NEW.id, 0)
				AND (start_time, end_time) OVERLAPS (NEW.start_time, NEW.end_time)
			) THEN
				RAISE EXCEPTION 'client already has an appointment at that time';
			END IF;
			RETURN NEW;
			END;
			$$ LANGUAGE plpgsql`,

		`DROP TRIGGER IF EXISTS appointment_conflict_trigger ON appointments`,

		`CREATE TRIGGER appointment_conflict_trigger
			BEFORE INSERT OR UPDATE ON appointments
			FOR EACH ROW EXECUTE FUNCTION check_appointment_conflict()`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			slog.Warn("failed to create unique constraint", "query", stmt, "error", err)
		}
	}

	return nil
}

// SeedDatabase seeds one demo tenant with the original implementation's
// six services, four masters, and weekly schedules, so the API is
// runnable out of the box (grounded on api_old/main.py's
// create_initial_data).
func SeedDatabase(db *gorm.DB) error {
	var tenantCount int64
	if err := db.Model(&models.Tenant{}).Count(&tenantCount).Error; err != nil {
		return fmt.Errorf("failed to count tenants: %w", err)
	}
	if tenantCount > 0 {
		return nil
	}

	tenant := &models.Tenant{
		LoginName: "demo",
		Title:     "Demo Salon",
		BotToken:  "demo-bot-token",
		// bcrypt hash of "change-me-now"
		AdminPassword: "$2a$10$Mg1sCbFVqRvh4Wq0ih/uNeQeTrH3xQJxUQ4Fkz6B9c6tF6Nch6jFO",
		IsActive:      true,
	}
	if err := db.Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create demo tenant: %w", err)
	}
	slog.Info("demo tenant created", "login_name", tenant.LoginName)

	services := []models.Service{
		{TenantID: tenant.ID, Name: "Manicure with polish", Price: 2000, DurationMinutes: 90},
		{TenantID: tenant.ID, Name: "Women's haircut", Price: 2500, DurationMinutes: 60},
		{TenantID: tenant.ID, Name: "Facial cleansing", Price: 3500, DurationMinutes: 75},
		{TenantID: tenant.ID, Name: "Eyelash extensions", Price: 3000, DurationMinutes: 120},
		{TenantID: tenant.ID, Name: "Eyebrow styling", Price: 1500, DurationMinutes: 45},
		{TenantID: tenant.ID, Name: "Hair removal", Price: 3000, DurationMinutes: 60},
	}
	if err := db.Create(&services).Error; err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	byName := make(map[string]models.Service, len(services))
	for _, s := range services {
		byName[s.Name] = s
	}

	masters := []models.Master{
		{TenantID: tenant.ID, Name: "Anna Smirnova", Specialization: "Manicure master", Description: "5 years of experience."},
		{TenantID: tenant.ID, Name: "Elena Volkova", Specialization: "Hair stylist", Description: "Complex coloring."},
		{TenantID: tenant.ID, Name: "Olga Morozova", Specialization: "Aesthetician", Description: "Medical background."},
		{TenantID: tenant.ID, Name: "Irina Pavlova", Specialization: "Lash and brow technician", Description: "Competition champion."},
	}
	if err := db.Create(&masters).Error; err != nil {
		return fmt.Errorf("failed to seed masters: %w", err)
	}

	links := []models.MasterService{
		{MasterID: masters[0].ID, ServiceID: byName["Manicure with polish"].ID},
		{MasterID: masters[0].ID, ServiceID: byName["Eyebrow styling"].ID},
		{MasterID: masters[1].ID, ServiceID: byName["Women's haircut"].ID},
		{MasterID: masters[2].ID, ServiceID: byName["Facial cleansing"].ID},
		{MasterID: masters[2].ID, ServiceID: byName["Hair removal"].ID},
		{MasterID: masters[2].ID, ServiceID: byName["Eyebrow styling"].ID},
		{MasterID: masters[3].ID, ServiceID: byName["Eyelash extensions"].ID},
		{MasterID: masters[3].ID, ServiceID: byName["Eyebrow styling"].ID},
	}
	if err := db.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to seed master services: %w", err)
	}

	var schedules []models.Schedule
	for _, d := range []int{1, 3, 5} {
		schedules = append(schedules, models.Schedule{MasterID: masters[0].ID, DayOfWeek: d, StartTime: "10:00", EndTime: "19:00"})
	}
	for _, d := range []int{2, 4, 6} {
		schedules = append(schedules, models.Schedule{MasterID: masters[1].ID, DayOfWeek: d, StartTime: "09:00", EndTime: "18:00"})
	}
	for _, d := range []int{3, 5} {
		schedules = append(schedules, models.Schedule{MasterID: masters[2].ID, DayOfWeek: d, StartTime: "10:00", EndTime: "20:00"})
	}
	for _, d := range []int{1, 3, 5, 7} {
		schedules = append(schedules, models.Schedule{MasterID: masters[3].ID, DayOfWeek: d, StartTime: "11:00", EndTime: "20:00"})
	}
	if err := db.Create(&schedules).Error; err != nil {
		return fmt.Errorf("failed to seed schedules: %w", err)
	}

	slog.Info("demo catalog seeded", "services", len(services), "masters", len(masters))
	return nil
}

// CloseConnection closes the database connection
func CloseConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("database connection closed")
	return nil
}
