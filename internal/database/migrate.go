package database

import (
	migrate "github.com/rubenv/sql-migrate"
)

// Schema migrations, applied in order at startup. Column names must line up
// with the GORM models in internal/models.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "001_create_patients",
			Up: []string{`
CREATE TABLE IF NOT EXISTS patients (
	id varchar(64) PRIMARY KEY,
	created_at datetime,
	updated_at datetime,
	deleted_at datetime,
	first_name varchar(255) NOT NULL,
	last_name varchar(255) NOT NULL,
	date_of_birth varchar(10) NOT NULL,
	gender varchar(20) NOT NULL,
	email varchar(255),
	phone varchar(50),
	address varchar(255),
	city varchar(100),
	state varchar(50),
	zip_code varchar(20),
	blood_type varchar(10),
	allergies text,
	emergency_contact varchar(255),
	emergency_phone varchar(50),
	insurance varchar(255),
	insurance_id varchar(100)
);`,
				`CREATE INDEX IF NOT EXISTS idx_patients_deleted_at ON patients(deleted_at);`,
				`CREATE INDEX IF NOT EXISTS idx_patients_last_name ON patients(last_name);`,
				`CREATE INDEX IF NOT EXISTS idx_patients_first_name ON patients(first_name);`,
				`CREATE INDEX IF NOT EXISTS idx_patients_email ON patients(email);`,
				`CREATE INDEX IF NOT EXISTS idx_patients_phone ON patients(phone);`,
				`CREATE INDEX IF NOT EXISTS idx_patients_updated_at ON patients(updated_at);`,
			},
			Down: []string{`DROP TABLE patients;`},
		},
		{
			Id: "002_create_visits",
			Up: []string{`
CREATE TABLE IF NOT EXISTS visits (
	id varchar(64) PRIMARY KEY,
	created_at datetime,
	updated_at datetime,
	deleted_at datetime,
	patient_id varchar(64) NOT NULL,
	visit_date datetime NOT NULL,
	chief_complaint text NOT NULL,
	vital_blood_pressure varchar(50),
	vital_heart_rate varchar(50),
	vital_temperature varchar(50),
	vital_respiratory_rate varchar(50),
	vital_oxygen_saturation varchar(50),
	vital_weight varchar(50),
	vital_height varchar(50),
	examination_findings text,
	diagnosis text,
	treatment_plan text,
	prescriptions text,
	lab_orders text,
	follow_up text,
	notes text
);`,
				`CREATE INDEX IF NOT EXISTS idx_visits_deleted_at ON visits(deleted_at);`,
				`CREATE INDEX IF NOT EXISTS idx_visits_patient_id ON visits(patient_id);`,
				`CREATE INDEX IF NOT EXISTS idx_visits_visit_date ON visits(visit_date);`,
			},
			Down: []string{`DROP TABLE visits;`},
		},
		{
			Id: "003_create_visit_templates",
			Up: []string{`
CREATE TABLE IF NOT EXISTS visit_templates (
	id varchar(64) PRIMARY KEY,
	created_at datetime,
	updated_at datetime,
	deleted_at datetime,
	name varchar(255) NOT NULL,
	description text,
	category varchar(20) NOT NULL,
	field_chief_complaint text,
	field_examination_findings text,
	field_diagnosis text,
	field_treatment_plan text,
	field_prescriptions text,
	field_lab_orders text,
	field_follow_up text,
	field_notes text
);`,
				`CREATE INDEX IF NOT EXISTS idx_visit_templates_deleted_at ON visit_templates(deleted_at);`,
				`CREATE INDEX IF NOT EXISTS idx_visit_templates_name ON visit_templates(name);`,
				`CREATE INDEX IF NOT EXISTS idx_visit_templates_category ON visit_templates(category);`,
			},
			Down: []string{`DROP TABLE visit_templates;`},
		},
	},
}

func (s *DB) migrate() error {
	log := s.log.Function("migrate")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return log.Err("failed to get database handle for migrations", err)
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return log.Err("failed to apply migrations", err)
	}

	log.Info("Migrations applied", "count", applied)
	return nil
}
