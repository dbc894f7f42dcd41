package database

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type migration struct {
	name string
	sql  string
}

var schema = []migration{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			school_name VARCHAR(255) NOT NULL,
			account_type VARCHAR(50) NOT NULL CHECK (account_type IN ('Administrator', 'Accountant')),
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			verification_token VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"students", `
		CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			student_id VARCHAR(50) UNIQUE NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			date_of_birth DATE,
			gender VARCHAR(10) CHECK (gender IN ('Male', 'Female')),
			email VARCHAR(255),
			phone VARCHAR(50),
			address TEXT,
			parent_guardian_name VARCHAR(255),
			parent_guardian_phone VARCHAR(50),
			parent_guardian_email VARCHAR(255),
			enrollment_category VARCHAR(20) CHECK (enrollment_category IN ('MayJune', 'NovDec')),
			enrollment_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive', 'Graduated')),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"staff", `
		CREATE TABLE IF NOT EXISTS staff (
			id SERIAL PRIMARY KEY,
			staff_id VARCHAR(50) UNIQUE NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(50),
			address TEXT,
			date_of_birth DATE,
			gender VARCHAR(10) CHECK (gender IN ('Male', 'Female')),
			qualification VARCHAR(255),
			hire_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'On Leave', 'Inactive')),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"subjects", `
		CREATE TABLE IF NOT EXISTS subjects (
			id SERIAL PRIMARY KEY,
			subject_name VARCHAR(255) NOT NULL,
			subject_code VARCHAR(50) UNIQUE NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"staff_subjects", `
		CREATE TABLE IF NOT EXISTS staff_subjects (
			id SERIAL PRIMARY KEY,
			staff_id INTEGER NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
			subject_id INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			assigned_date DATE DEFAULT CURRENT_DATE,
			UNIQUE (staff_id, subject_id)
		)`},
	{"staff_attendance", `
		CREATE TABLE IF NOT EXISTS staff_attendance (
			id SERIAL PRIMARY KEY,
			staff_id INTEGER NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
			attendance_date DATE NOT NULL,
			status VARCHAR(20) NOT NULL CHECK (status IN ('Present', 'Absent', 'Late', 'On Leave')),
			notes TEXT,
			UNIQUE (staff_id, attendance_date)
		)`},
	{"fees", `
		CREATE TABLE IF NOT EXISTS fees (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount DECIMAL(10, 2) NOT NULL CHECK (amount > 0),
			payment_date DATE NOT NULL,
			payment_method VARCHAR(50) NOT NULL CHECK (payment_method IN ('Cash', 'Bank Transfer', 'Mobile Money', 'Cheque')),
			receipt_number VARCHAR(100) NOT NULL,
			academic_year VARCHAR(20) NOT NULL,
			term VARCHAR(20) NOT NULL,
			description TEXT,
			recorded_by INTEGER NOT NULL REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT fees_receipt_number_key UNIQUE (receipt_number)
		)`},
	{"fee_structure", `
		CREATE TABLE IF NOT EXISTS fee_structure (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			total_fees DECIMAL(10, 2) NOT NULL CHECK (total_fees >= 0),
			amount_paid DECIMAL(10, 2) NOT NULL DEFAULT 0,
			balance DECIMAL(10, 2) NOT NULL,
			academic_year VARCHAR(20) NOT NULL,
			term VARCHAR(20) NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT fee_structure_student_term_key UNIQUE (student_id, academic_year, term),
			CONSTRAINT fee_structure_balance_check CHECK (balance = total_fees - amount_paid)
		)`},
	{"token_blacklist", `
		CREATE TABLE IF NOT EXISTS token_blacklist (
			id SERIAL PRIMARY KEY,
			token_hash CHAR(64) NOT NULL UNIQUE,
			expired_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},

	// Databases created before the ledger constraints existed get them added here.
	{"fee_structure_student_term_key", `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint
				WHERE conrelid = 'fee_structure'::regclass
				AND conname = 'fee_structure_student_term_key'
			) THEN
				ALTER TABLE fee_structure
					ADD CONSTRAINT fee_structure_student_term_key UNIQUE (student_id, academic_year, term);
			END IF;
		END $$;`},
	{"fee_structure_balance_check", `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint
				WHERE conrelid = 'fee_structure'::regclass
				AND conname = 'fee_structure_balance_check'
			) THEN
				ALTER TABLE fee_structure
					ADD CONSTRAINT fee_structure_balance_check CHECK (balance = total_fees - amount_paid) NOT VALID;
			END IF;
		END $$;`},

	{"idx_students_enrollment", `CREATE INDEX IF NOT EXISTS idx_students_enrollment ON students(enrollment_category)`},
	{"idx_students_status", `CREATE INDEX IF NOT EXISTS idx_students_status ON students(status)`},
	{"idx_staff_status", `CREATE INDEX IF NOT EXISTS idx_staff_status ON staff(status)`},
	{"idx_fees_student", `CREATE INDEX IF NOT EXISTS idx_fees_student ON fees(student_id)`},
	{"idx_fees_payment_date", `CREATE INDEX IF NOT EXISTS idx_fees_payment_date ON fees(payment_date)`},
	{"idx_attendance_date", `CREATE INDEX IF NOT EXISTS idx_attendance_date ON staff_attendance(attendance_date)`},
	{"idx_token_blacklist_expired", `CREATE INDEX IF NOT EXISTS idx_token_blacklist_expired ON token_blacklist(expired_at)`},
}

// RunMigrations creates the schema idempotently. Safe to call on every boot.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	log.Println("[INFO] running database migrations...")

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range schema {
			if err := tx.Exec(m.sql).Error; err != nil {
				return fmt.Errorf("migration %s: %w", m.name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] migrations failed: %v", err)
		return err
	}

	log.Println("[INFO] database migrations completed")
	return nil
}
