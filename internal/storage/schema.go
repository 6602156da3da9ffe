// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for health logs, scans, insights, medications, activity.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS health_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		log_date TEXT NOT NULL,
		weight REAL,
		blood_pressure_systolic INTEGER,
		blood_pressure_diastolic INTEGER,
		heart_rate INTEGER,
		temperature REAL,
		mood_score INTEGER,
		energy_level INTEGER,
		sleep_hours REAL,
		exercise_minutes INTEGER,
		water_intake_ml INTEGER,
		notes TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE(user_id, log_date)
	);

	CREATE TABLE IF NOT EXISTS scans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		scan_type TEXT NOT NULL,
		label TEXT,
		processed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS health_insights (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		insight_type TEXT NOT NULL,
		severity TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT,
		confidence REAL NOT NULL DEFAULT 0,
		read INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS medications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		dosage TEXT,
		doses_per_day INTEGER NOT NULL DEFAULT 1,
		start_date TEXT NOT NULL,
		end_date TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS medication_intakes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		medication_id TEXT NOT NULL,
		taken_at DATETIME NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (medication_id) REFERENCES medications(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS activities (
		user_id TEXT NOT NULL,
		activity TEXT NOT NULL,
		metadata TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_logs_user_date ON health_logs(user_id, log_date);
	CREATE INDEX IF NOT EXISTS idx_scans_user_type ON scans(user_id, scan_type, created_at);
	CREATE INDEX IF NOT EXISTS idx_insights_user ON health_insights(user_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_medications_user ON medications(user_id);
	CREATE INDEX IF NOT EXISTS idx_intakes_user ON medication_intakes(user_id, taken_at);
	CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id, created_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
