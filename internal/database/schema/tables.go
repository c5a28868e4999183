package schema

// TableDefinitions contains all the SQL statements to create the database tables.
// Every statement is idempotent so startup can run them unconditionally.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS contractor_websites (
		id VARCHAR(255) PRIMARY KEY,
		form_data JSONB NOT NULL,
		images JSONB NOT NULL,
		template VARCHAR(50) NOT NULL DEFAULT 'general',
		link TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	// Rows written before the template column existed pick up the default
	`ALTER TABLE contractor_websites ADD COLUMN IF NOT EXISTS template VARCHAR(50) NOT NULL DEFAULT 'general'`,
	`CREATE TABLE IF NOT EXISTS repliq_videos (
		id VARCHAR(255) PRIMARY KEY,
		website_url TEXT NOT NULL,
		display_mode VARCHAR(20) NOT NULL DEFAULT 'corner',
		video_position VARCHAR(20) NOT NULL DEFAULT 'bottom-right',
		video_shape VARCHAR(20) NOT NULL DEFAULT 'circle',
		composed_video_data TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS kv_store (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
}
