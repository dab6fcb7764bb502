package config

// Default paths for the database and upload directories
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./qazaqkitap.db"

	// DefaultCoversDir holds uploaded book cover images
	DefaultCoversDir = "./uploads/covers"

	// DefaultPdfsDir holds uploaded book PDFs
	DefaultPdfsDir = "./uploads/pdfs"
)
