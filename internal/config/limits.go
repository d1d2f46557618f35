package config

const (
	// MinFolderNameLength is the shortest accepted folder name. One-letter
	// names are rejected everywhere a folder is created or renamed.
	MinFolderNameLength = 2

	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to provide reasonable UX (names should be short
	// and descriptive).
	MaxFolderNameLength = 255

	// MaxDocumentNameLength is the maximum length for document names.
	// Same bound as folder names for consistency.
	MaxDocumentNameLength = 255
)
