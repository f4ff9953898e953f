package config

// Application settings.
const (
	AppName    = "focal"
	DBFileName = "focal.db"
)

// Themes.
const (
	DefaultTheme = "default"
)

// Ad card rotation interval while the timer screen ticks, in seconds.
const AdRotateSeconds = 20

// Report defaults.
const (
	ReportSessionLimit = 50
)
