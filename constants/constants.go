package constants

import "os"

const (
	EnvConfig      = "CHORDGRID_CONFIG"
	EnvAddr        = "CHORDGRID_ADDR"
	EnvExportPath  = "CHORDGRID_EXPORT_PATH"
	EnvLogLevel    = "CHORDGRID_LOG_LEVEL"
	EnvCORSOrigins = "CHORDGRID_CORS_ORIGINS"
)

const DefaultAddr = ":8080"

// print layout has room for 8 characters in the part name column
const DefaultNameLimit = 8

const (
	DefaultPartName        = "PART"
	DefaultMeasuresTotal   = 8
	DefaultMeasuresPerLine = 4
	MinMeasuresPerLine     = 1
	MaxMeasuresPerLine     = 10
	MaxMeasuresTotal       = 512
)

const (
	DefaultTitle = "TITLE"
	DefaultTempo = 120
)

func GetConfigPath() string {
	return os.Getenv(EnvConfig)
}
