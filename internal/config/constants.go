package config

// Application constants
const (
	// Application Info
	AppName     = "roomroster"
	EnvPrefix   = "ROOMROSTER"
	ServiceName = "roomroster"

	// Logging outputs. stdout is reserved for command output.
	LogOutputStderr = "stderr"
	LogOutputFile   = "file"
	LogOutputBoth   = "both"
	LogOutputNone   = "none"

	// Trace exporters
	TraceExporterNone    = "none"
	TraceExporterConsole = "console"

	// Defaults
	DefaultLogLevel      = "warn"
	DefaultLogOutput     = LogOutputStderr
	DefaultLogFile       = "logs/roomroster.log"
	DefaultExportFormat  = "json"
	DefaultTraceExporter = TraceExporterNone
	DefaultSampleRatio   = 1.0
)

// ExportFormats lists the output format names accepted in configuration.
var ExportFormats = []string{"json", "xml"}
