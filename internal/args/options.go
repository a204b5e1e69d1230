package args

// CallbackOption is invoked by the flags parser with the value of the option
type CallbackOption func(string) error

const (
	// DefaultEncoder is used when neither the command nor the configuration names one
	DefaultEncoder = "Base32"
	// DefaultLogFormat is used when no log format has been configured
	DefaultLogFormat = "text"
	// DefaultLogColor is used when the color setting has not been configured
	DefaultLogColor = "auto"
)

// General holds the options shared by all commands. Options which may also come from the
// configuration file carry no `default` tag: go-flags would apply the default after the file has
// been read and overwrite its values. Fallbacks are resolved by the getters below instead.
var General struct {
	Verbose               []bool         `yaml:"verbose"                       short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `yaml:"-"                             short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"log-file,omitempty"            short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set or '-', defaults to stderr."`
	LogFormat             string         `yaml:"log-format,omitempty"          short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text). Defaults to text." choice:"text" choice:"json"`
	LogColor              string         `yaml:"log-color,omitempty"           short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? true, false or auto (default)" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto"`
	LogFullTimestamp      bool           `yaml:"log-full-timestamp,omitempty"            long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"log-report-caller,omitempty"             long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
	DefaultEncoder        string         `yaml:"default-encoder,omitempty"               long:"default-encoder"     env:"DEFAULT_ENCODER"      description:"Encoder used by commands which don't specify one (name or one-letter code). Defaults to Base32."`
}

// Encoder returns the configured default encoder
func Encoder() string {
	if General.DefaultEncoder == "" {
		return DefaultEncoder
	}
	return General.DefaultEncoder
}

// LogFormat returns the configured log format
func LogFormat() string {
	if General.LogFormat == "" {
		return DefaultLogFormat
	}
	return General.LogFormat
}

// LogColor returns the configured color setting
func LogColor() string {
	if General.LogColor == "" {
		return DefaultLogColor
	}
	return General.LogColor
}
