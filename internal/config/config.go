package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for remote vCard sources.
var UserAgent = "Go-Lifeclock/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Lifeclock"
	AppID          = "com.github.tartampluch.go-lifeclock"
	KeyringService = "com.github.tartampluch.go-lifeclock"
	LogFileName    = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// FilePermShared represents -rw-r--r--. Used for generated report files.
	FilePermShared fs.FileMode = 0644
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConf         = "conf"
	FlagPort         = "port"
	FlagBirthday     = "birthday"
	FlagLang         = "lang"
	FlagOut          = "out"
	FlagVCF          = "vcf"
	FlagURL          = "url"
	FlagUser         = "user"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescConf     = "Path to the YAML settings file"
	FlagDescPort     = "TCP port for the HTTP server (overrides settings)"
	FlagDescBirthday = "Birth date in YYYY-MM-DD format"
	FlagDescLang     = "Report language (en, fr)"
	FlagDescOut      = "Write the report to this file instead of stdout"
	FlagDescVCF      = "Path to a local .vcf contacts file"
	FlagDescURL      = "CardDAV or WebDAV URL of a remote contacts file"
	FlagDescUser     = "HTTP basic auth username (password is read from the system keyring)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeLocal = "local"
	SourceModeWeb   = "web"

	DefaultListenAddr = "127.0.0.1"
	DefaultPort       = "18080"
	DefaultLanguage   = "en"
	DefaultLeapYear   = 2000 // Leap year fallback for dates like --02-29

	// Rate limiting defaults: per client IP, fixed window.
	DefaultRateLimit  = 30
	DefaultRateWindow = time.Minute
)

// SupportedLanguages defines the list of available report languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Date & Report Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatFullDash is the canonical YYYY-MM-DD layout used on every
	// external surface (query parameter, JSON payloads, report headers).
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
	DateFormatStamp     = "2006-01-02 15:04:05"

	// Report bar chart: each component group is scaled to this many columns.
	ReportBarWidth = 36
	ReportBarRune  = "#"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Lifeclock//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "golifeclock"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
	UIDSalt         = "go-lifeclock-v1-"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RequestTimeout      = 10 * time.Second
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// HTTP Routes
// -----------------------------------------------------------------------------

const (
	RouteRoot     = "/"
	RouteAge      = "/api/age"
	RouteReport   = "/api/age/report"
	RouteCalendar = "/api/age/calendar"
	RouteHealth   = "/healthz"
	RouteMetrics  = "/metrics"

	QueryBirthday = "birthday"
	QueryLang     = "lang"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType   = "Content-Type"
	HeaderCacheControl  = "Cache-Control"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-Id"
	HeaderXContentType  = "X-Content-Type-Options"
	HeaderFrameOptions  = "X-Frame-Options"
	HeaderRetryAfter    = "Retry-After"
	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"

	MimeJSON         = "application/json; charset=utf-8"
	MimeTextPlain    = "text/plain; charset=utf-8"
	MimeTextHTML     = "text/html; charset=utf-8"
	MimeTextCalendar = "text/calendar; charset=utf-8"
	MimeNoSniff      = "nosniff"
	FrameDeny        = "DENY"
	CacheNoStore     = "no-store"

	RetryAfterSeconds = "10"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPortRequired   = "server port is required"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrLocalPathEmpty = "configuration error: local path is empty"
	ErrWebURLEmpty    = "configuration error: web URL is empty"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrModeUnsupport  = "configuration error: unsupported source mode"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrSettingsOpen   = "failed to open settings file"
	ErrSettingsParse  = "failed to parse settings file"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrRenderReport   = "failed to render report"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrSourceRequired = "either --vcf or --url must be given"
	ErrOutWrite       = "failed to write output file"
)

// -----------------------------------------------------------------------------
// User-Facing Validation Messages
// -----------------------------------------------------------------------------

// One message per entry in the input error taxonomy. These are the exact
// strings surfaced to callers; handlers never invent their own.
const (
	MsgInputMissing  = "missing birthday parameter, expected YYYY-MM-DD"
	MsgInputShape    = "malformed birthday, expected YYYY-MM-DD"
	MsgInputCalendar = "impossible calendar date"
	MsgInputFuture   = "birth date is in the future"
	MsgInternalErr   = "internal server error"
	MsgRateLimited   = "too many requests, slow down"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgSettingsLoaded  = "Settings loaded"
	MsgSettingsDefault = "No settings file, using defaults"
	MsgRequestDone     = "Request handled"
	MsgEngineRecovered = "Recovered from panic during request"
	MsgRateExceeded    = "Rate limit exceeded"
	MsgContactsLoaded  = "Contacts loaded"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Skipping invalid date format"
	MsgPassFail        = "Password retrieval failed (might be empty)"
	MsgWatchStart      = "Watch session started"
	MsgWatchStop       = "Watch session stopped"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgCtxCancel       = "Context cancelled, closing window"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Contacts Summary Output
// -----------------------------------------------------------------------------

const (
	// FormatContactLine: name, next date, turning age, countdown.
	FormatContactLine = "%-24s %s  turning %-3d  in %3dm %2dd %02d:%02d:%02d\n"

	// FormatContactNoYear: no age without a birth year.
	FormatContactNoYear = "%-24s %s  turning ?    in %3dm %2dd %02d:%02d:%02d\n"

	// FormatContactToday marks a contact whose birthday is today.
	FormatContactToday = "%-24s %s  turning %-3d  TODAY\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyMethod    = "method"
	LogKeyPath      = "path"
	LogKeyRequestID = "request_id"
	LogKeyRemoteIP  = "remote_ip"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyAddr      = "addr"
	LogKeyMode      = "mode"
	LogKeyUser      = "user"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyBirthday  = "birthday"
	LogKeyDuration  = "duration_ms"
	LogKeyPanic     = "panic"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompEngine   = "engine"
	CompServer   = "server"
	CompReport   = "report"
	CompFeed     = "feed"
	CompContacts = "contacts"
	CompFetcher  = "fetcher"
	CompUI       = "ui"
	CompI18n     = "i18n"
)
