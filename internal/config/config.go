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

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Contact Book"
	AppID          = "com.github.tartampluch.contactbook"
	BinaryName     = "contactbook"
	HomeEnvVar     = "CONTACTBOOK_HOME"
	HomeDirName    = ".contactbook"
	ConfigFileName = "config.yaml"
	DataFileName   = "addressbook.yaml"
	LogFileName    = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess     = 0
	ExitCodeError       = 1
	ExitCodeInterrupted = 130
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book, the settings file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagHome        = "home"
	FlagData        = "data"
	FlagLang        = "lang"
	FlagDebug       = "debug"
	FlagNoColor     = "no-color"
	FlagDescHome    = "Directory holding config.yaml and the address book (overrides $" + HomeEnvVar + ")"
	FlagDescData    = "Path of the address book file"
	FlagDescLang    = "Language of console messages (en, fr)"
	FlagDescDebug   = "Enable debug logging to stderr"
	FlagDescNoColor = "Disable colored output"
	CmdShort        = "Console contact manager with typo-tolerant commands"
	CmdLong         = "An interactive address book: store phones, birthdays, emails, addresses, notes and tags, and get reminded of upcoming birthdays."
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage       = "en"
	DefaultBirthdayWindow = 7
	DefaultLeapYear       = 2000 // Leap year used for vCard dates without a year (--MM-DD)

	// Command resolution thresholds (similarity in [0,1]).
	DefaultAutoAcceptRatio = 0.9
	DefaultSuggestRatio    = 0.7

	// MinContainLength is the shortest typed word matched as a substring of
	// command names. Shorter words only go through similarity.
	MinContainLength = 3

	// MaxLineBytes bounds one console input line, terminator included.
	MaxLineBytes = 1 << 20

	// Phone validation bounds (digits).
	PhoneMinDigits = 9
	PhoneMaxDigits = 14

	BirthdayYearDigits = 4
)

// SupportedLanguages defines the list of available console languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// Answers accepted by the did-you-mean prompt.
var ConfirmAnswers = []string{"y", "yes"}

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Contact Book//Birthdays//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "contactbook"

	// ICalReminderTrigger fires the reminder one day before the birthday.
	ICalReminderTrigger = "-P1D"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion = "4.0"

	// StubVCalendar is the minimal valid iCalendar object written when no
	// contact has a birthday.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the user-facing DD.MM.YYYY layout.
	DateFormatBirthday = "02.01.2006"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	FallbackSummary = "Birthday: %s"
	FormatUID       = "%s-%d@%s"

	// FormatCorruptPath names the copy of an unreadable address book.
	FormatCorruptPath = "%s.corrupt-%d"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrContactNotFound   = "contact not found"
	ErrPhoneNotFound     = "phone not found"
	ErrEmailAlreadyUnset = "email is not set"
	ErrInvalidPhone      = "invalid phone format"
	ErrInvalidBirthday   = "invalid birthday"
	ErrInvalidEmail      = "invalid email format"
	ErrEmptyName         = "contact name must not be empty"
	ErrLoadBook          = "failed to load address book"
	ErrSaveBook          = "failed to save address book"
	ErrDecodeBook        = "failed to decode address book"
	ErrEncodeBook        = "failed to encode address book"
	ErrVCardParse        = "failed to parse vCard stream"
	ErrVCardEncode       = "failed to encode vCard"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrDateParse         = "unable to parse date"
	ErrConfigRead        = "cannot read config"
	ErrConfigParse       = "invalid config.yaml"
	ErrConfigWrite       = "failed to write config.yaml"
	ErrConfigRatio       = "resolver ratios must satisfy 0 < suggest <= auto_accept <= 1"
	ErrConfigWindow      = "birthday_window_days must not be negative"
	ErrUnsupportedLang   = "unsupported language"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app directory"
	ErrAppFailed         = "application failed unexpectedly"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrLineTooLong       = "input line too long"
	ErrQuarantine        = "failed to move unreadable address book aside"

	// Validation reasons (shown to the user).
	ReasonPhoneDigits  = "phone must contain digits only"
	ReasonPhoneLength  = "phone must have between 9 and 14 digits"
	ReasonDateFormat   = "Invalid date format. Use DD.MM.YYYY"
	ReasonMonthRange   = "Month must be between 1 and 12"
	ReasonYearDigits   = "Year must have 4 digits"
	ReasonDayRangeFmt  = "Day must be between 1 and %d"
	ReasonEmailPattern = "email must look like name@example.com"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgInterrupted    = "Interrupted, unsaved changes are lost"
	MsgBookLoaded     = "Address book loaded"
	MsgBookMissing    = "No address book found, starting empty"
	MsgBookLoadFailed = "Address book unreadable, starting empty"
	MsgBookSaved      = "Address book saved"
	MsgBookQuarantine = "Unreadable address book moved aside"
	MsgCommandExec    = "Command dispatched"
	MsgCommandFailed  = "Command failed"
	MsgCommandUnknown = "Unknown command"
	MsgLineSkipped    = "Skipping over-long input line"
	MsgResolved       = "Command resolved"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedField   = "Skipping invalid vCard field"
	MsgCalendarBuilt  = "Calendar generation successful"
	MsgVCardImported  = "vCard import finished"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgConfigDefault  = "No config file, using defaults"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgVersionOutput  = "%s version %s (commit %s, built %s, %s/%s)"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyInput     = "input"
	LogKeyKind      = "kind"
	LogKeyArgs      = "args"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "imported"
	LogKeyBackup    = "backup"

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
	CompSession  = "session"
	CompResolver = "resolver"
	CompStorage  = "storage"
	CompEngine   = "engine"
	CompConfig   = "config"
	CompI18n     = "i18n"
)
