package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DEFAULT_WORKBOOK       = "spreadsheet/Caltech Picklers - October 2025.xlsx"
	DEFAULT_TEMPLATE_OUT   = "spreadsheet/template.xlsx"
	DEFAULT_CREDENTIALS    = "api.json"
	DEFAULT_PREVIEW_ROWS   = 5
	ENV_WORKBOOK           = "CHECKIN_WORKBOOK"
	ENV_WORKBOOK_FALLBACKS = "CHECKIN_WORKBOOK_FALLBACKS"
	ENV_TEMPLATE_OUT       = "CHECKIN_TEMPLATE_OUT"
	ENV_PREVIEW_ROWS       = "CHECKIN_PREVIEW_ROWS"
	ENV_CREDENTIALS_FILE   = "GOOGLE_CREDENTIALS_FILE"
	ENV_SPREADSHEET_ID     = "CHECKIN_SPREADSHEET_ID"
)

// Config holds the paths both tools work with. Command line flags
// override whatever is loaded here.
type Config struct {
	WorkbookPath    string
	Fallbacks       []string
	TemplateOut     string
	PreviewRows     int
	CredentialsFile string
	SpreadsheetID   string
}

// InspectPaths returns the primary workbook path followed by its fallbacks.
func (c Config) InspectPaths() []string {
	return append([]string{c.WorkbookPath}, c.Fallbacks...)
}

// LoadConfig reads .env (if present) and the environment. A missing .env
// file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		WorkbookPath:    DEFAULT_WORKBOOK,
		TemplateOut:     DEFAULT_TEMPLATE_OUT,
		PreviewRows:     DEFAULT_PREVIEW_ROWS,
		CredentialsFile: DEFAULT_CREDENTIALS,
	}
	if v := strings.TrimSpace(getenv(ENV_WORKBOOK)); v != "" {
		cfg.WorkbookPath = v
	}
	cfg.Fallbacks = SplitList(getenv(ENV_WORKBOOK_FALLBACKS))
	if v := strings.TrimSpace(getenv(ENV_TEMPLATE_OUT)); v != "" {
		cfg.TemplateOut = v
	}
	if v := strings.TrimSpace(getenv(ENV_PREVIEW_ROWS)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s must be a non-negative integer, got %q", ENV_PREVIEW_ROWS, v)
		}
		cfg.PreviewRows = n
	}
	if v := strings.TrimSpace(getenv(ENV_CREDENTIALS_FILE)); v != "" {
		cfg.CredentialsFile = v
	}
	cfg.SpreadsheetID = strings.TrimSpace(getenv(ENV_SPREADSHEET_ID))
	return cfg, nil
}

// SplitList splits a comma or path-list separated value, dropping blanks.
func SplitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == os.PathListSeparator
	})
	var out []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
