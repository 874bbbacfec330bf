// Package source locates and decodes the portfolio dataset.
//
// The dataset is an ordered list of records. It may live in a JSON or YAML
// file, a SQLite database, or an S3 object; the format is picked from the
// location's extension. Loading happens once at startup. Nothing here is
// used after the store is built.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// DefaultRelPath is where the dataset lives relative to a deployment root.
const DefaultRelPath = "db/portfolio-data/ai-portfolio.json"

// containerPath is the dataset location inside the published container image.
const containerPath = "/app/" + DefaultRelPath

// EnvDataPath names the environment variable that points at the dataset.
const EnvDataPath = "DATA_PATH"

var (
	// ErrNoDataFile means none of the candidate locations exists.
	ErrNoDataFile = errors.New("no portfolio data file found")

	// ErrUnsupportedFormat means the location's extension maps to no decoder.
	ErrUnsupportedFormat = errors.New("unsupported data format")
)

// For testing: allow overriding how the executable directory is found.
var executable = os.Executable

// Format identifies a dataset encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// DetectFormat maps a file name or object key to its Format. Names without
// an extension are treated as JSON.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ─── Discovery ───────────────────────────────────────────────────────────────

// Candidates returns the locations to probe, most specific first: the
// explicit location (if any), $DATA_PATH (if set), the container path, two
// paths relative to the executable, and the working-directory default.
func Candidates(explicit string) []string {
	var out []string
	add := func(p string) {
		if p == "" {
			return
		}
		for _, existing := range out {
			if existing == p {
				return
			}
		}
		out = append(out, p)
	}

	add(explicit)
	add(os.Getenv(EnvDataPath))
	add(containerPath)
	if exe, err := executable(); err == nil {
		dir := filepath.Dir(exe)
		add(filepath.Join(dir, "..", DefaultRelPath))
		add(filepath.Join(dir, "..", "..", DefaultRelPath))
	}
	add(DefaultRelPath)
	return out
}

// Locate returns the first candidate that exists as a regular file. S3
// locations are returned as soon as they are reached, without probing.
func Locate(candidates []string) (string, error) {
	for _, c := range candidates {
		if isS3(c) {
			return c, nil
		}
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w at %s in any expected location", ErrNoDataFile, DefaultRelPath)
}

// ─── Loading ─────────────────────────────────────────────────────────────────

// Dataset is a decoded and validated record list plus where it came from.
type Dataset struct {
	Location string
	Records  []portfolio.Record
	Warnings []string
}

// Loader reads datasets from local files or S3.
type Loader struct {
	logger *zap.Logger
	s3     S3Client
	newS3  func(ctx context.Context) (S3Client, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) { ld.logger = l }
}

// WithS3Client sets the S3 client. Without it, a client is built from the
// default AWS configuration the first time an s3:// location is loaded.
func WithS3Client(c S3Client) Option {
	return func(ld *Loader) { ld.s3 = c }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	ld := &Loader{
		logger: zap.NewNop(),
		newS3:  NewS3Client,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Discover probes Candidates(explicit) and loads the first match.
func (l *Loader) Discover(ctx context.Context, explicit string) (*Dataset, error) {
	candidates := Candidates(explicit)
	l.logger.Debug("probing data locations", zap.Strings("candidates", candidates))

	location, err := Locate(candidates)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, location)
}

// Load decodes and validates the dataset at location.
func (l *Loader) Load(ctx context.Context, location string) (*Dataset, error) {
	records, err := l.read(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}

	warnings := Validate(records)
	for _, w := range warnings {
		l.logger.Warn("portfolio data", zap.String("location", location), zap.String("warning", w))
	}

	return &Dataset{Location: location, Records: records, Warnings: warnings}, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]portfolio.Record, error) {
	if isS3(location) {
		return l.readS3(ctx, location)
	}

	format, err := DetectFormat(location)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		return readSQLite(ctx, location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return Decode(format, data)
}

// ─── Validation ──────────────────────────────────────────────────────────────

// Validate reports suspicious records as warnings. Every record is kept:
// blank titles or categories are still served, and lookups return the first
// record for a duplicated id.
func Validate(records []portfolio.Record) []string {
	var warnings []string
	seen := make(map[int64]int, len(records))

	for i, r := range records {
		if strings.TrimSpace(r.Category) == "" {
			warnings = append(warnings, fmt.Sprintf("record %d (id %d): missing category", i, r.ID))
		}
		if strings.TrimSpace(r.Title) == "" {
			warnings = append(warnings, fmt.Sprintf("record %d (id %d): missing title", i, r.ID))
		}
		if first, ok := seen[r.ID]; ok {
			warnings = append(warnings, fmt.Sprintf("record %d duplicates id %d of record %d", i, r.ID, first))
			continue
		}
		seen[r.ID] = i
	}
	return warnings
}
