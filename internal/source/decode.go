package source

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// Decode parses an encoded record list. SQLite is not a byte format and is
// rejected here; use Loader.Load for databases.
func Decode(format Format, data []byte) ([]portfolio.Record, error) {
	var records []portfolio.Record

	switch format {
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fmt.Errorf("parsing JSON: empty document")
		}
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if records == nil {
		records = []portfolio.Record{}
	}
	return records, nil
}
