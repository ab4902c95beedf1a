package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/clozequiz/internal/cloze"
)

// maxLineSize bounds one JSON line of a card file.
const maxLineSize = 1 << 20

// ReadCardFile parses a JSON Lines card file. Blank lines are skipped. A line
// that does not parse, or that carries a malformed blank, fails the whole read.
func ReadCardFile(r io.Reader) ([]CardRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var records []CardRecord
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record CardRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("line %d: json.Unmarshal() > %w", lineNumber, err)
		}
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan() > %w", err)
	}
	return records, nil
}

func validateRecord(record CardRecord) error {
	if record.FromLang == "" || record.ToLang == "" {
		return fmt.Errorf("from_lang and to_lang are required")
	}
	if len(record.Tokens) == 0 {
		return fmt.Errorf("resulting_tokens is empty")
	}
	for _, token := range record.Tokens {
		if !cloze.ClaimsCloze(token) {
			continue
		}
		if _, err := cloze.Parse(token); err != nil {
			return err
		}
	}
	return nil
}

// ReadLanguageFile parses a YAML map of ISO 639-3 codes to language names.
// The result is sorted by code.
func ReadLanguageFile(r io.Reader) ([]Language, error) {
	var names map[string]string
	if err := yaml.NewDecoder(r).Decode(&names); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.Decode() > %w", err)
	}

	languages := make([]Language, 0, len(names))
	for code, name := range names {
		if len(code) != 3 {
			return nil, fmt.Errorf("invalid ISO 639-3 code %q", code)
		}
		languages = append(languages, Language{ISO693_3: code, Name: name})
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].ISO693_3 < languages[j].ISO693_3
	})
	return languages, nil
}
