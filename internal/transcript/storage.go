package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const entryTypeExchange = "exchange"

type entryHeader struct {
	EntryType string `json:"entryType"`
}

// Append adds exchanges to the transcript file, creating it if necessary.
// Entries of other types already in the file are preserved untouched.
func Append(path string, exchanges ...Exchange) error {
	if path == "" || len(exchanges) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	entries, err := loadEntries(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		entries = nil
	}
	now := time.Now().UTC()
	for _, exchange := range exchanges {
		exchange.EntryType = entryTypeExchange
		if exchange.ExportedAt.IsZero() {
			exchange.ExportedAt = now
		}
		raw, err := json.Marshal(exchange)
		if err != nil {
			return err
		}
		entries = append(entries, raw)
	}
	return writeEntries(path, entries)
}

// Load returns every exchange stored in the transcript file.
func Load(path string) ([]Exchange, error) {
	entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}
	exchanges := make([]Exchange, 0, len(entries))
	for _, raw := range entries {
		var header entryHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, err
		}
		if header.EntryType != entryTypeExchange {
			continue
		}
		var exchange Exchange
		if err := json.Unmarshal(raw, &exchange); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, exchange)
	}
	return exchanges, nil
}

func writeEntries(path string, entries []json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func loadEntries(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
