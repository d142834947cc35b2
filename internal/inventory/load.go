package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var recordKeys = []string{"name", "groups", "password"}

// Load parses the dump file at path. Records are returned as stored: no
// deduplication and no normalization. Open and read failures are returned
// unchanged (fs.ErrNotExist, fs.ErrPermission, EISDIR), content problems
// as a *DecodeError.
func Load(path string) ([]UserRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	records, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return records, nil
}

// Decode reads exactly one JSON array of user records from r.
func Decode(r io.Reader) ([]UserRecord, error) {
	dec := json.NewDecoder(r)

	var raw []map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a JSON array, got null")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the JSON array")
	}

	records := make([]UserRecord, 0, len(raw))
	for i, obj := range raw {
		rec, err := decodeRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(obj map[string]json.RawMessage) (UserRecord, error) {
	if obj == nil {
		return UserRecord{}, errors.New("expected an object, got null")
	}
	for _, k := range recordKeys {
		if _, ok := obj[k]; !ok {
			return UserRecord{}, fmt.Errorf("missing key %q", k)
		}
	}
	if len(obj) != len(recordKeys) {
		for k := range obj {
			if k != "name" && k != "groups" && k != "password" {
				return UserRecord{}, fmt.Errorf("unknown key %q", k)
			}
		}
	}

	var rec UserRecord
	if err := json.Unmarshal(obj["name"], &rec.Name); err != nil {
		return UserRecord{}, fmt.Errorf("name: %w", err)
	}
	if err := json.Unmarshal(obj["groups"], &rec.Groups); err != nil {
		return UserRecord{}, fmt.Errorf("groups: %w", err)
	}
	if rec.Groups == nil {
		rec.Groups = []string{}
	}
	if err := json.Unmarshal(obj["password"], &rec.Password); err != nil {
		return UserRecord{}, fmt.Errorf("password: %w", err)
	}
	return rec, nil
}
