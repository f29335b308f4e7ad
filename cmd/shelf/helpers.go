package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/openmediahub/mediashelf/pkg/types"
)

// Form defaults applied to explicit-identifier submissions, matching
// the pre-filled upload form.
const (
	defaultRights = "CC-BY"
	defaultFormat = "text/plain"
)

// validIdentifier reports whether id is non-empty and contains only
// letters and digits.
func validIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// parseFieldFlags turns repeated name=value flags into a field map.
func parseFieldFlags(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid field %q, expected name=value", pair)
		}
		fields[strings.TrimSpace(name)] = value
	}
	return fields, nil
}

// applyFormDefaults fills date, rights and format when the schema has
// them and the submission left them unset.
func applyFormDefaults(schema *types.FieldSet, fields map[string]string) {
	defaults := map[string]string{
		"date":   time.Now().Format("2006-01-02"),
		"rights": defaultRights,
		"format": defaultFormat,
	}
	for name, value := range defaults {
		if !schema.Has(name) {
			continue
		}
		if _, set := fields[name]; !set {
			fields[name] = value
		}
	}
}

// itemRecord lays an item out as a complete record: every schema field
// appears, unset ones as empty strings.
func itemRecord(it *types.Item) map[string]string {
	rec := make(map[string]string, schema.Len())
	for _, name := range schema.Names() {
		rec[name] = it.Field(name)
	}
	return rec
}

func printItemJSON(it *types.Item) error {
	out, err := json.MarshalIndent(itemRecord(it), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling item: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printItemText(it *types.Item) {
	for _, name := range schema.Names() {
		fmt.Printf("%s: %s\n", name, it.Field(name))
	}
}
