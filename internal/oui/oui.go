// Package oui resolves MAC address prefixes to hardware vendors.
package oui

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/oui.json
var embeddedDB []byte

// Unknown is returned for prefixes missing from the database.
const Unknown = "Unknown"

type DB struct {
	vendors map[string]string
}

func LoadEmbedded() (*DB, error) {
	return Load(embeddedDB)
}

func Load(data []byte) (*DB, error) {
	raw := map[string]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode oui db: %w", err)
	}
	vendors := make(map[string]string, len(raw))
	for prefix, vendor := range raw {
		if key := normalizePrefix(prefix); len(key) == 6 {
			vendors[key] = strings.TrimSpace(vendor)
		}
	}
	return &DB{vendors: vendors}, nil
}

// Lookup returns the vendor for mac and whether the prefix is known.
func (db *DB) Lookup(mac string) (string, bool) {
	if db == nil {
		return "", false
	}
	vendor, ok := db.vendors[normalizePrefix(mac)]
	if !ok || vendor == "" {
		return "", false
	}
	return vendor, true
}

// Vendor is Lookup with the Unknown fallback.
func (db *DB) Vendor(mac string) string {
	if vendor, ok := db.Lookup(mac); ok {
		return vendor
	}
	return Unknown
}

func (db *DB) Len() int {
	if db == nil {
		return 0
	}
	return len(db.vendors)
}

func normalizePrefix(v string) string {
	replacer := strings.NewReplacer(":", "", "-", "", ".", "")
	v = strings.ToUpper(strings.TrimSpace(replacer.Replace(v)))
	if len(v) >= 6 {
		return v[:6]
	}
	return v
}
