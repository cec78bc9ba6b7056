// Shared helpers for consign CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabline/consign/internal/auth"
	"github.com/fabline/consign/internal/sqlite"
	"github.com/fabline/consign/pkg/types"
)

// sessionFileName holds the signed session token inside the config dir.
const sessionFileName = "session.token"

// openStore resolves the data directory and opens the SQLite store.
// The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// requireSession reads and validates the saved session token, returning
// the admin claim carried by it. Mutating commands call this before
// touching the store.
func requireSession() (types.AdminClaim, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return types.AdminClaim{}, err
	}

	raw, err := os.ReadFile(filepath.Join(configDir, sessionFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return types.AdminClaim{}, fmt.Errorf("no session found, run \"consign login\" first")
		}
		return types.AdminClaim{}, fmt.Errorf("read session: %w", err)
	}

	if configTokenSecret == "" {
		return types.AdminClaim{}, fmt.Errorf("no token secret configured, run \"consign init\" first")
	}

	claim, err := auth.ValidateSessionToken(strings.TrimSpace(string(raw)), configTokenSecret)
	if err != nil {
		return types.AdminClaim{}, fmt.Errorf("session rejected, run \"consign login\" again: %w", err)
	}
	return claim, nil
}

// saveSession writes a session token to the config dir.
func saveSession(token string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, sessionFileName)
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseAssignment splits a "name=value" argument. The value may be
// empty or contain further "=" characters.
func parseAssignment(arg string) (name, value string, err error) {
	name, value, found := strings.Cut(arg, "=")
	if !found || name == "" {
		return "", "", fmt.Errorf("expected name=value, got %q", arg)
	}
	return name, value, nil
}

// resolveTemplateByName finds a registry template by its
// case-insensitive name.
func resolveTemplateByName(store *sqlite.Store, name string) (*types.FieldTemplate, error) {
	templates, err := store.ListTemplates()
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, nil
		}
	}
	return nil, fmt.Errorf("field template %q: %w", name, types.ErrNotFound)
}
