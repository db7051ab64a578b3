package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates empty up/down script pairs with the next sequence number.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration writes NNNNNN_name.up.sql and NNNNNN_name.down.sql and
// returns the up file path.
func (g *Generator) CreateMigration(name string) (string, error) {
	if !migrationNamePattern.MatchString(name) {
		return "", fmt.Errorf("migration name must be lower snake case, got %q", name)
	}
	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	next, err := g.nextVersion()
	if err != nil {
		return "", err
	}
	prefix := fmt.Sprintf("%06d_%s", next, name)
	upPath := filepath.Join(g.scriptsPath, prefix+".up.sql")
	downPath := filepath.Join(g.scriptsPath, prefix+".down.sql")

	if err := os.WriteFile(upPath, []byte("-- "+name+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downPath, []byte("-- rollback "+name+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created", "up_file", upPath, "down_file", downPath)
	return upPath, nil
}

func (g *Generator) nextVersion() (int, error) {
	entries, err := os.ReadDir(g.scriptsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	var versions []int
	for _, e := range entries {
		head, _, ok := strings.Cut(e.Name(), "_")
		if !ok || e.IsDir() {
			continue
		}
		if v, err := strconv.Atoi(head); err == nil {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		return 1, nil
	}
	sort.Ints(versions)
	return versions[len(versions)-1] + 1, nil
}
