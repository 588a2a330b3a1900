package env

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/getumbrel/umbrel-apps-sub001/pkg/files"
)

// Save writes the provided key/value pairs to a file in .env format.
//
// Keys are sorted so repeated saves with identical inputs produce
// byte-identical files, which keeps resolution idempotent and diffs small.
// Values containing whitespace, quotes or `#` are quoted with internal
// quotes and backslashes escaped. The write is atomic (temp plus rename)
// so the service launcher never reads a half-written env file.
func Save(path string, vars map[string]string) error {
	if len(vars) == 0 {
		return nil
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(quoteValue(vars[k]))
		b.WriteByte('\n')
	}

	if err := files.WriteAtomic(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save env file: %w", err)
	}
	return nil
}

// Load reads a file in .env format and returns its key/value pairs.
// A missing file is not an error; it yields an empty map so optional
// override files can simply be absent.
func Load(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to stat env file %s: %w", path, err)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	return vars, nil
}

// quoteValue renders a value safely for the .env format.
func quoteValue(v string) string {
	if !strings.ContainsAny(v, " \t\n\r\"'#=") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	v = strings.ReplaceAll(v, "\r", `\r`)
	return `"` + v + `"`
}
