package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed riddles.txt hints.txt migrations/*.sql
var FS embed.FS

// Migration is one embedded schema script.
type Migration struct {
	Name string
	SQL  string
}

func mustRead(name string) []byte {
	b, err := FS.ReadFile(name)
	if err != nil {
		panic("assets: missing embedded file " + name)
	}
	return b
}

// Riddles returns the bundled riddle records.
func Riddles() []byte { return mustRead("riddles.txt") }

// Hints returns the bundled hint records.
func Hints() []byte { return mustRead("hints.txt") }

// Migrations returns the embedded *.sql scripts in lexical order.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(FS, "migrations")
	if err != nil {
		return nil, err
	}
	var out []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			continue
		}
		b, err := FS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: e.Name(), SQL: string(b)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
