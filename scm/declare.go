/*
Copyright (C) 2024-2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "io"
import "os"
import "fmt"
import "strings"
import "path/filepath"
import "github.com/google/btree"

// Variadic as MaxParameter allows any number of arguments.
const Variadic = -1

type Builtin func(in *Interpreter, a ...Scmer) (Scmer, error)

type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // Variadic for no upper bound
	Params       []DeclarationParameter
	Returns      string // any | text | number | bool | list | nil
	Fn           Builtin // nil for special forms
}

type DeclarationParameter struct {
	Name string
	Type string // any | text | number | bool | list | symbol | nil, alternatives separated by |
	Desc string
}

// Registry is the table of builtins. It is filled during package init and
// sealed afterwards, so concurrent readers need no locking.
type Registry struct {
	tree   *btree.BTreeG[*Declaration]
	titles []string // declaration order, chapter titles prefixed with #
	sealed bool
}

func declarationLess(a, b *Declaration) bool {
	return a.Name < b.Name
}

func NewRegistry() *Registry {
	return &Registry{tree: btree.NewG[*Declaration](8, declarationLess)}
}

// Builtins holds every operation of the language.
var Builtins = NewRegistry()

func DeclareTitle(r *Registry, title string) {
	if r.sealed {
		panic("DeclareTitle on sealed registry: " + title)
	}
	r.titles = append(r.titles, "#"+title)
}

func Declare(r *Registry, def *Declaration) {
	if r.sealed {
		panic("Declare on sealed registry: " + def.Name)
	}
	if _, exists := r.tree.ReplaceOrInsert(def); exists {
		panic("duplicate declaration: " + def.Name)
	}
	r.titles = append(r.titles, def.Name)
}

func (r *Registry) Seal() {
	r.sealed = true
}

func (r *Registry) Lookup(name string) (*Declaration, bool) {
	return r.tree.Get(&Declaration{Name: name})
}

// Declarations returns all entries ordered by name.
func (r *Registry) Declarations() []*Declaration {
	result := make([]*Declaration, 0, r.tree.Len())
	r.tree.Ascend(func(d *Declaration) bool {
		result = append(result, d)
		return true
	})
	return result
}

func (r *Registry) Len() int {
	return r.tree.Len()
}

func typeMatches(v Scmer, required string) bool {
	for _, r := range strings.Split(required, "|") {
		switch r {
		case "any":
			return true
		case "number":
			if v.IsNumber() {
				return true
			}
		case "list":
			if v.IsSlice() {
				return true
			}
		case "text":
			if v.IsString() {
				return true
			}
		case "bool":
			if v.IsBool() {
				return true
			}
		case "symbol":
			if v.IsSymbol() {
				return true
			}
		case "nil":
			if v.IsNil() {
				return true
			}
		}
	}
	return false
}

// check validates arity and operand types before the builtin runs.
func (def *Declaration) check(args []Scmer) *Mismatch {
	if len(args) < def.MinParameter {
		return mismatchf(def.Name, "expects at least %d parameters, got %d", def.MinParameter, len(args))
	}
	if def.MaxParameter != Variadic && len(args) > def.MaxParameter {
		return mismatchf(def.Name, "expects at most %d parameters, got %d", def.MaxParameter, len(args))
	}
	if len(def.Params) == 0 {
		return nil
	}
	for i, arg := range args {
		j := i
		if j >= len(def.Params) {
			j = len(def.Params) - 1 // last parameter repeats
		}
		if p := def.Params[j]; !typeMatches(arg, p.Type) {
			return mismatchf(def.Name, "expects parameter %d (%s) to be %s, but found %s", i+1, p.Name, p.Type, arg.TypeName())
		}
	}
	return nil
}

func (def *Declaration) arity() string {
	if def.MaxParameter == Variadic {
		return fmt.Sprintf("%d-n", def.MinParameter)
	}
	return fmt.Sprintf("%d-%d", def.MinParameter, def.MaxParameter)
}

// Help writes the list of all builtins, or the details of one, to w.
func (r *Registry) Help(w io.Writer, name string) error {
	if name == "" {
		fmt.Fprintln(w, "Available functions:")
		for _, title := range r.titles {
			if title[0] == '#' {
				fmt.Fprintln(w, "")
				fmt.Fprintln(w, "-- "+title[1:]+" --")
			} else {
				def, _ := r.Lookup(title)
				fmt.Fprintln(w, "  "+title+": "+strings.Split(def.Desc, "\n")[0])
			}
		}
		fmt.Fprintln(w, "")
		_, err := fmt.Fprintln(w, "get further information by typing (help \"functionname\")")
		return err
	}
	def, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("function not found: %s", name)
	}
	fmt.Fprintln(w, "Help for: "+def.Name)
	fmt.Fprintln(w, "===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, def.Desc)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Allowed number of parameters:", def.arity())
	fmt.Fprintln(w, "")
	for _, p := range def.Params {
		fmt.Fprintln(w, " - "+p.Name+" ("+p.Type+"): "+p.Desc)
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "chapter"
	}
	return b.String()
}

type chapter struct {
	Title string
	Slug  string
	Fns   []*Declaration
}

func (r *Registry) chapters() []*chapter {
	var result []*chapter
	var current *chapter
	used := map[string]bool{}
	for _, t := range r.titles {
		if t[0] == '#' {
			slug := slugify(t[1:])
			for i := 2; used[slug]; i++ {
				slug = fmt.Sprintf("%s-%d", slugify(t[1:]), i)
			}
			used[slug] = true
			current = &chapter{Title: t[1:], Slug: slug}
			result = append(result, current)
			continue
		}
		if current == nil {
			current = &chapter{Title: "General", Slug: "general"}
			used[current.Slug] = true
			result = append(result, current)
		}
		def, _ := r.Lookup(t)
		current.Fns = append(current.Fns, def)
	}
	return result
}

// WriteDocumentation generates index.md plus one Markdown file per chapter.
func (r *Registry) WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}
	chapters := r.chapters()

	indexPath := filepath.Join(folder, "index.md")
	index, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer index.Close()
	fmt.Fprint(index, "# Documentation\n\n")
	for _, ch := range chapters {
		if len(ch.Fns) > 0 {
			fmt.Fprintf(index, "- [%s](%s.md)\n", ch.Title, ch.Slug)
		}
	}

	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		if err := writeChapter(filepath.Join(folder, ch.Slug+".md"), ch); err != nil {
			return err
		}
	}
	return index.Close()
}

func writeChapter(path string, ch *chapter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# %s\n\n", ch.Title)
	for _, def := range ch.Fns {
		fmt.Fprintf(f, "## %s\n\n", def.Name)
		if def.Desc != "" {
			fmt.Fprintf(f, "%s\n\n", def.Desc)
		}
		fmt.Fprintf(f, "**Allowed number of parameters:** %s\n\n", def.arity())
		fmt.Fprint(f, "### Parameters\n\n")
		if len(def.Params) == 0 {
			fmt.Fprint(f, "_This function has no parameters._\n\n")
		} else {
			for _, p := range def.Params {
				fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
			}
			fmt.Fprintln(f)
		}
		fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
	}
	return f.Close()
}

func Help(w io.Writer, name string) error {
	return Builtins.Help(w, name)
}

func WriteDocumentation(folder string) error {
	return Builtins.WriteDocumentation(folder)
}
