// Package archcheck inspects the services package source and reports where
// writes go straight to table repos instead of through an aggregate.
package archcheck

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

type RepoField struct {
	Struct   string `json:"struct"`
	Name     string `json:"name"`
	RepoType string `json:"repo_type"`
	Entity   string `json:"entity"`
}

type MethodStats struct {
	Struct               string   `json:"struct"`
	Method               string   `json:"method"`
	File                 string   `json:"file"`
	Line                 int      `json:"line"`
	RepoWriteCalls       int      `json:"repo_write_calls"`
	RepoFieldsWritten    []string `json:"repo_fields_written"`
	AggregateWriteCalls  int      `json:"aggregate_write_calls"`
	AggregateWritesMade  []string `json:"aggregate_writes_made"`
	MultiRepoCoordinator bool     `json:"multi_repo_coordinator"`
}

type Report struct {
	RepoWriteCallsites      int           `json:"repo_write_callsites"`
	AggregateWriteCallsites int           `json:"aggregate_write_callsites"`
	Violations              []MethodStats `json:"violations"`
	Methods                 []MethodStats `json:"methods"`
	RepoFields              []RepoField   `json:"repo_fields"`
}

// Clean reports whether no service method writes through a repo directly.
func (r Report) Clean() bool { return r.RepoWriteCallsites == 0 }

var repoWriteMethods = map[string]bool{
	"Create":             true,
	"UpdateFields":       true,
	"DeleteByID":         true,
	"DeleteByRecipeID":   true,
	"DeleteByMealPlanID": true,
}

var aggregateWriteMethods = map[string]bool{
	"AddIngredient":    true,
	"UpdateIngredient": true,
	"DeleteIngredient": true,
	"AddRecipe":        true,
	"UpdateRecipe":     true,
	"DeleteRecipe":     true,
	"AddMealPlan":      true,
	"UpdateMealPlan":   true,
	"DeleteMealPlan":   true,
}

type structFields struct {
	repos      map[string]RepoField
	aggregates map[string]string
}

// Audit parses the non-test Go files of the package in dir.
func Audit(dir string) (Report, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		name := fi.Name()
		return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
	}, 0)
	if err != nil {
		return Report{}, fmt.Errorf("parse %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return Report{}, fmt.Errorf("no Go package in %s", dir)
	}

	fields := map[string]structFields{}
	var files []*ast.File
	var names []string
	for _, pkg := range pkgs {
		for name, f := range pkg.Files {
			names = append(names, name)
			files = append(files, f)
			collectStructFields(f, fields)
		}
	}

	var methods []MethodStats
	for i, f := range files {
		collectMethodStats(fset, f, filepath.ToSlash(filepath.Base(names[i])), fields, &methods)
	}
	return buildReport(fields, methods), nil
}

func collectStructFields(file *ast.File, out map[string]structFields) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok || st.Fields == nil {
				continue
			}
			sf := structFields{repos: map[string]RepoField{}, aggregates: map[string]string{}}
			for _, field := range st.Fields.List {
				sel, ok := field.Type.(*ast.SelectorExpr)
				if !ok || len(field.Names) == 0 {
					continue
				}
				pkgIdent, ok := sel.X.(*ast.Ident)
				if !ok {
					continue
				}
				typeName := sel.Sel.Name
				for _, n := range field.Names {
					switch {
					case pkgIdent.Name == "repos" && strings.HasSuffix(typeName, "Repo"):
						sf.repos[n.Name] = RepoField{
							Struct:   ts.Name.Name,
							Name:     n.Name,
							RepoType: typeName,
							Entity:   strings.TrimSuffix(typeName, "Repo"),
						}
					case pkgIdent.Name == "domainagg" && strings.HasSuffix(typeName, "Aggregate"):
						sf.aggregates[n.Name] = typeName
					}
				}
			}
			if len(sf.repos) > 0 || len(sf.aggregates) > 0 {
				out[ts.Name.Name] = sf
			}
		}
	}
}

func collectMethodStats(fset *token.FileSet, file *ast.File, relFile string, fields map[string]structFields, out *[]MethodStats) {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || fd.Body == nil || len(fd.Recv.List) == 0 {
			continue
		}
		recvName, recvType := recvInfo(fd.Recv.List[0])
		sf, ok := fields[recvType]
		if !ok || recvName == "" {
			continue
		}

		stats := MethodStats{
			Struct: recvType,
			Method: fd.Name.Name,
			File:   relFile,
			Line:   fset.Position(fd.Pos()).Line,
		}
		written := map[string]bool{}
		aggWrites := map[string]bool{}

		// matches recv.field.Method(...)
		ast.Inspect(fd.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			fnSel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			rcvSel, ok := fnSel.X.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			base, ok := rcvSel.X.(*ast.Ident)
			if !ok || base.Name != recvName {
				return true
			}
			field, method := rcvSel.Sel.Name, fnSel.Sel.Name
			if _, isRepo := sf.repos[field]; isRepo && repoWriteMethods[method] {
				stats.RepoWriteCalls++
				written[field] = true
			}
			if _, isAgg := sf.aggregates[field]; isAgg && aggregateWriteMethods[method] {
				stats.AggregateWriteCalls++
				aggWrites[method] = true
			}
			return true
		})
		stats.RepoFieldsWritten = sortedKeys(written)
		stats.AggregateWritesMade = sortedKeys(aggWrites)
		stats.MultiRepoCoordinator = len(written) >= 2
		*out = append(*out, stats)
	}
}

func buildReport(fields map[string]structFields, methods []MethodStats) Report {
	sort.Slice(methods, func(i, j int) bool {
		if methods[i].File == methods[j].File {
			return methods[i].Line < methods[j].Line
		}
		return methods[i].File < methods[j].File
	})
	report := Report{Methods: methods}
	for _, m := range methods {
		report.RepoWriteCallsites += m.RepoWriteCalls
		report.AggregateWriteCallsites += m.AggregateWriteCalls
		if m.RepoWriteCalls > 0 {
			report.Violations = append(report.Violations, m)
		}
	}
	for _, sf := range fields {
		for _, rf := range sf.repos {
			report.RepoFields = append(report.RepoFields, rf)
		}
	}
	sort.Slice(report.RepoFields, func(i, j int) bool {
		a, b := report.RepoFields[i], report.RepoFields[j]
		if a.Struct == b.Struct {
			return a.Name < b.Name
		}
		return a.Struct < b.Struct
	})
	return report
}

func recvInfo(field *ast.Field) (string, string) {
	if field == nil || len(field.Names) == 0 {
		return "", ""
	}
	recvName := field.Names[0].Name
	switch t := field.Type.(type) {
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return recvName, id.Name
		}
	case *ast.Ident:
		return recvName, t.Name
	}
	return "", ""
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
