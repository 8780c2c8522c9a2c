// Package codegen renders the extracted monster specs as a generated C++
// source file exposing a single accessor function.
package codegen

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

const fileTemplate = `/**
 * @file vault_monster_data.cc
 * @author Jude Brown <bookofjude@users.sourceforge.net>
 * @version 1
 *
 * @section DESCRIPTION
 *
 * This file is automatically generated. Any changes to it will be discarded.
 *
**/
#include "AppHdr.h"

/**
 * Return a vector of vault-defined monster specification strings.
 *
 * @return A vector of std::strings.
 *
**/
std::vector<std::string> get_vault_monsters ()
{
    std::vector<std::string> {{.ListName}};
    {{.ListName}}.reserve({{len .Specs}});
{{- range .Specs}}
    {{$.ListName}}.push_back("{{.}}");
{{- end}}
    return {{.ListName}};
}
`

var tmpl = template.Must(template.New("vault_monster_data").Parse(fileTemplate))

// listName is the identifier of the vector built inside the generated
// accessor function.
const listName = "vault_monsters"

type templateData struct {
	ListName string
	Specs    []string
}

// Render writes the generated document for specs to w. Double quotes
// inside a spec are replaced with single quotes so every emitted string
// literal stays well formed; no other escaping is performed.
func Render(specs []string, w io.Writer) error {
	quoted := make([]string, len(specs))
	for i, spec := range specs {
		quoted[i] = strings.ReplaceAll(spec, `"`, "'")
	}

	return tmpl.Execute(w, templateData{
		ListName: listName,
		Specs:    quoted,
	})
}

// Write renders specs into the file at path, fully replacing any previous
// content. A failed write is fatal to the run; there is no partial-write
// recovery.
func Write(specs []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Render(specs, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
