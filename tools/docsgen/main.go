// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen generates the parameter reference from the job schema
// table: a Markdown document for people and a YAML dump for tooling.
//
// Usage: docsgen <output-dir>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oqjob/oqjob/schema"
)

// Param is the flattened, marshal-friendly view of a schema entry.
type Param struct {
	Key           string   `yaml:"key"`
	Kind          string   `yaml:"kind"`
	Default       string   `yaml:"default,omitempty"`
	HasDefault    bool     `yaml:"hasDefault"`
	Required      bool     `yaml:"required,omitempty"`
	BlankDisables bool     `yaml:"blankDisables,omitempty"`
	Choices       []string `yaml:"choices,omitempty"`
	Unit          string   `yaml:"unit,omitempty"`
	Doc           string   `yaml:"doc,omitempty"`
}

// Section groups parameters under their section header.
type Section struct {
	Name   string  `yaml:"section"`
	Params []Param `yaml:"params"`
}

// TemplateData is what the Markdown template renders.
type TemplateData struct {
	Date     string
	Sections []Section
}

const markdownTemplate = `# Job configuration parameters

Generated {{.Date}}. Do not edit by hand; run docsgen instead.
{{range .Sections}}
## [{{.Name}}]

| Key | Type | Default | Notes |
| --- | --- | --- | --- |
{{- range .Params}}
| {{.Key}} | {{.Kind}}{{if .Unit}} ({{.Unit}}){{end}} | {{if .HasDefault}}` + "`{{if .Default}}{{.Default}}{{else}}(empty){{end}}`" + `{{else}}{{if .Required}}required{{else}}-{{end}}{{end}} | {{.Doc}}{{if .Choices}} One of: {{range $i, $c := .Choices}}{{if $i}}, {{end}}{{$c}}{{end}}.{{end}}{{if .BlankDisables}} A blank value disables it.{{end}} |
{{- end}}
{{end}}`

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <output-dir>")
		os.Exit(1)
	}
	outDir := os.Args[1]

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	sections := collect(schema.Job())

	// Machine-readable table.
	yamlBytes, err := yaml.Marshal(sections)
	if err != nil {
		panic(err)
	}
	yamlPath := filepath.Join(outDir, "parameters.yaml")
	fmt.Println("Generating", yamlPath)
	if err := os.WriteFile(yamlPath, yamlBytes, 0644); err != nil {
		panic(err)
	}

	// Human-readable reference.
	tmpl, err := template.New("parameters").Parse(markdownTemplate)
	if err != nil {
		panic(err)
	}

	mdPath := filepath.Join(outDir, "parameters.md")
	fmt.Println("Generating", mdPath)
	file, err := os.Create(mdPath)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	data := TemplateData{
		Date:     time.Now().Format("January 2, 2006"),
		Sections: sections,
	}
	if err := tmpl.Execute(file, data); err != nil {
		panic(err)
	}
}

// collect flattens the schema table into sections in declaration order.
func collect(table *schema.Table) []Section {
	bySection := map[string]*Section{}
	var order []*Section

	for _, entry := range table.Entries() {
		sec, ok := bySection[entry.Section]
		if !ok {
			sec = &Section{Name: entry.Section}
			bySection[entry.Section] = sec
			order = append(order, sec)
		}
		sec.Params = append(sec.Params, Param{
			Key:           entry.Key,
			Kind:          entry.Kind.String(),
			Default:       entry.Default,
			HasDefault:    entry.HasDefault,
			Required:      entry.Required,
			BlankDisables: entry.BlankDisables,
			Choices:       entry.Choices,
			Unit:          entry.Unit,
			Doc:           entry.Doc,
		})
	}

	out := make([]Section, len(order))
	for i, sec := range order {
		out[i] = *sec
	}
	return out
}
