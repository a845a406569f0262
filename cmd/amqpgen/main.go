// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command amqpgen regenerates the per-class method bindings under
// methods/ from the machine-readable protocol definition RabbitMQ ships
// (testdata/amqp-rabbitmq-0.9.1.min.json). The checked-in methods/*.go
// files are meant to read as if this tool produced them; it is not
// invoked by the codec at runtime, only by a developer refreshing the
// bindings against a newer schema revision.
package main

import (
	"fmt"
	"os"
	"text/template"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amqpgen",
	Short: "Generate AMQP method bindings from a protocol schema",
	Example: "  amqpgen --schema testdata/amqp-rabbitmq-0.9.1.min.json --out methods/generated.go\n" +
		"  amqpgen --schema testdata/amqp-rabbitmq-0.9.1.min.json --list",
	RunE: run,
}

var (
	schemaPath string
	outPath    string
	listOnly   bool
)

func init() {
	rootCmd.Flags().StringVar(&schemaPath, "schema", "testdata/amqp-rabbitmq-0.9.1.min.json", "protocol schema JSON path")
	rootCmd.Flags().StringVar(&outPath, "out", "", "output file (defaults to stdout)")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "list resolved (class,method) ids instead of generating code")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rawSchema mirrors the shape of the RabbitMQ-published protocol
// definition closely enough to decode it, without committing to every
// field the upstream file carries.
type rawSchema struct {
	Name         string       `mapstructure:"name"`
	MajorVersion int          `mapstructure:"major-version"`
	MinorVersion int          `mapstructure:"minor-version"`
	Revision     int          `mapstructure:"revision"`
	Domains      [][]string   `mapstructure:"domains"`
	Classes      []rawClass   `mapstructure:"classes"`
}

type rawClass struct {
	ID         int        `mapstructure:"id"`
	Name       string     `mapstructure:"name"`
	Content    bool       `mapstructure:"content"`
	Properties []rawField `mapstructure:"properties"`
	Methods    []rawMethod `mapstructure:"methods"`
}

type rawMethod struct {
	ID        int        `mapstructure:"id"`
	Name      string     `mapstructure:"name"`
	Content   bool       `mapstructure:"content"`
	Arguments []rawField `mapstructure:"arguments"`
}

type rawField struct {
	Name   string `mapstructure:"name"`
	Type   string `mapstructure:"type"`
	Domain string `mapstructure:"domain"`
}

// field is a rawField with its domain resolved to a concrete wire type.
type field struct {
	Name    string
	GoName  string
	Wire    string
	GoType  string
	Reader  string
	Writer  string
}

// method is a resolved (class, method) ready for templating.
type method struct {
	ClassName  string
	ClassID    int
	MethodName string
	MethodID   int
	GoName     string
	HasContent bool
	Fields     []field
}

func run(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	// goccy/go-json decodes into a generic map first; mapstructure then
	// fills in rawSchema, tolerating schema fields this tool doesn't
	// otherwise model.
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	var schema rawSchema
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &schema,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(generic); err != nil {
		return fmt.Errorf("decode schema: %w", err)
	}

	domains := map[string]string{}
	for _, d := range schema.Domains {
		if len(d) != 2 {
			continue
		}
		domains[d[0]] = d[1]
	}

	methods, errs := resolve(schema, domains)
	if errs != nil {
		return errs
	}

	if listOnly {
		for _, m := range methods {
			fmt.Printf("%s.%s\t(%d,%d)\n", m.ClassName, m.MethodName, m.ClassID, m.MethodID)
		}
		return nil
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return genTemplate.Execute(out, methods)
}

// resolve turns the raw schema into templatable methods, accumulating
// every problem it finds (duplicate ids, unresolvable domains, unknown
// field types) instead of stopping at the first one.
func resolve(schema rawSchema, domains map[string]string) ([]method, error) {
	var result error
	seen := map[[2]int]bool{}
	var out []method

	for _, c := range schema.Classes {
		for _, rm := range c.Methods {
			id := [2]int{c.ID, rm.ID}
			if seen[id] {
				result = multierror.Append(result, fmt.Errorf("duplicate method id (%d,%d) in class %s", c.ID, rm.ID, c.Name))
				continue
			}
			seen[id] = true

			var fields []field
			for _, rf := range rm.Arguments {
				wire := rf.Type
				if wire == "" {
					resolved, ok := domains[rf.Domain]
					if !ok {
						result = multierror.Append(result, fmt.Errorf("%s.%s: unknown domain %q", c.Name, rm.Name, rf.Domain))
						continue
					}
					wire = resolved
				}
				rw, ok := wireKinds[wire]
				if !ok {
					result = multierror.Append(result, fmt.Errorf("%s.%s: unknown wire type %q", c.Name, rm.Name, wire))
					continue
				}
				fields = append(fields, field{
					Name:   rf.Name,
					GoName: exportName(rf.Name),
					Wire:   wire,
					GoType: rw.goType,
					Reader: rw.reader,
					Writer: rw.writer,
				})
			}

			out = append(out, method{
				ClassName:  c.Name,
				ClassID:    c.ID,
				MethodName: rm.Name,
				MethodID:   rm.ID,
				GoName:     exportName(c.Name) + exportName(rm.Name),
				HasContent: c.Content && rm.Content,
				Fields:     fields,
			})
		}
	}
	return out, result
}

type wireKind struct {
	goType string
	reader string
	writer string
}

var wireKinds = map[string]wireKind{
	"octet":     {"uint8", "ReadOctet", "WriteOctet"},
	"short":     {"uint16", "ReadShort", "WriteShort"},
	"long":      {"uint32", "ReadLong", "WriteLong"},
	"longlong":  {"uint64", "ReadLonglong", "WriteLonglong"},
	"timestamp": {"uint64", "ReadTimestamp", "WriteTimestamp"},
	"shortstr":  {"string", "ReadShortstr", "WriteShortstr"},
	"longstr":   {"[]byte", "ReadLongstr", "WriteLongstr"},
	"table":     {"amqp091.Table", "ReadTable", "WriteTable"},
	"bit":       {"bool", "ReadBit", "WriteBit"},
}

// exportName turns a hyphenated schema identifier ("reply-code") into an
// exported Go identifier ("ReplyCode").
func exportName(s string) string {
	out := make([]byte, 0, len(s))
	upperNext := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' || c == '_' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	return string(out)
}

var genTemplate = template.Must(template.New("methods").Parse(`// Code generated by amqpgen. DO NOT EDIT.

package methods

import "github.com/packetd/amqp091"
{{range .}}
// {{.GoName}} is {{.ClassName}}.{{.MethodName}} ({{.ClassID}},{{.MethodID}}).
type {{.GoName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

func (m *{{.GoName}}) ClassID() uint16 { return {{.ClassID}} }
func (m *{{.GoName}}) ID() uint16      { return {{.MethodID}} }
func (m *{{.GoName}}) Name() string    { return "{{.ClassName}}.{{.MethodName}}" }

func (m *{{.GoName}}) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
{{- range .Fields}}
	if m.{{.GoName}}, err = r.{{.Reader}}(); err != nil {
		return err
	}
{{- end}}
	return nil
}

func (m *{{.GoName}}) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
{{- range .Fields}}
	if err := w.{{.Writer}}(m.{{.GoName}}); err != nil {
		return nil, err
	}
{{- end}}
	return finish(w)
}
{{end}}`))
