// Command arity generates the per-arity callback types of package callback.
//
// For every action arity 0..MaxAction it emits the ActionN handler
// interface, its ActionFuncN adapter, the CallbackN type, its NewN
// constructor and the dispatchN entry point. For every conditional arity
// 0..MaxConditional it emits the PredicateN, PredicateFuncN,
// ConditionalN, NewConditionalN and decideN counterparts.
//
// Usage (from hook/callback, via go generate):
//
//	go run ../../internal/hook/gen/arity -out arity_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"
)

const (
	// MaxAction is the largest action callback arity.
	MaxAction = 8
	// MaxConditional is the largest conditional callback arity.
	MaxConditional = 4
)

func main() {
	out := flag.String("out", "arity_gen.go", "output file")
	flag.Parse()

	src, err := Render(MaxAction, MaxConditional)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arity: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "arity: %v\n", err)
		os.Exit(1)
	}
}

// family describes one callback family at one arity.
type family struct {
	N          int
	Name       string // Callback, Conditional
	Kind       string // doc noun
	Base       string // embedded base type
	Handler    string // Action, Predicate
	Method     string // Analyze, Proceed
	Ret        string // "" or " bool"
	Ctor       string // New, NewConditional
	Entry      string // dispatch, decide
	Miss       string // flag returned when the handle is retired
	TParams    string
	TArgs      string
	WParams    string
	WArgs      string
	Params     string
	CallArgs   string
	CtorParams string
	Fields     []string
	FieldInit  string
	Extracts   string
	Decoded    string
	Count      string
	Passes     string
}

var numbers = [...]string{"no", "one", "two", "three", "four", "five", "six", "seven", "eight"}

func newFamily(n int, conditional bool) family {
	f := family{
		N:        n,
		Name:     "Callback",
		Kind:     "callback",
		Base:     "action",
		Handler:  "Action",
		Method:   "Analyze",
		Ctor:     "New",
		Entry:    "dispatch",
		Miss:     "scope.Proceed",
		Fields:   []string{},
		Extracts: "",
	}
	if conditional {
		f.Name = "Conditional"
		f.Kind = "conditional callback"
		f.Base = "condition"
		f.Handler = "Predicate"
		f.Method = "Proceed"
		f.Ret = " bool"
		f.Ctor = "NewConditional"
		f.Entry = "decide"
		f.Miss = "scope.Stop"
	}

	var tparams, wparams, params, callArgs, ctorParams, init, extracts, decoded, names []string
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		tparams = append(tparams, "N"+s, "W"+s)
		wparams = append(wparams, "W"+s)
		params = append(params, "w"+s+" W"+s)
		callArgs = append(callArgs, "w"+s)
		desc := "arg.Descriptor[N" + s + ", W" + s + "]"
		ctorParams = append(ctorParams, "a"+s+" "+desc)
		f.Fields = append(f.Fields, "a"+s+" "+desc)
		init = append(init, "a"+s+": a"+s)
		extracts = append(extracts, "a"+s+".Extraction()")
		decoded = append(decoded, "c.a"+s+".Decode(f.Values["+strconv.Itoa(i-1)+"])")
		names = append(names, "a"+s)
	}
	if n > 0 {
		f.TParams = "[" + strings.Join(tparams, ", ") + " any]"
		f.TArgs = "[" + strings.Join(tparams, ", ") + "]"
		f.WParams = "[" + strings.Join(wparams, ", ") + " any]"
		f.WArgs = "[" + strings.Join(wparams, ", ") + "]"
		f.Extracts = ", " + strings.Join(extracts, ", ")
	}
	f.Params = strings.Join(append(params, "x arg.Extra"), ", ")
	f.CallArgs = strings.Join(append(callArgs, "x"), ", ")
	f.CtorParams = strings.Join(append([]string{"hd " + f.Handler + strconv.Itoa(n) + f.WArgs}, ctorParams...), ", ")
	f.FieldInit = strings.Join(append([]string{"hd: hd"}, init...), ", ")
	f.Decoded = strings.Join(append(decoded, "arg.ExtraOf(f.Extra)"), ", ")

	switch n {
	case 0:
		f.Count = "no arguments"
		f.Passes = "only the extra arguments"
	case 1:
		f.Count = "one argument"
		f.Passes = "the value described by a1"
	default:
		f.Count = numbers[n] + " arguments"
		f.Passes = "the values described by " + strings.Join(names[:n-1], ", ") + " and " + names[n-1]
	}
	return f
}

var tmpl = template.Must(template.New("arity").Parse(`// Code generated by internal/hook/gen/arity; DO NOT EDIT.

package callback

import (
	"github.com/kolkov/dynhook/hook/arg"
	"github.com/kolkov/dynhook/hook/scope"
)
{{range .}}
// {{.Handler}}{{.N}} is implemented by handlers of {{.Name}}{{.N}}.
type {{.Handler}}{{.N}}{{.WParams}} interface {
	{{.Method}}({{.Params}}){{.Ret}}
}

// {{.Handler}}Func{{.N}} adapts a function to {{.Handler}}{{.N}}.
type {{.Handler}}Func{{.N}}{{.WParams}} func({{.Params}}){{.Ret}}

// {{.Method}} calls f.
func (f {{.Handler}}Func{{.N}}{{.WArgs}}) {{.Method}}({{.Params}}){{.Ret}} { {{if .Ret}}return {{end}}f({{.CallArgs}}) }

// {{.Name}}{{.N}} is a {{.Kind}} over {{.Count}}.
type {{.Name}}{{.N}}{{.TParams}} struct {
	{{.Base}}

	hd {{.Handler}}{{.N}}{{.WArgs}}
{{range .Fields}}	{{.}}
{{end}}}

// {{.Ctor}}{{.N}} creates a {{.Kind}} that passes {{.Passes}} to hd.
func {{.Ctor}}{{.N}}{{.TParams}}({{.CtorParams}}) *{{.Name}}{{.N}}{{.TArgs}} {
	if hd == nil {
		panic("callback: {{.Ctor}}{{.N}} with nil handler")
	}
	c := &{{.Name}}{{.N}}{{.TArgs}}{{"{"}}{{.FieldInit}}}
	c.init(c, {{.Entry}}{{.N}}{{.TArgs}}{{.Extracts}})
	return c
}

// {{.Entry}}{{.N}} is the entry point of {{.Name}}{{.N}}.
func {{.Entry}}{{.N}}{{.TParams}}(ctx scope.Handle, f scope.Frame) scope.Flag {
	c, ok := resolve[*{{.Name}}{{.N}}{{.TArgs}}](ctx, f, {{.N}})
	if !ok {
		return {{.Miss}}
	}
{{- if .Ret}}
	return scope.FlagOf(c.hd.{{.Method}}({{.Decoded}}))
{{- else}}
	c.hd.{{.Method}}({{.Decoded}})
	return scope.Proceed
{{- end}}
}
{{end}}`))

// Render returns the formatted source of arity_gen.go.
func Render(maxAction, maxConditional int) ([]byte, error) {
	if maxAction >= len(numbers) || maxConditional > maxAction {
		return nil, fmt.Errorf("unsupported arity ceilings %d/%d", maxAction, maxConditional)
	}
	var fams []family
	for n := 0; n <= maxAction; n++ {
		fams = append(fams, newFamily(n, false))
	}
	for n := 0; n <= maxConditional; n++ {
		fams = append(fams, newFamily(n, true))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fams); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
