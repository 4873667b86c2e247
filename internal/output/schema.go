// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

const maxSchemaDepth = 1

// DumpSchema prints the sorted attribute paths available to --attrs,
// --filter and --sort for the provided type.
func DumpSchema(w io.Writer, typ reflect.Type) {
	paths := SchemaPaths("", typ, 0)
	sort.Strings(paths)

	fmt.Fprintln(w, "Schema for", typ.Name(), "--")
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w,
		`Array members are addressed by index (criteria.0.needed) and counted with
criteria.#. Any gjson path may be used.`)
}

// SchemaPaths walks typ's json tags and returns dotted attribute paths.
// Slices of structs are descended with a .# placeholder.
func SchemaPaths(holder string, typ reflect.Type, depth int) []string {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var paths []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}
		name := strings.Split(tagValue, ",")[0]
		if name == "" || name == "-" {
			continue
		}
		if holder != "" {
			name = holder + "." + name
		}
		paths = append(paths, name)

		if depth >= maxSchemaDepth {
			continue
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		switch ft.Kind() {
		case reflect.Struct:
			paths = append(paths, SchemaPaths(name, ft, depth+1)...)
		case reflect.Slice:
			if ft.Elem().Kind() == reflect.Struct {
				paths = append(paths, SchemaPaths(name+".#", ft.Elem(), depth+1)...)
			}
		}
	}

	return paths
}
