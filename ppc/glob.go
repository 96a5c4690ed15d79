package main

import (
	"path/filepath"
	"strings"
)

// glob replaces each argument holding a wildcard with its matches in
// lexical order. A pattern matching nothing is kept as is.
func glob(a []string) []string {
	var files []string
	for _, v := range a {
		if !strings.ContainsAny(v, "*?[") {
			files = append(files, v)
			continue
		}
		m, err := filepath.Glob(v)
		if err != nil || len(m) == 0 {
			files = append(files, v)
			continue
		}
		files = append(files, m...)
	}
	return files
}
