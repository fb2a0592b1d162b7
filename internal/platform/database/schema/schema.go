// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema names the tables and columns of the catalog database.

Stores build their SQL from these descriptors instead of repeating string
literals, so a renamed column is a one-line change. The DDL itself lives in
data/migrations.
*/
package schema

import "strings"

// Qualified joins columns as "alias.col, alias.col, ...". An empty alias leaves them bare.
func Qualified(alias string, columns []string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
