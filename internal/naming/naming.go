package naming

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"github.com/jinzhu/inflection"
)

// CamelToSnake converts a CamelCase string to snake_case.
// Consecutive uppercase letters (acronyms) are kept together:
// "ID" → "id", "UserID" → "user_id", "CreatedAt" → "created_at".
// Any non-alphanumeric rune is treated as a word boundary, so
// "PartAssembly_id" → "part_assembly_id" and "user-id" → "user_id".
func CamelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	pendingSep := false
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
				pendingSep = b.Len() > 0
			}
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SnakeToCamel converts a snake_case string to CamelCase.
// "user_profiles" → "UserProfiles", "my_table_name" → "MyTableName".
func SnakeToCamel(s string) string {
	if s == "" {
		return ""
	}
	return inflect.Camelize(s)
}

// ToModelName derives the conventional model name from a table identifier:
// singular, then camel-cased. "users" → "User", "my_table_name" → "MyTableName".
func ToModelName(table string) string {
	if table == "" {
		return ""
	}
	return SnakeToCamel(inflection.Singular(table))
}

// ToForeignKey returns the conventional foreign key column for a model name.
// "User" → "user_id", "PartAssembly" → "part_assembly_id".
func ToForeignKey(model string) string {
	if model == "" {
		return ""
	}
	return CamelToSnake(model + "_id")
}

// JoinModelName returns the synthesized name of the intermediate model
// joining from and to. "Part", "Assembly" → "PartAssembly".
func JoinModelName(from, to string) string {
	return upperFirst(from) + upperFirst(to)
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	return inflect.Capitalize(s)
}
