package param

import (
	"fmt"
	"strings"
)

// Kind tags the declared type of a parameter.
type Kind string

const (
	KindParameter         Kind = "parameter"
	KindString            Kind = "string"
	KindBoolean           Kind = "boolean"
	KindNumber            Kind = "number"
	KindInteger           Kind = "integer"
	KindSelector          Kind = "selector"
	KindListSelector      Kind = "list-selector"
	KindFileSelector      Kind = "file-selector"
	KindMultiFileSelector Kind = "multi-file-selector"
	KindAction            Kind = "action"
)

var parents = map[Kind]Kind{
	KindString:            KindParameter,
	KindBoolean:           KindParameter,
	KindNumber:            KindParameter,
	KindInteger:           KindNumber,
	KindSelector:          KindParameter,
	KindListSelector:      KindSelector,
	KindFileSelector:      KindSelector,
	KindMultiFileSelector: KindListSelector,
	KindAction:            KindParameter,
}

var kindAliases = map[string]Kind{
	"param":             KindParameter,
	"str":               KindString,
	"text":              KindString,
	"bool":              KindBoolean,
	"float":             KindNumber,
	"int":               KindInteger,
	"select":            KindSelector,
	"objectselector":    KindSelector,
	"listselector":      KindListSelector,
	"multiselect":       KindListSelector,
	"fileselector":      KindFileSelector,
	"multifileselector": KindMultiFileSelector,
	"callable":          KindAction,
}

// Lineage returns the kind followed by its ancestors, most specific first. The
// root KindParameter always terminates the chain, including for kinds that
// were never declared here.
func (k Kind) Lineage() []Kind {
	if k == "" || k == KindParameter {
		return []Kind{KindParameter}
	}
	lineage := []Kind{k}
	current := k
	for {
		parent, ok := parents[current]
		if !ok {
			return append(lineage, KindParameter)
		}
		lineage = append(lineage, parent)
		if parent == KindParameter {
			return lineage
		}
		current = parent
	}
}

// Is reports whether ancestor appears in the lineage of k.
func (k Kind) Is(ancestor Kind) bool {
	for _, kind := range k.Lineage() {
		if kind == ancestor {
			return true
		}
	}
	return false
}

// Known reports whether k is one of the declared kinds.
func (k Kind) Known() bool {
	if k == KindParameter {
		return true
	}
	_, ok := parents[k]
	return ok
}

// ParseKind normalises a textual kind, accepting a few common aliases.
func ParseKind(raw string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return KindParameter, nil
	}
	kind := Kind(name)
	if kind.Known() {
		return kind, nil
	}
	compact := strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	if alias, ok := kindAliases[compact]; ok {
		return alias, nil
	}
	if alias, ok := kindAliases[name]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("param: unknown kind %q", raw)
}
