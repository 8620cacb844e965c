// Package component defines the kinds of content a GSD bundle carries and the
// name filters each kind is installed with.
//
// A component is an opaque named entry (a skill directory, an agent
// directory, a markdown reference, a patch script). The core never looks
// inside one; it only decides which top-level names belong to which kind.
package component

import (
	"fmt"
	"strings"
)

// Kind identifies a component type.
type Kind string

const (
	KindSkill     Kind = "skill"
	KindAgent     Kind = "agent"
	KindReference Kind = "reference"
	KindWorkflow  Kind = "workflow"
	KindPatch     Kind = "patch"
)

// Kinds returns all kinds in install order.
func Kinds() []Kind {
	return []Kind{KindSkill, KindAgent, KindReference, KindWorkflow, KindPatch}
}

// DisplayName returns the plural, human-readable name of the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindSkill:
		return "Skills"
	case KindAgent:
		return "Agents"
	case KindReference:
		return "References"
	case KindWorkflow:
		return "Workflows"
	case KindPatch:
		return "Patches"
	default:
		return string(k)
	}
}

// Named is one component found in the bundle or on disk.
type Named struct {
	Kind       Kind
	Name       string
	SourcePath string
	TargetPath string
}

// Key returns the identity of the component.
func (n Named) Key() string {
	return fmt.Sprintf("%s/%s", n.Kind, n.Name)
}

// Filter decides whether a top-level directory entry belongs to a component set.
type Filter func(name string, isDir bool) bool

// All accepts every entry.
func All(string, bool) bool { return true }

// PrefixDirs accepts directories whose name starts with prefix.
func PrefixDirs(prefix string) Filter {
	return func(name string, isDir bool) bool {
		return isDir && strings.HasPrefix(name, prefix)
	}
}

// Prefixed accepts files and directories whose name starts with prefix.
func Prefixed(prefix string) Filter {
	return func(name string, _ bool) bool {
		return strings.HasPrefix(name, prefix)
	}
}

// Extension accepts regular files ending in ext (e.g. ".md").
func Extension(ext string) Filter {
	return func(name string, isDir bool) bool {
		return !isDir && strings.HasSuffix(name, ext)
	}
}

// Not inverts a filter.
func Not(f Filter) Filter {
	return func(name string, isDir bool) bool {
		return !f(name, isDir)
	}
}

// And accepts entries every filter accepts.
func And(filters ...Filter) Filter {
	return func(name string, isDir bool) bool {
		for _, f := range filters {
			if !f(name, isDir) {
				return false
			}
		}
		return true
	}
}

// OneOf accepts entries with exactly one of the given names.
func OneOf(names ...string) Filter {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string, _ bool) bool {
		return set[name]
	}
}
