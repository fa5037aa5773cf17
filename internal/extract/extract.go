// Package extract pulls raw identifier tokens out of parsed syntax trees.
//
// A Strategy selects which identifiers count as analysis targets:
// function names, local-variable bindings, or every referenced name.
// The set of strategies is closed; ParseStrategy maps the CLI filter
// names onto it.
package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"nomen/pkg/parser"
)

// Strategy extracts raw identifier strings from a collection of trees.
type Strategy interface {
	// Name is the CLI-facing strategy name.
	Name() string
	// FoldsCase reports whether extracted words are case-folded to
	// lowercase in the final report.
	FoldsCase() bool
	// Extract returns raw words in tree order, then node-visitation
	// order within a tree. Dunder names are already removed.
	Extract(trees []*parser.ParseResult) []string
}

// ParseStrategy maps a filter name to a Strategy.
// Unknown names fall back to AllNames.
func ParseStrategy(name string) Strategy {
	switch name {
	case "Function":
		return FunctionNames{}
	case "Local":
		return LocalVariables{}
	default:
		return AllNames{}
	}
}

// IsDunder reports whether a name follows the reserved double-underscore
// naming convention (begins and ends with "__").
func IsDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// FunctionNames extracts the name of every function-definition node.
type FunctionNames struct{}

func (FunctionNames) Name() string { return "Function" }

// FoldsCase is true: function names are reported lowercased. The fold is
// applied by the report after any compound split so camel-case names
// still split on their original humps.
func (FunctionNames) FoldsCase() bool { return true }

func (FunctionNames) Extract(trees []*parser.ParseResult) []string {
	var words []string
	for _, t := range trees {
		kinds := functionNodeTypes(t.Language)
		parser.Walk(t.Tree.RootNode(), t.Source, func(node *sitter.Node, source []byte) bool {
			if contains(kinds, node.Type()) {
				name := parser.GetNodeText(node.ChildByFieldName("name"), source)
				if name != "" && !IsDunder(name) {
					words = append(words, name)
				}
			}
			return true
		})
	}
	return words
}

// LocalVariables extracts simple-name binding targets of assignments.
//
// Only the first assignment target is considered, and only when it is a
// plain identifier; tuple, attribute, and subscript targets are skipped.
// Assignments are collected from the first tree of the corpus only,
// preserving the behavior of the original analyzer (see DESIGN.md).
type LocalVariables struct{}

func (LocalVariables) Name() string { return "Local" }

func (LocalVariables) FoldsCase() bool { return false }

func (LocalVariables) Extract(trees []*parser.ParseResult) []string {
	if len(trees) == 0 {
		return nil
	}
	t := trees[0]

	var words []string
	kinds := assignmentNodeTypes(t.Language)
	parser.Walk(t.Tree.RootNode(), t.Source, func(node *sitter.Node, source []byte) bool {
		if contains(kinds, node.Type()) {
			target := firstAssignTarget(node, t.Language)
			if target != nil && target.Type() == "identifier" {
				name := parser.GetNodeText(target, source)
				if name != "" && !IsDunder(name) {
					words = append(words, name)
				}
			}
		}
		return true
	})
	return words
}

// AllNames extracts every name-reference identifier, reads and writes.
type AllNames struct{}

func (AllNames) Name() string { return "Name" }

func (AllNames) FoldsCase() bool { return false }

func (AllNames) Extract(trees []*parser.ParseResult) []string {
	var words []string
	for _, t := range trees {
		parser.Walk(t.Tree.RootNode(), t.Source, func(node *sitter.Node, source []byte) bool {
			if node.Type() == "identifier" && isNameReference(node) {
				name := parser.GetNodeText(node, source)
				if name != "" && !IsDunder(name) {
					words = append(words, name)
				}
			}
			return true
		})
	}
	return words
}

// functionNodeTypes returns the syntax-tree node types for function
// definitions in each language.
func functionNodeTypes(lang parser.Language) []string {
	switch lang {
	case parser.LangPython:
		return []string{"function_definition"}
	case parser.LangGo:
		return []string{"function_declaration", "method_declaration"}
	case parser.LangJavaScript:
		return []string{"function_declaration", "generator_function_declaration", "method_definition"}
	default:
		return nil
	}
}

// assignmentNodeTypes returns the node types that bind local variables.
func assignmentNodeTypes(lang parser.Language) []string {
	switch lang {
	case parser.LangPython:
		return []string{"assignment"}
	case parser.LangGo:
		return []string{"short_var_declaration", "assignment_statement"}
	case parser.LangJavaScript:
		return []string{"variable_declarator", "assignment_expression"}
	default:
		return nil
	}
}

// firstAssignTarget returns the first target node of an assignment, or
// nil when the assignment has no usable target.
func firstAssignTarget(node *sitter.Node, lang parser.Language) *sitter.Node {
	switch lang {
	case parser.LangPython:
		return node.ChildByFieldName("left")
	case parser.LangGo:
		left := node.ChildByFieldName("left")
		if left != nil && left.Type() == "expression_list" {
			return left.NamedChild(0)
		}
		return left
	case parser.LangJavaScript:
		if node.Type() == "variable_declarator" {
			return node.ChildByFieldName("name")
		}
		return node.ChildByFieldName("left")
	default:
		return nil
	}
}

// isNameReference filters out identifiers that are not name references:
// definition names, attribute accesses, parameter declarations, keyword
// argument names, and import paths.
func isNameReference(node *sitter.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return true
	}

	switch parent.Type() {
	case "function_definition", "class_definition",
		"function_declaration", "method_declaration", "method_definition",
		"generator_function_declaration":
		return !isField(parent, "name", node)
	case "attribute":
		return !isField(parent, "attribute", node)
	case "keyword_argument", "default_parameter":
		return !isField(parent, "name", node)
	case "parameters", "lambda_parameters", "typed_parameter":
		return false
	case "dotted_name", "aliased_import":
		return false
	}
	return true
}

// isField reports whether child occupies the named field of parent.
func isField(parent *sitter.Node, field string, child *sitter.Node) bool {
	f := parent.ChildByFieldName(field)
	return f != nil && f.StartByte() == child.StartByte() && f.EndByte() == child.EndByte()
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
