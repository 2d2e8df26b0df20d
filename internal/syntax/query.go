// Package syntax drives a tree-sitter query over C++ source, producing the
// stream of entity.Match values the entity Builder consumes (§3.2, §4.3).
package syntax

// QuerySource is the compiled-at-startup tree-sitter query over the C++
// grammar. Each alternative captures the enclosing declaration under a
// semantic label (namespace, type, variable, function, operator,
// enumerator, macro), its identifier under @name, and, where the grammar
// has one, the node that bounds the end of the declaration signature
// (a body or an initializer) under @body/@value. The driver uses that
// node to stop `decl` before the body/initializer (§3.1, §4.3) instead of
// truncating it at the name, so a function's parameter list and a
// class's base-class clause survive into `decl`. A declaration's leading
// documentation comment is located separately, by precedingComment, since
// the C++ grammar exposes comments as extra nodes with no queryable
// parent/child link to the declaration they document (see driver.go).
// Exported so the render cache can fold it into its content address: a
// changed query invalidates every cached render (§4.9).
const QuerySource = `
(namespace_definition
  name: (namespace_identifier) @name
  body: (declaration_list) @body) @namespace

(class_specifier
  name: (type_identifier) @name
  body: (field_declaration_list)? @body) @type

(struct_specifier
  name: (type_identifier) @name
  body: (field_declaration_list)? @body) @type

(enum_specifier
  name: (type_identifier) @name
  body: (enumerator_list)? @body) @type

(union_specifier
  name: (type_identifier) @name
  body: (field_declaration_list)? @body) @type

(enumerator
  name: (identifier) @name) @enumerator

(function_definition
  declarator: (function_declarator
    declarator: (identifier) @name)
  body: (compound_statement) @body) @function

(function_definition
  declarator: (function_declarator
    declarator: (field_identifier) @name)
  body: (compound_statement) @body) @function

(function_definition
  declarator: (function_declarator
    declarator: (operator_name) @name)
  body: (compound_statement) @body) @operator

(declaration
  declarator: (function_declarator
    declarator: (identifier) @name)) @function

(declaration
  declarator: (init_declarator
    declarator: (identifier) @name
    value: (_) @value)) @variable

(declaration
  declarator: (identifier) @name) @variable

(field_declaration
  declarator: (init_declarator
    declarator: (field_identifier) @name
    value: (_) @value)) @variable

(field_declaration
  declarator: (field_identifier) @name) @variable

(preproc_def
  name: (identifier) @name) @macro

(preproc_function_def
  name: (identifier) @name) @macro
`
