package syntax

import (
	"context"
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/cxxdoc/cxxdoc/internal/diag"
	"github.com/cxxdoc/cxxdoc/internal/entity"
)

var kindByCapture = map[string]entity.Kind{
	"namespace":  entity.Namespace,
	"type":       entity.Type,
	"variable":   entity.Variable,
	"function":   entity.Function,
	"operator":   entity.Operator,
	"enumerator": entity.Enumerator,
	"macro":      entity.Macro,
}

// docCommentRe matches a Doxygen-style comment immediately preceding a
// declaration, possibly separated by blank lines or other whitespace.
var docCommentRe = regexp.MustCompile(`(?s)(/\*[*!][^*](?:[^*]|\*[^/])*\*/|(?:///[^\n]*\n\s*)+///[^\n]*|(?://[!/][^\n]*\n\s*)*//[!/][^\n]*)\s*$`)

// Driver compiles the C++ syntax query once and runs it against many files.
type Driver struct {
	parser *sitter.Parser
	query  *sitter.Query
}

// NewDriver compiles QuerySource against the C++ grammar. A malformed
// query is a programmer error in this package, not file input, so it is
// reported as a panic-free Fatal through sink rather than returned as an
// error the caller must route past every call site.
func NewDriver(sink *diag.Sink) *Driver {
	lang := cpp.GetLanguage()
	q, err := sitter.NewQuery([]byte(QuerySource), lang)
	if err != nil {
		if sink != nil {
			sink.Fatalf("", "compiling syntax query: %v", err)
		}
		return &Driver{}
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Driver{parser: p, query: q}
}

// Matches parses source and returns every entity.Match it contains, in
// source order, along with any leading documentation comment attached to
// each declaration (§4.3).
func (d *Driver) Matches(ctx context.Context, source []byte, sink *diag.Sink) []entity.Match {
	if d.query == nil {
		return nil
	}
	tree, err := d.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		if sink != nil {
			sink.Warningf("", "parsing source: %v", err)
		}
		return nil
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(d.query, tree.RootNode())

	var matches []entity.Match
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, source)

		var nameNode, declNode, boundNode *sitter.Node
		var kindCapture string
		for _, c := range m.Captures {
			capName := d.query.CaptureNameForId(c.Index)
			n := c.Node
			if capName == "name" {
				nameNode = n
				continue
			}
			if capName == "body" || capName == "value" {
				boundNode = n
				continue
			}
			if _, known := kindByCapture[capName]; known {
				kindCapture = capName
				declNode = n
				continue
			}
			if sink != nil {
				sink.Warningf("", "unrecognized capture label %q", capName)
			}
		}
		if declNode == nil {
			continue
		}
		kind := kindByCapture[kindCapture]

		name := ""
		if nameNode != nil {
			name = string(source[nameNode.StartByte():nameNode.EndByte()])
		}

		start := declNode.StartByte()
		// middle bounds decl at the body/initializer when one was captured,
		// so a prototype or body-less declaration keeps its full signature
		// (§3.1, §4.3): "to the start of the body/initializer, or to end
		// when none". A body-less declaration node ends with its ";" (or, for
		// a macro, its newline), which is not part of the signature.
		middle := declNode.EndByte()
		if boundNode != nil {
			middle = boundNode.StartByte()
		} else {
			for middle > start {
				c := source[middle-1]
				if c != ';' && c != ' ' && c != '\t' && c != '\r' && c != '\n' {
					break
				}
				middle--
			}
		}

		matches = append(matches, entity.Match{
			Kind:   kind,
			Start:  start,
			Middle: middle,
			End:    declNode.EndByte(),
			Name:   name,
			Docs:   precedingComment(source, start),
			Source: source,
		})
	}
	return matches
}

// precedingComment returns the Doxygen-style comment immediately before
// byte offset pos, or nil if there is none.
func precedingComment(source []byte, pos uint32) []byte {
	if pos == 0 {
		return nil
	}
	window := source[:pos]
	loc := docCommentRe.FindIndex(window)
	if loc == nil {
		return nil
	}
	return source[loc[0]:loc[1]]
}
