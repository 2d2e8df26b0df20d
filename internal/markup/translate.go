package markup

import (
	"fmt"
	"strings"

	"github.com/cxxdoc/cxxdoc/internal/diag"
	"github.com/cxxdoc/cxxdoc/internal/entity"
)

// admonitionNames are the commands that open a "!!! <name>" block verbatim
// (§4.2, "Admonitions").
var admonitionNames = map[string]bool{
	"note": true, "abstract": true, "info": true, "tip": true,
	"success": true, "question": true, "warning": true, "failure": true,
	"danger": true, "bug": true, "example": true, "quote": true,
}

// admonitionAliases map a command to a differently-named admonition block.
var admonitionAliases = map[string][2]string{
	"attention": {"warning", "Attention"},
	"todo":      {"example", "To-do"},
	"remark":    {"quote", "Remark"},
}

// legacyRedeclaration commands are discarded re-declaration markers: the
// entity's name already comes from the syntax tree (§4.2).
var legacyRedeclaration = map[string]bool{
	"def": true, "var": true, "fn": true, "class": true, "struct": true,
	"union": true, "enum": true, "typedef": true, "namespace": true,
	"interface": true, "protocol": true, "property": true,
}

// Translator drives a Tokenizer over one comment's bytes, accumulating
// Markdown into the owning Entity's Docs and Brief fields and mutating its
// structural fields (§4.2).
type Translator struct{}

// Translate tokenizes docs and folds the result into e.
func (Translator) Translate(docs []byte, e *entity.Entity, sink *diag.Sink) {
	tok := NewTokenizer(docs)
	first, ok := tok.Next()
	if !ok || first.Kind != Open {
		return
	}
	tr := &translation{tok: tok, e: e, sink: sink}
	tr.run()
	e.Docs = tr.docs.String()
}

type translation struct {
	tok    *Tokenizer
	e      *entity.Entity
	sink   *diag.Sink
	docs   strings.Builder
	indent int

	inBrief  bool
	sawBrief bool
}

func (t *translation) run() {
	for {
		tok, ok := t.tok.Next()
		if !ok {
			return
		}
		t.step(tok)
	}
}

func (t *translation) step(tok Token) {
	switch tok.Kind {
	case Command:
		t.command(tok.Text)
	case Escape:
		t.emit(tok.Text[1:])
	case Word, Whitespace, Sentence, Open:
		t.emit(tok.Text)
	case Line:
		t.emit("\n" + strings.Repeat(" ", t.indent))
	case Para:
		t.emit("\n\n")
		if t.indent >= 4 {
			t.indent -= 4
		} else {
			t.indent = 0
		}
	case Close:
		return
	}
}

// emit appends text to the running docs buffer, and mirrors it into Brief
// too while @brief/@short is actively consuming its sentence (§8 scenario
// 2: the same tokens that seed Brief remain part of Docs).
func (t *translation) emit(text string) {
	t.docs.WriteString(text)
	if t.inBrief {
		t.e.Brief += text
	}
}

func (t *translation) command(raw string) {
	name, option := splitCommand(raw)
	bare := strings.TrimPrefix(name, "@")
	bare = strings.TrimPrefix(bare, `\`)

	switch bare {
	case "brief", "short":
		t.startBrief()
		return
	case "param":
		t.param(option)
		return
	case "tparam":
		word := t.tok.Consume(Word)
		t.emit(fmt.Sprintf(":material-code-tags: **Template parameter** `%s`\n:   ", word.Text))
		t.indent = 4
		return
	case "p", "c":
		t.inlineWrapped("`", "`")
		return
	case "e", "em", "a":
		t.inlineWrapped("*", "*")
		return
	case "b":
		t.inlineWrapped("**", "**")
		return
	case "anchor":
		word := t.tok.Consume(Word)
		t.emit(fmt.Sprintf(`<a name="%s"></a>`, word.Text))
		return
	case "ref":
		href := t.tok.Consume(Word)
		text := t.tok.Consume(Word)
		t.emit(fmt.Sprintf("[%s](#%s)", text.Text, href.Text))
		return
	case "return", "returns", "result":
		t.emit(":material-location-exit: **Return**\n:   ")
		t.indent = 4
		return
	case "pre":
		t.emit(":material-check-circle: **Precondition**\n:   ")
		t.indent = 4
		return
	case "post":
		t.emit(":material-check-circle: **Postcondition**\n:   ")
		t.indent = 4
		return
	case "throw":
		t.emit(":material-alert-circle: **Throw**\n:   ")
		t.indent = 4
		return
	case "see", "sa":
		t.emit(":material-eye: **See**\n:   ")
		t.indent = 4
		return
	case "f$":
		t.emit("$")
		return
	case "f[", "f]":
		t.emit("$$")
		return
	case "code", "endcode", "verbatim", "endverbatim":
		t.emit("```")
		return
	case "li", "arg":
		t.emit("  - ")
		return
	case "internal":
		t.e.Hide = true
		return
	case "file":
		t.e.Kind = entity.File
		return
	case "group":
		t.group()
		return
	case "ingroup":
		t.e.Ingroup = t.tok.Consume(Word).Text
		return
	}

	if legacyRedeclaration[bare] {
		t.tok.Consume(Word)
		return
	}
	if alias, ok := admonitionAliases[bare]; ok {
		t.openAdmonition(alias[0], alias[1])
		return
	}
	if admonitionNames[bare] {
		t.openAdmonition(bare, "")
		return
	}

	if t.sink != nil {
		t.sink.Warningf("", "unrecognized command %q; emitted literally", name)
	}
	t.emit(name)
}

// param renders "@param[dir] name" as the Parameter inline substitution.
// The parameter name itself is consumed from the stream and folded into
// the Markdown fragment, never mirrored separately (§8 scenario 3).
func (t *translation) param(option string) {
	word := t.tok.Consume(Word)
	icon := ":material-location-enter:"
	switch option {
	case "out":
		icon = ":material-location-exit:"
	case "in,out":
		icon = ":material-location-enter::material-location-exit:"
	}
	t.emit(fmt.Sprintf("%s **Parameter** `%s`\n:   ", icon, word.Text))
	t.indent = 4
}

func (t *translation) inlineWrapped(open, close string) {
	word := t.tok.Consume(Word)
	t.emit(open + word.Text + close)
}

func (t *translation) openAdmonition(kind, label string) {
	title := kind
	if label != "" {
		title = fmt.Sprintf(`%s "%s"`, kind, label)
	}
	t.emit(fmt.Sprintf("!!! %s\n", title))
	t.indent += 4
	t.emit(strings.Repeat(" ", t.indent))
}

// group creates a GROUP child on the entity the current comment documents
// and emits a cross-reference into its docs (§4.2).
func (t *translation) group() {
	name := t.tok.Consume(Word).Text
	if name == "" {
		if t.sink != nil {
			t.sink.Warningf("", "@group without a name")
		}
		return
	}
	if existing := t.e.Groups.At(name); len(existing) == 0 {
		t.e.Adopt(entity.New(entity.Group, name))
	}
	t.emit(fmt.Sprintf("[%s](#%s)", name, name))
}

// startBrief arms brief-mirroring mode: subsequent tokens are written to
// both Docs and Brief until the next Sentence or Close, and exactly one
// leading Whitespace token is swallowed rather than seeding Brief with a
// leading space (§8 scenario 2).
func (t *translation) startBrief() {
	if t.sawBrief {
		return
	}
	t.sawBrief = true
	t.inBrief = true
	if peek, ok := t.tok.Next(); ok && peek.Kind != Whitespace {
		t.step(peek)
		if peek.Kind == Sentence {
			t.inBrief = false
			return
		}
	}
	t.consumeBriefSentence()
}

func (t *translation) consumeBriefSentence() {
	for {
		tok, ok := t.tok.Next()
		if !ok {
			t.inBrief = false
			return
		}
		t.step(tok)
		if tok.Kind == Sentence {
			t.inBrief = false
			return
		}
	}
}

// splitCommand separates a Command token's text into its bare name and the
// bracketed option ("@param[in,out]" → "@param", "in,out"), if any.
func splitCommand(raw string) (name, option string) {
	if i := strings.IndexByte(raw, '['); i >= 0 && strings.HasSuffix(raw, "]") {
		return raw[:i], raw[i+1 : len(raw)-1]
	}
	return raw, ""
}
