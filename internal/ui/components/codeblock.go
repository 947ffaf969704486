// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock is a highlighted snippet with line numbers and a language badge.
type CodeBlock struct {
	Language string
	Code     string
	MaxWidth int
	MaxLines int // 0 = no limit
}

// NewCodeBlock creates a new code block.
func NewCodeBlock(language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
	}
}

// Render renders the code block with theme's styles.
func (c CodeBlock) Render(theme *styles.Theme) string {
	code := strings.Trim(c.Code, "\n")
	lang := c.Language
	if lang == "" {
		lang = strings.ToLower(DetectLanguage(code))
	}

	highlighted := HighlightCode(code, lang, theme.IsDark, theme.HasTrueColor)
	lines := strings.Split(highlighted, "\n")

	truncated := false
	if c.MaxLines > 0 && len(lines) > c.MaxLines {
		lines = lines[:c.MaxLines]
		truncated = true
	}

	rendered := make([]string, 0, len(lines)+2)
	if lang != "" {
		rendered = append(rendered, theme.CodeLangBadge.Render(lang))
	}
	for i, line := range lines {
		rendered = append(rendered, theme.CodeLineNum.Render(strconv.Itoa(i+1))+line)
	}
	if truncated {
		rendered = append(rendered, theme.Muted.Render("     ..."))
	}

	maxWidth := c.MaxWidth
	if maxWidth < 20 {
		maxWidth = 20
	}
	return theme.CodeBlock.MaxWidth(maxWidth).Render(strings.Join(rendered, "\n"))
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// lexerAliases maps content language names chroma does not know directly.
var lexerAliases = map[string]string{
	"mermaid": "text",
	"sol":     "solidity",
}

// HighlightCode applies chroma syntax highlighting for a terminal. Unknown
// languages and formatter errors return code unchanged.
func HighlightCode(code, language string, dark, trueColor bool) string {
	name := strings.ToLower(language)
	if alias, ok := lexerAliases[name]; ok {
		name = alias
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	styleName := "monokai"
	if !dark {
		styleName = "github"
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatterName := "terminal256"
	if trueColor {
		formatterName = "terminal16m"
	}
	formatter := formatters.Get(formatterName)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// DetectLanguage guesses the language of code, or returns "".
func DetectLanguage(code string) string {
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
