// Package mdtest extracts compiler test cases from Markdown documents.
//
// A test case starts at a heading "Test: <name>" and holds exactly one input
// fence followed by one or more assertion fences:
//
//	## Test: add
//	```tac-program
//	i32 a { 1 } return a + 2
//	```
//	```ir
//	%t1 = add a, 2
//	ret %t1
//	```
package mdtest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType represents the type of input code fence in a test case
type InputType string

const (
	InputTypeProgram InputType = "tac-program"
	InputTypeExpr    InputType = "tac-expr"
)

// AssertionType represents the type of assertion code fence in a test case
type AssertionType string

const (
	AssertionTypeAST          AssertionType = "ast"
	AssertionTypeIR           AssertionType = "ir"
	AssertionTypeCompileError AssertionType = "compile-error"
)

// Assertion is a single assertion fence.
type Assertion struct {
	Type    AssertionType
	Content string // raw fence content without the trailing newline
	Line    int
}

// TestCase is a complete test case extracted from Markdown.
type TestCase struct {
	Name       string    // heading text after "Test: "
	Input      string    // raw input fence content
	InputType  InputType // type of the input fence
	Assertions []Assertion
}

// Lexemes splits the input on whitespace, the way the compiler expects its
// input to be pre-split.
func (tc TestCase) Lexemes() []string {
	return strings.Fields(tc.Input)
}

// ExpectedLines returns the non-blank lines of an assertion with surrounding
// whitespace trimmed.
func (a Assertion) ExpectedLines() []string {
	var lines []string
	for _, line := range strings.Split(a.Content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ExtractTestCases parses a Markdown document and extracts all test cases.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	source := []byte(markdownContent)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var testCases []TestCase
	var current *TestCase

	flush := func() error {
		if current == nil {
			return nil
		}
		if err := validateTestCase(current); err != nil {
			return err
		}
		testCases = append(testCases, *current)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			headingText := extractTextFromNode(n, source)
			if !strings.HasPrefix(headingText, "Test: ") {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			current = &TestCase{Name: strings.TrimPrefix(headingText, "Test: ")}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := strings.TrimRight(extractCodeBlockContent(n, source), "\n")
			lineNum := getLineNumber(n, source)

			if current == nil {
				if language == "" {
					// Plain prose code blocks are allowed outside tests.
					return ast.WalkContinue, nil
				}
				return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
			}

			switch {
			case isInputFence(language):
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences found in test '%s'", lineNum, current.Name)
				}
				if len(current.Assertions) > 0 {
					return ast.WalkStop, fmt.Errorf("line %d: input fence after assertions in test '%s'", lineNum, current.Name)
				}
				current.Input = content
				current.InputType = InputType(language)
			case isAssertionFence(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    lineNum,
				})
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", lineNum, language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return testCases, nil
}

// extractTextFromNode extracts plain text content from a markdown node
func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := codeBlock.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func isInputFence(language string) bool {
	switch InputType(language) {
	case InputTypeProgram, InputTypeExpr:
		return true
	}
	return false
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertionTypeAST, AssertionTypeIR, AssertionTypeCompileError:
		return true
	}
	return false
}

// validateTestCase ensures a test case has both input and at least one assertion
func validateTestCase(testCase *TestCase) error {
	if testCase.Input == "" {
		return fmt.Errorf("test '%s' has no input fence", testCase.Name)
	}
	if len(testCase.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", testCase.Name)
	}
	return nil
}

// getLineNumber returns the 1-based line of a node's first content line.
func getLineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	startPos := node.Lines().At(0).Start
	return bytes.Count(source[:min(startPos, len(source))], []byte("\n")) + 1
}
