package markup

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestStyle_CSS(t *testing.T) {
	type tc struct {
		style    Style
		expected string
	}

	tests := map[string]tc{
		"empty":     {style: Style{}, expected: ""},
		"size only": {style: Style{FontSize: intPtr(18)}, expected: "font-size:18px;"},
		"all":       {style: Style{FontSize: intPtr(12), Padding: intPtr(4), Border: true}, expected: "font-size:12px;padding:4px;border:1px solid #ccc;"},
		"zero":      {style: Style{Padding: intPtr(0)}, expected: "padding:0px;"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.CSS(); got != tt.expected {
				t.Errorf("CSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDocument_HTML(t *testing.T) {
	type tc struct {
		doc      *Document
		expected string
	}

	tests := map[string]tc{
		"nil document": {
			doc:      nil,
			expected: "",
		},
		"empty document": {
			doc:      &Document{},
			expected: "",
		},
		"paragraph": {
			doc:      &Document{Root: &Element{Tag: "p", Text: "hi"}},
			expected: "<p>hi</p>",
		},
		"attribute order": {
			doc: &Document{Root: &Element{
				Tag:    "button",
				Class:  "primary",
				Style:  Style{Border: true},
				Text:   "+",
				Action: &Action{Kind: "increment", Target: "count", Step: 2},
			}},
			expected: `<button class="primary" style="border:1px solid #ccc;" data-action="increment" data-target="count" data-step="2">+</button>`,
		},
		"nested": {
			doc: &Document{Root: &Element{
				Tag:   "div",
				Class: "column",
				Children: []*Element{
					{Tag: "p", Text: "a"},
					{Tag: "div", Class: "column", Children: []*Element{{Tag: "p", Text: "b"}}},
				},
			}},
			expected: `<div class="column"><p>a</p><div class="column"><p>b</p></div></div>`,
		},
		"escaping": {
			doc:      &Document{Root: &Element{Tag: "p", Text: `"quoted" <tag> & more`}},
			expected: "<p>&#34;quoted&#34; &lt;tag&gt; &amp; more</p>",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.doc.HTML(); got != tt.expected {
				t.Errorf("HTML() = %s\nwant     %s", got, tt.expected)
			}
		})
	}
}

func TestDocument_Buttons(t *testing.T) {
	first := &Element{Tag: "button", Text: "1", Action: &Action{Kind: "increment", Target: "a", Step: 1}}
	plain := &Element{Tag: "button", Text: "plain"}
	second := &Element{Tag: "button", Text: "2", Action: &Action{Kind: "increment", Target: "b", Step: 1}}
	doc := &Document{Root: &Element{
		Tag: "div",
		Children: []*Element{
			first,
			{Tag: "div", Children: []*Element{plain, second}},
		},
	}}

	buttons := doc.Buttons()
	if len(buttons) != 2 || buttons[0] != first || buttons[1] != second {
		t.Errorf("Buttons() = %v, want [first second]", buttons)
	}

	var empty *Document
	if got := empty.Buttons(); got != nil {
		t.Errorf("nil document Buttons() = %v", got)
	}
}
