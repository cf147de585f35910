package render

import (
	"strings"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"# Title", "<h1>Title</h1>"},
		{"## Section", "<h2>Section</h2>"},
		{"### Subsection", "<h3>Subsection</h3>"},
		// 井号后必须有空格
		{"#NoSpace", "<p>#NoSpace</p>"},
		// 最多三级
		{"#### four", "<p>#### four</p>"},
		// 标题内的强调标记同样生效
		{"## A **B**", "<h2>A <strong>B</strong></h2>"},
	}

	for _, tt := range tests {
		if got := Render(tt.input); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderEmphasis(t *testing.T) {
	got := Render("**bold** and *italic*")
	want := "<p><strong>bold</strong> and <em>italic</em></p>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderList(t *testing.T) {
	got := Render("- a\n- b")
	want := "<ul><li>a</li><li>b</li></ul>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderListRunsSplitByOtherBlocks(t *testing.T) {
	got := Render("- a\n- b\n\ntext\n\n- c")
	want := "<ul><li>a</li><li>b</li></ul><p>text</p><ul><li>c</li></ul>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCallout(t *testing.T) {
	input := "📘 **Further Reading / Reference**\n- Robotics Handbook\n- Springer\n\nAfter"
	got := Render(input)

	want := `<div class="further-reading-callout"><p>📘 <strong>Further Reading / Reference</strong></p>` +
		"<ul><li>Robotics Handbook</li><li>Springer</li></ul></div><p>After</p>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// 重复标记不会产生嵌套或未闭合的容器
func TestRenderCalloutRepeatedMarkers(t *testing.T) {
	input := "📘 **Further Reading / Reference**\nA\n📘 **Further Reading / Reference**\nB"
	got := Render(input)

	if strings.Count(got, `<div class="further-reading-callout">`) != 2 {
		t.Errorf("expected two callout containers, got %q", got)
	}
	if strings.Count(got, "<div") != strings.Count(got, "</div>") {
		t.Errorf("unbalanced div tags in %q", got)
	}
}

func TestRenderEscapesText(t *testing.T) {
	got := Render("a <b> & c")
	want := "<p>a &lt;b&gt; &amp; c</p>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderMalformedInputDegrades(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// 未闭合的标记按字面保留
		{"*oops", "<p>*oops</p>"},
		{"**oops", "<p>**oops</p>"},
		{"**a*b", "<p>**a*b</p>"},
	}

	for _, tt := range tests {
		if got := Render(tt.input); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	input := "# T\n\n**b** *i*\n\n- x\n- y"
	if Render(input) != Render(input) {
		t.Error("Render should be deterministic")
	}
}

func TestParseTreeShape(t *testing.T) {
	doc := Parse("# T\n\npara\n\n- x\n- y")

	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc.Blocks))
	}
	if h, ok := doc.Blocks[0].(*Heading); !ok || h.Level != 1 {
		t.Errorf("block 0 should be level-1 heading, got %#v", doc.Blocks[0])
	}
	if _, ok := doc.Blocks[1].(*Paragraph); !ok {
		t.Errorf("block 1 should be paragraph, got %#v", doc.Blocks[1])
	}
	list, ok := doc.Blocks[2].(*List)
	if !ok {
		t.Fatalf("block 2 should be list, got %#v", doc.Blocks[2])
	}
	if len(list.Items) != 2 {
		t.Errorf("expected 2 list items, got %d", len(list.Items))
	}
}
