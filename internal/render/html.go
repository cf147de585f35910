package render

import (
	"fmt"
	"html"
	"strings"
)

// Render 纯函数：类Markdown文本 → HTML
// 确定性输出，重复调用结果一致；文本内容一律转义
func Render(text string) string {
	return RenderHTML(Parse(text))
}

// RenderHTML 序列化节点树
func RenderHTML(doc *Document) string {
	var b strings.Builder
	for _, block := range doc.Blocks {
		writeBlock(&b, block)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, block Block) {
	switch n := block.(type) {
	case *Heading:
		tag := fmt.Sprintf("h%d", n.Level)
		b.WriteString("<" + tag + ">")
		writeInlines(b, n.Inlines)
		b.WriteString("</" + tag + ">")
	case *Paragraph:
		b.WriteString("<p>")
		writeInlines(b, n.Inlines)
		b.WriteString("</p>")
	case *List:
		b.WriteString("<ul>")
		for _, item := range n.Items {
			b.WriteString("<li>")
			writeInlines(b, item.Inlines)
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	case *Callout:
		b.WriteString(`<div class="further-reading-callout"><p>`)
		writeInlines(b, n.Title)
		b.WriteString("</p>")
		for _, inner := range n.Blocks {
			writeBlock(b, inner)
		}
		b.WriteString("</div>")
	}
}

func writeInlines(b *strings.Builder, inlines []Inline) {
	for _, inline := range inlines {
		switch n := inline.(type) {
		case *Text:
			b.WriteString(html.EscapeString(n.Value))
		case *Strong:
			b.WriteString("<strong>")
			writeInlines(b, n.Children)
			b.WriteString("</strong>")
		case *Emphasis:
			b.WriteString("<em>")
			writeInlines(b, n.Children)
			b.WriteString("</em>")
		}
	}
}
