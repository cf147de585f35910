// Package render 将助手回答的类Markdown文本转换为结构化节点树再序列化，
// 替代直接拼接HTML字符串的做法，保证输出可测试且文本内容经过转义。
package render

// Block 块级节点
type Block interface {
	blockNode()
}

// Inline 行内节点
type Inline interface {
	inlineNode()
}

// Document 一次渲染的根节点
type Document struct {
	Blocks []Block
}

// Heading 1-3级标题，标题文本本身可含强调标记
type Heading struct {
	Level   int
	Inlines []Inline
}

// Paragraph 连续的普通文本行
type Paragraph struct {
	Inlines []Inline
}

// List 无序列表，连续的列表项合并为一个列表
type List struct {
	Items []ListItem
}

type ListItem struct {
	Inlines []Inline
}

// Callout "Further Reading / Reference" 高亮块
// 按块级作用域解析：从标记行起，到空行或下一个标记行为止，不存在未闭合标签问题
type Callout struct {
	Title  []Inline
	Blocks []Block
}

func (*Heading) blockNode()   {}
func (*Paragraph) blockNode() {}
func (*List) blockNode()      {}
func (*Callout) blockNode()   {}

// Text 字面文本，序列化时转义
type Text struct {
	Value string
}

// Strong 加粗（**text**）
type Strong struct {
	Children []Inline
}

// Emphasis 斜体（*text*）
type Emphasis struct {
	Children []Inline
}

func (*Text) inlineNode()     {}
func (*Strong) inlineNode()   {}
func (*Emphasis) inlineNode() {}
