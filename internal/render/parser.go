package render

import "strings"

// calloutMarkerText "Further Reading / Reference" 标记的加粗部分
const calloutMarkerText = "**Further Reading / Reference**"

const maxHeadingLevel = 3

func isCalloutMarker(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "📘") && strings.Contains(trimmed, calloutMarkerText)
}

// Parse 将类Markdown文本解析为节点树
// 永不失败：无法识别的行退化为普通段落文本
func Parse(text string) *Document {
	return &Document{Blocks: parseBlocks(strings.Split(text, "\n"), true)}
}

// parseBlocks 逐行扫描组装块级节点
// allowCallout 控制是否识别标记行，callout 内部不再嵌套
func parseBlocks(lines []string, allowCallout bool) []Block {
	var blocks []Block
	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		if allowCallout && isCalloutMarker(line) {
			// 作用域到空行或下一个标记行为止
			j := i + 1
			for j < len(lines) {
				if strings.TrimSpace(lines[j]) == "" || isCalloutMarker(lines[j]) {
					break
				}
				j++
			}
			blocks = append(blocks, &Callout{
				Title:  parseInlines(strings.TrimSpace(line)),
				Blocks: parseBlocks(lines[i+1:j], false),
			})
			i = j
			continue
		}

		if level, rest, ok := headingLine(line); ok {
			blocks = append(blocks, &Heading{Level: level, Inlines: parseInlines(rest)})
			i++
			continue
		}

		if _, ok := listLine(line); ok {
			list := &List{}
			for i < len(lines) {
				item, isItem := listLine(lines[i])
				if !isItem {
					break
				}
				list.Items = append(list.Items, ListItem{Inlines: parseInlines(item)})
				i++
			}
			blocks = append(blocks, list)
			continue
		}

		// 连续普通行合并为一个段落
		var plain []string
		for i < len(lines) {
			if strings.TrimSpace(lines[i]) == "" {
				break
			}
			if _, _, ok := headingLine(lines[i]); ok {
				break
			}
			if _, ok := listLine(lines[i]); ok {
				break
			}
			if allowCallout && isCalloutMarker(lines[i]) {
				break
			}
			plain = append(plain, lines[i])
			i++
		}
		blocks = append(blocks, &Paragraph{Inlines: parseInlines(strings.Join(plain, "\n"))})
	}
	return blocks
}

// headingLine 识别行首的 # / ## / ###，井号后必须紧跟一个空格
func headingLine(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, line[level+1:], true
}

func listLine(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") {
		return line[2:], true
	}
	return "", false
}

// parseInlines 解析强调标记，** 优先于 *，未闭合的标记按字面文本保留
func parseInlines(s string) []Inline {
	var inlines []Inline
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			inlines = append(inlines, &Text{Value: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "**") {
			if end := strings.Index(s[i+2:], "**"); end >= 0 {
				flush()
				inlines = append(inlines, &Strong{Children: parseInlines(s[i+2 : i+2+end])})
				i += end + 4
				continue
			}
			// 未闭合的 ** 按字面保留，避免被单星号分支误配
			text.WriteString("**")
			i += 2
			continue
		}
		if s[i] == '*' {
			if end := strings.IndexByte(s[i+1:], '*'); end >= 0 {
				flush()
				inlines = append(inlines, &Emphasis{Children: parseInlines(s[i+1 : i+1+end])})
				i += end + 2
				continue
			}
		}
		text.WriteByte(s[i])
		i++
	}
	flush()

	return inlines
}
