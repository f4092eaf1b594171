package salad

import (
	"fmt"
	"strings"
)

type TermAttr int

var (
	AttrBold   TermAttr = 1
	AttrRed    TermAttr = 31
	AttrGreen  TermAttr = 32
	AttrYellow TermAttr = 33
)

// paint 用 ANSI 属性包裹文本, 关闭颜色时原样返回
func paint(enable bool, text string, attrs ...TermAttr) string {
	if !enable || len(attrs) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString("\033[0")
	for _, attr := range attrs {
		fmt.Fprintf(&b, ";%d", attr)
	}
	b.WriteByte('m')
	b.WriteString(text)
	b.WriteString("\033[0m")
	return b.String()
}
