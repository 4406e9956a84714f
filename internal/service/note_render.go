package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	noteMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	noteSanitizer = bluemonday.UGCPolicy()
)

// RenderNoteHTML 把打卡备注渲染为可直接嵌入首页动态的安全 HTML。
// 备注是自由文本，渲染失败时退回转义后的原文。
func RenderNoteHTML(note string) string {
	var buf bytes.Buffer
	if err := noteMarkdown.Convert([]byte(note), &buf); err != nil {
		return noteSanitizer.Sanitize(note)
	}
	return noteSanitizer.Sanitize(buf.String())
}

// PrependLocation 按约定把定位坐标作为带中括号的前缀写进备注文本。
// 这是纯文本约定而非结构化字段，保留 4 位小数。
func PrependLocation(note string, latitude, longitude float64) string {
	prefix := fmt.Sprintf("[%.4f, %.4f]", latitude, longitude)
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return prefix
	}
	return prefix + " " + trimmed
}
