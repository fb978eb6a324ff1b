// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the application services sitting between the
// HTTP handlers and the store.
package service

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlSanitizer is the policy applied to all rendered markdown. UGCPolicy
// keeps the safe formatting tags and strips scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// markdown is the shared renderer with GitHub-flavored extensions.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts markdown to sanitized HTML. On a render error
// the raw text is returned sanitized, never lost.
func RenderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}
	return htmlSanitizer.Sanitize(buf.String())
}
