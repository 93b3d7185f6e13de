package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ryandward/sgrna-design/cmd"
	"github.com/spf13/cobra/doc"
)

// front matter for the root command's page
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// front matter for a child command's page
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its page meta
var metaMap = map[string]meta{
	"sgrna": {
		title:    "sgrna",
		navOrder: 0,
	},
	"sgrna_build": {
		title:    "build",
		navOrder: 0,
		parent:   "sgrna",
	},
	"sgrna_targets": {
		title:    "targets",
		navOrder: 1,
		parent:   "sgrna",
	},
}

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}

	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "sgrna" {
		return "/"
	}

	return base
}
