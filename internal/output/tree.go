package output

import (
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// Column where file descriptions align.
	descriptionColumn = 34
)

// FileEntry is one generated file in the summary tree.
type FileEntry struct {
	// Path is the file's path relative to the project root, POSIX-style.
	Path string

	// Description is a short label rendered in the muted style.
	Description string
}

type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

// RenderFileTree renders the generated files as a tree rooted at rootName,
// with descriptions aligned in a fixed column.
func RenderFileTree(rootName string, files []FileEntry) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}
	for _, f := range files {
		insert(root, strings.Split(f.Path, "/"), f.Description)
	}
	sortNodes(root)

	var sb strings.Builder
	sb.WriteString(GetStyles().Bold.Render(root.name + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

func insert(node *treeNode, segments []string, description string) {
	head, rest := segments[0], segments[1:]

	var child *treeNode
	for _, c := range node.children {
		if c.name == head {
			child = c
			break
		}
	}
	if child == nil {
		child = &treeNode{name: head, isDir: len(rest) > 0}
		node.children = append(node.children, child)
	}

	if len(rest) == 0 {
		child.description = description
		return
	}
	insert(child, rest, description)
}

// sortNodes orders children directories-first, then alphabetically.
func sortNodes(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		a, b := node.children[i], node.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})
	for _, c := range node.children {
		sortNodes(c)
	}
}

func renderChildren(sb *strings.Builder, node *treeNode, prefix string) {
	styles := GetStyles()

	for i, child := range node.children {
		last := i == len(node.children)-1

		connector := treeEdge
		childPrefix := prefix + treeVert
		if last {
			connector = treeLast
			childPrefix = prefix + treeSpace
		}

		name := child.name
		if child.isDir {
			name += "/"
		}

		line := prefix + connector + name
		if child.description != "" {
			pad := descriptionColumn - len([]rune(line))
			if pad < 2 {
				pad = 2
			}
			line += strings.Repeat(" ", pad) + styles.Muted.Render(child.description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")

		renderChildren(sb, child, childPrefix)
	}
}
