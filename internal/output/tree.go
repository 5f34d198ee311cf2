package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Connectors
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where descriptions start on each line.
	descriptionColumn = 40
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// child returns the child called name, adding it when missing.
func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name, IsDir: isDir}
	n.Children = append(n.Children, c)
	return c
}

// label is the name as printed, with a trailing slash for directories.
func (n *TreeNode) label() string {
	if n.IsDir {
		return n.Name + "/"
	}
	return n.Name
}

// RenderFileTree renders a file tree with descriptions aligned at a fixed column.
// Files maps slash or OS separated relative paths to their descriptions.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	// Every path adds its missing directories; the last segment is the file.
	root := &TreeNode{Name: rootName, IsDir: true}
	for path, desc := range files {
		segments := strings.Split(filepath.ToSlash(path), "/")
		node := root
		for i, segment := range segments {
			node = node.child(segment, i < len(segments)-1)
		}
		node.Description = desc
	}

	sortTree(root)

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(root.label()))
	sb.WriteString("\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

// sortTree sorts children recursively: directories first, then by name.
// Priority prefixes make the name order equal the init order.
func sortTree(node *TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})

	for _, c := range node.Children {
		sortTree(c)
	}
}

// renderChildren writes one line per child of node, each prefixed with the
// connectors of its ancestors, and recurses into directories.
func renderChildren(sb *strings.Builder, node *TreeNode, prefix string) {
	for i, c := range node.Children {
		last := i == len(node.Children)-1

		connector, indent := treeEdge, treeVert
		if last {
			connector, indent = treeLast, treeSpace
		}

		line := prefix + connector + c.label()
		if c.Description != "" {
			// Pad to the description column, keeping at least two spaces.
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + c.Description
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		renderChildren(sb, c, prefix+indent)
	}
}
