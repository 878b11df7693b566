// tree_view.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"fmt"
	"log"

	"github.com/cybrota/phonebook/contact"
	"github.com/cybrota/phonebook/ordtree"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// nodeLabel is the text of one tree node: which side of its parent it
// hangs on, then the record's key and the other index's key.
type nodeLabel struct {
	side   string
	record contact.Record
	order  contact.Order
}

func (l nodeLabel) String() string {
	return fmt.Sprintf("%s %s · %s", l.side, l.order.Key(l.record), l.order.Other().Key(l.record))
}

// buildTreeNodes mirrors the shape of tree as termui nodes, expanded.
func buildTreeNodes(tree *contact.Tree, order contact.Order) []*widgets.TreeNode {
	if tree.Empty() {
		return nil
	}
	return []*widgets.TreeNode{buildTreeNode(tree.Root(), "●", order)}
}

func buildTreeNode(n *ordtree.Node[contact.Record], side string, order contact.Order) *widgets.TreeNode {
	node := &widgets.TreeNode{
		Value:    nodeLabel{side: side, record: n.Value(), order: order},
		Expanded: true,
	}
	if l := n.Left(); l != nil {
		node.Nodes = append(node.Nodes, buildTreeNode(l, "L", order))
	}
	if r := n.Right(); r != nil {
		node.Nodes = append(node.Nodes, buildTreeNode(r, "R", order))
	}
	return node
}

// treeSummary is the side panel text for the shown index.
func treeSummary(book *contact.Book, order contact.Order, selected *widgets.TreeNode) string {
	tree := book.Tree(order)
	text := fmt.Sprintf("[Ordered by](fg:green) %s\n[Contacts](fg:green) %d\n[Height](fg:green) %d\n\n",
		order, tree.Len(), tree.Height())
	if selected != nil {
		if l, ok := selected.Value.(nodeLabel); ok {
			text += l.record.String()
		}
	}
	return text
}

func runTreeView(book *contact.Book, order contact.Order) {
	InitializeColors()
	scheme := GetColorScheme()

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	treeWidget := widgets.NewTree()
	treeWidget.TextStyle = StyleText()
	treeWidget.SelectedRowStyle = StylePrimary()
	treeWidget.BorderStyle = StyleBorder(true)
	treeWidget.WrapText = false

	infoPara := widgets.NewParagraph()
	infoPara.Title = " Index "
	infoPara.TitleStyle = ui.NewStyle(scheme.Accent)
	infoPara.TextStyle = StyleText()
	infoPara.BorderStyle = StyleBorder(false)
	infoPara.WrapText = true

	keyboardPara := widgets.NewParagraph()
	keyboardPara.Title = " Keyboard Shortcuts "
	keyboardPara.TextStyle = StyleTextMuted()
	keyboardPara.BorderStyle = StyleBorder(false)
	keyboardPara.Text = `[j/k](fg:green) or [<up>/<down>](fg:green) -> Move
[<enter>](fg:green) -> Expand or collapse a node
[E](fg:green) / [C](fg:green) -> Expand or collapse all
[<tab>](fg:green) -> Switch between name and phone index
[q](fg:green) or [<esc>](fg:green) -> Quit`

	refresh := func() {
		treeWidget.Title = fmt.Sprintf(" %s index ", order)
		treeWidget.SetNodes(buildTreeNodes(book.Tree(order), order))
	}
	refresh()

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewCol(0.6, treeWidget),
		ui.NewCol(0.4,
			ui.NewRow(0.6, infoPara),
			ui.NewRow(0.4, keyboardPara),
		),
	)

	uiEvents := ui.PollEvents()
	for {
		infoPara.Text = treeSummary(book, order, treeWidget.SelectedNode())
		ui.Render(grid)

		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return
		case "j", "<Down>":
			treeWidget.ScrollDown()
		case "k", "<Up>":
			treeWidget.ScrollUp()
		case "<Enter>":
			treeWidget.ToggleExpand()
		case "E":
			treeWidget.ExpandAll()
		case "C":
			treeWidget.CollapseAll()
		case "<Tab>":
			order = order.Other()
			refresh()
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			}
			ui.Clear()
		}
	}
}
