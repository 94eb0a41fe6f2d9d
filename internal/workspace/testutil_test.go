package workspace

// sampleTree builds the default seed shape:
//
//	vscode-clone/
//	  src/
//	    App.tsx
//	    main.tsx
//	  package.json
//	  conflict.ts
func sampleTree() *Tree {
	app := &Node{ID: "app-tsx", Name: "App.tsx", Kind: KindFile, Language: "typescript",
		Content: "import React from 'react';\n\nexport default function App() {\n  return null;\n}"}
	main := &Node{ID: "main-tsx", Name: "main.tsx", Kind: KindFile, Language: "typescript",
		Content: "import App from './App';\ncreateRoot(document.getElementById('root')!);"}
	src := &Node{ID: "src", Name: "src", Kind: KindDirectory, Expanded: true, Children: []*Node{app, main}}
	pkg := &Node{ID: "package-json", Name: "package.json", Kind: KindFile, Language: "json",
		Content: "{\n  \"name\": \"vscode-clone\"\n}"}
	conflict := &Node{ID: "conflict-ts", Name: "conflict.ts", Kind: KindFile, Language: "typescript",
		Content: "<<<<<<< HEAD\nport: 3000\n=======\nport: 8080\n>>>>>>> feature/new-server"}
	root := &Node{ID: "root", Name: "vscode-clone", Kind: KindDirectory, Expanded: true,
		Children: []*Node{src, pkg, conflict}}
	return NewTree(root)
}

func testController() *Controller {
	return NewController(sampleTree())
}

// mustFind looks up id in the controller's current tree.
func mustFind(c *Controller, id string) *Node {
	n := c.Tree().Find(id)
	if n == nil {
		panic("node not found: " + id)
	}
	return n
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
