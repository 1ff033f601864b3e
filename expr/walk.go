package expr

// Walk 先序遍历表达式树。fn 返回 false 时跳过该节点的子节点
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	switch v := n.(type) {
	case Conditional:
		for _, b := range v.branches {
			Walk(b.Predicate, fn)
			Walk(b.Result, fn)
		}
		Walk(v.otherwise, fn)
	case Binary:
		Walk(v.Left, fn)
		Walk(v.Right, fn)
	}
}

// ColumnNames 收集表达式中引用的列名，按首次出现的顺序去重。
// 选择器（"*"、正则）原样返回，不做解析
func ColumnNames(n Node) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	Walk(n, func(node Node) bool {
		switch v := node.(type) {
		case Column:
			add(v.Name)
		case Columns:
			for _, name := range v.names {
				add(name)
			}
		}
		return true
	})
	return names
}
