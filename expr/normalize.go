package expr

// Normalize 返回不含 nil 节点和空条件表达式的等价树。
//   - nil 替换为空值字面量
//   - 没有分支的 Conditional（零值）折叠为它的 otherwise
//
// Conditional 和 Binary 的子树递归规范，其他节点原样返回。
func Normalize(n Node) Node {
	switch v := n.(type) {
	case nil:
		return Lit(NullScalar())
	case Conditional:
		if len(v.branches) == 0 {
			return Normalize(v.otherwise)
		}
		branches := make([]Branch, len(v.branches))
		for i, b := range v.branches {
			branches[i] = Branch{Predicate: Normalize(b.Predicate), Result: Normalize(b.Result)}
		}
		return Conditional{branches: branches, otherwise: Normalize(v.otherwise)}
	case Binary:
		return Binary{Left: Normalize(v.Left), Op: v.Op, Right: Normalize(v.Right)}
	default:
		return n
	}
}
