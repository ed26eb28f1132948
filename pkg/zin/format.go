package zin

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders an expression in brace notation, e.g.
//
//	{if {<= 4 5} {lam (x y) x} 3}
//
// It is used for error messages and debug logs. There is no parser for it.
func Format(e Expr) string {
	var sb strings.Builder
	formatExpr(&sb, e)
	return sb.String()
}

func formatExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case NumC:
		sb.WriteString(strconv.Itoa(e.N))
	case BoolC:
		sb.WriteString(strconv.FormatBool(e.B))
	case IdC:
		sb.WriteString(e.Name)
	case IfC:
		sb.WriteString("{if ")
		formatExpr(sb, e.Cond)
		sb.WriteByte(' ')
		formatExpr(sb, e.Then)
		sb.WriteByte(' ')
		formatExpr(sb, e.Else)
		sb.WriteByte('}')
	case LamC:
		sb.WriteString("{lam (")
		sb.WriteString(strings.Join(e.Params, " "))
		sb.WriteString(") ")
		formatExpr(sb, e.Body)
		sb.WriteByte('}')
	case BinopC:
		sb.WriteByte('{')
		sb.WriteString(e.Op)
		sb.WriteByte(' ')
		formatExpr(sb, e.Left)
		sb.WriteByte(' ')
		formatExpr(sb, e.Right)
		sb.WriteByte('}')
	case nil:
		sb.WriteString("<nil>")
	default:
		fmt.Fprintf(sb, "<%T>", e)
	}
}
