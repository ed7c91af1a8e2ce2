package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenPaymentID 決済参照番号の採番（決済連携はダミーのためプレースホルダ）
func GenPaymentID() string {
	return "pay-" + node.Generate().String()
}

func GenID() int64 {
	return node.Generate().Int64()
}
