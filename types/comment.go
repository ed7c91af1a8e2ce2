package types

// CommentCreateReq コメント追加
type CommentCreateReq struct {
	Content    string `json:"content" binding:"required"`
	ParentID   uint64 `json:"parent_id"`
	IsInternal bool   `json:"is_internal"` // バイヤーの内部メモ（サプライヤーに非表示）
}

// CommentItem コメント1件
type CommentItem struct {
	ID         uint64        `json:"id"`
	Content    string        `json:"content"`
	UserName   string        `json:"user_name"`
	UserRole   string        `json:"user_role"`
	IsInternal bool          `json:"is_internal"`
	CreatedAt  string        `json:"created_at"`
	Replies    []CommentItem `json:"replies"`
}
