package types

// ListNotificationsReq 通知一覧の取得条件
type ListNotificationsReq struct {
	UnreadOnly bool `form:"unread_only"`
	Offset     int  `form:"offset"`
	Limit      int  `form:"limit,default=50"`
}

// NotificationItem 通知1件
type NotificationItem struct {
	ID               uint64 `json:"id"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	Link             string `json:"link"`
	IsRead           bool   `json:"is_read"`
	NotificationType string `json:"notification_type"`
	CreatedAt        string `json:"created_at"`
}

// DashboardResp サプライヤーダッシュボード統計
type DashboardResp struct {
	TotalProposals      int64 `json:"total_proposals"`
	ActiveProposals     int64 `json:"active_proposals"`
	AcceptedProposals   int64 `json:"accepted_proposals"`
	RejectedProposals   int64 `json:"rejected_proposals"`
	PointBalance        int64 `json:"point_balance"`
	UnreadNotifications int64 `json:"unread_notifications"`
}
