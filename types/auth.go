package types

// RegisterReq ユーザー登録リクエスト
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`         // 省略時は supplier
	Company  string `json:"company_name"` // 所属組織。指定時は組織も同時作成する
}

// LoginReq ログインリクエスト
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResp アクセストークン
type TokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResp ユーザー情報
type UserResp struct {
	ID             uint64 `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	IsActive       bool   `json:"is_active"`
	OrganizationID uint64 `json:"organization_id,omitempty"`
}
