// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 必須フィールドのバリデーションを含みます。
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResp は/loginエンドポイントの成功レスポンスを表します。
// 資格情報検証の証明としてJWTトークンを併せて返します。
type LoginResp struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	Token    string `json:"token"`
}

// UserResp は/users/:user_nameエンドポイントのレスポンスを表します。
type UserResp struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}
