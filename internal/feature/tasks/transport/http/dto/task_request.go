// Package dto はtasksフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// TaskReq は作成（POST）および更新（PUT）エンドポイントのリクエストボディを表します。
// 必須フィールドと優先度範囲のバリデーションを含みます。
type TaskReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	IsCompleted bool     `json:"isCompleted"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
	Priority    int      `json:"priority" binding:"min=0,max=5"`

	// UserID is accepted for wire compatibility with older clients and
	// ignored: ownership always comes from the verified token.
	UserID string `json:"userId"`
}

// CompleteReq は完了状態変更（PATCH /:id/complete）のリクエストボディを表します。
// false も有効な値のためポインタで受けます。
type CompleteReq struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}
