package request

import "shareit/internal/usecase/shared"

type PageQuery struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=20" binding:"min=1"`
}

func (q PageQuery) ToPage() (shared.Page, error) {
	return shared.NewPage(q.From, q.Size)
}
