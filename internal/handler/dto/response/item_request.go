package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemRequestResponse struct {
	ID          uuid.UUID       `json:"id"`
	RequesterID uuid.UUID       `json:"requesterId"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

var itemRequestCopyOption = copier.Option{
	DeepCopy: true,
	FieldNameMapping: []copier.FieldNameMapping{
		{SrcType: queries.ItemRequestView{}, DstType: ItemRequestResponse{}, Mapping: map[string]string{"CreatedAt": "Created"}},
	},
}

func FromItemRequestView(v *queries.ItemRequestView) (*ItemRequestResponse, error) {
	var res ItemRequestResponse
	if err := copier.CopyWithOption(&res, v, itemRequestCopyOption); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*ItemResponse{}
	}
	return &res, nil
}

func FromItemRequestList(views []*queries.ItemRequestView) ([]*ItemRequestResponse, error) {
	res := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		r, err := FromItemRequestView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
