package internal

import "cms-console/internal/content/state"

type StateResponse struct {
	User              UserResponse         `json:"user"`
	Session           state.Resource       `json:"session"`
	Collections       []CollectionResponse `json:"collections"`
	CollectionsStatus state.Resource       `json:"collections_status"`
	CreateCollection  state.Resource       `json:"create_collection"`
	RecordsCollection string               `json:"records_collection,omitempty"`
	Records           []RecordResponse     `json:"records"`
	RecordsStatus     state.Resource       `json:"records_status"`
	UpdateRecord      state.Resource       `json:"update_record"`
}

func ToStateResponse(current state.ConsoleState) StateResponse {
	return StateResponse{
		User: UserResponse{
			UserID:   current.User.ID.String(),
			Username: current.User.Username,
		},
		Session:           current.Session,
		Collections:       ToCollectionListResponse(current.Collections).Data,
		CollectionsStatus: current.CollectionsStatus,
		CreateCollection:  current.CreateCollection,
		RecordsCollection: current.RecordsCollection,
		Records:           ToRecordListResponse(current.Records).Data,
		RecordsStatus:     current.RecordsStatus,
		UpdateRecord:      current.UpdateRecord,
	}
}
