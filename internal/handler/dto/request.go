package dto

type CheckInRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

type ManualCheckInRequest struct {
	Search string `json:"search" binding:"required"`
}

type ListAttendeesQuery struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	CheckedIn string `form:"checked_in"`
}

type RecentCheckInsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
