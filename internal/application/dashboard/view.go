package dashboard

import (
	"complaintbox/internal/application/complaint/dto"
	"complaintbox/internal/application/complaint/usecases"
	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/utils"
)

// SyncStatus is the engine's reconciliation state as shown to the
// dashboard session.
type SyncStatus string

const (
	StatusLoading     SyncStatus = "loading"
	StatusSynced      SyncStatus = "synced"
	StatusReconciling SyncStatus = "reconciling"
)

// ViewParams are the session-local view controls: free-text filter,
// unread-only toggle, and 1-indexed page.
type ViewParams struct {
	Filter     string `json:"filter"`
	UnreadOnly bool   `json:"unread_only"`
	Page       int    `json:"page"`
}

// ViewState is one rendered dashboard frame: the visible page plus the
// counters and paging context the client needs.
type ViewState struct {
	Status      SyncStatus         `json:"status"`
	Complaints  []dto.ComplaintDTO `json:"complaints"`
	Page        int                `json:"page"`
	TotalPages  int                `json:"total_pages"`
	TotalCount  int                `json:"total_count"`
	UnreadCount int                `json:"unread_count"`
	Filter      string             `json:"filter"`
	UnreadOnly  bool               `json:"unread_only"`
}

// computeView derives a view frame from a snapshot. The page is clamped
// into [1, totalPages] so a delete that empties the last page lands the
// session on the new last page instead of an empty one.
func computeView(snapshot []*complaint.Complaint, params ViewParams, status SyncStatus) ViewState {
	matched := make([]*complaint.Complaint, 0, len(snapshot))
	unread := 0
	for _, c := range snapshot {
		if c.IsNew() {
			unread++
		}
		if !c.MatchesFilter(params.Filter) {
			continue
		}
		if params.UnreadOnly && !c.IsNew() {
			continue
		}
		matched = append(matched, c)
	}

	totalPages := utils.TotalPages(len(matched), constants.DashboardPageSize)
	page := utils.ClampPage(params.Page, len(matched), constants.DashboardPageSize)
	start, end := utils.ApplyPagination(len(matched), page, constants.DashboardPageSize)

	pageItems := make([]dto.ComplaintDTO, 0, end-start)
	for _, c := range matched[start:end] {
		pageItems = append(pageItems, usecases.ToDTO(c))
	}

	return ViewState{
		Status:      status,
		Complaints:  pageItems,
		Page:        page,
		TotalPages:  totalPages,
		TotalCount:  len(matched),
		UnreadCount: unread,
		Filter:      params.Filter,
		UnreadOnly:  params.UnreadOnly,
	}
}
