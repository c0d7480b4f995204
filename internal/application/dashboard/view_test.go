package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintbox/internal/domain/complaint"
)

// makeComplaints builds n complaints, newest first, with IDs n..1.
func makeComplaints(t *testing.T, n int) []*complaint.Complaint {
	t.Helper()
	out := make([]*complaint.Complaint, 0, n)
	for i := n; i >= 1; i-- {
		c, err := complaint.ReconstructComplaint(
			uint(i),
			fmt.Sprintf("Name %d", i),
			fmt.Sprintf("user%d@example.com", i),
			fmt.Sprintf("Subject %d", i),
			fmt.Sprintf("Body text %d", i),
			true,
			nil,
			time.Now().UTC().Add(-time.Duration(n-i)*time.Minute),
		)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestComputeView_PaginationSplits(t *testing.T) {
	snapshot := makeComplaints(t, 13)

	page1 := computeView(snapshot, ViewParams{Page: 1}, StatusSynced)
	assert.Len(t, page1.Complaints, 6)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 13, page1.TotalCount)
	assert.Equal(t, uint(13), page1.Complaints[0].ID, "newest first")

	page2 := computeView(snapshot, ViewParams{Page: 2}, StatusSynced)
	assert.Len(t, page2.Complaints, 6)

	page3 := computeView(snapshot, ViewParams{Page: 3}, StatusSynced)
	assert.Len(t, page3.Complaints, 1)
	assert.Equal(t, uint(1), page3.Complaints[0].ID)
}

func TestComputeView_PageClamping(t *testing.T) {
	snapshot := makeComplaints(t, 13)

	over := computeView(snapshot, ViewParams{Page: 99}, StatusSynced)
	assert.Equal(t, 3, over.Page)
	assert.Len(t, over.Complaints, 1)

	under := computeView(snapshot, ViewParams{Page: 0}, StatusSynced)
	assert.Equal(t, 1, under.Page)
}

func TestComputeView_ShrunkSetReclamps(t *testing.T) {
	// Session sat on page 3 of 13; deletions shrink the set to 12 and
	// page 3 disappears.
	snapshot := makeComplaints(t, 12)

	view := computeView(snapshot, ViewParams{Page: 3}, StatusSynced)
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Complaints, 6)
}

func TestComputeView_EmptySet(t *testing.T) {
	view := computeView(nil, ViewParams{Page: 1}, StatusLoading)
	assert.Empty(t, view.Complaints)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 0, view.TotalCount)
	assert.Equal(t, StatusLoading, view.Status)
}

func TestComputeView_Filter(t *testing.T) {
	snapshot := makeComplaints(t, 13)

	view := computeView(snapshot, ViewParams{Filter: "subject 7", Page: 1}, StatusSynced)
	require.Len(t, view.Complaints, 1)
	assert.Equal(t, uint(7), view.Complaints[0].ID)
	assert.Equal(t, 1, view.TotalPages)

	none := computeView(snapshot, ViewParams{Filter: "no such complaint", Page: 1}, StatusSynced)
	assert.Empty(t, none.Complaints)
	assert.Equal(t, 0, none.TotalCount)
}

func TestComputeView_UnreadOnly(t *testing.T) {
	snapshot := makeComplaints(t, 4)
	snapshot[0].MarkRead()
	snapshot[1].MarkRead()

	view := computeView(snapshot, ViewParams{UnreadOnly: true, Page: 1}, StatusSynced)
	assert.Len(t, view.Complaints, 2)
	assert.Equal(t, 2, view.TotalCount)
	assert.Equal(t, 2, view.UnreadCount)
	for _, c := range view.Complaints {
		assert.True(t, c.IsNew)
	}
}

func TestComputeView_UnreadCountIgnoresFilter(t *testing.T) {
	snapshot := makeComplaints(t, 5)
	snapshot[0].MarkRead()

	view := computeView(snapshot, ViewParams{Filter: "subject 2", Page: 1}, StatusSynced)
	assert.Equal(t, 1, view.TotalCount)
	assert.Equal(t, 4, view.UnreadCount, "unread badge counts the whole set")
}
