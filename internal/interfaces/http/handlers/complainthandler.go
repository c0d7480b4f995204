package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintbox/internal/application/complaint/usecases"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/logger"
	"complaintbox/internal/shared/utils"
)

type ComplaintHandler struct {
	submitUseCase *usecases.SubmitComplaintUseCase
	logger        logger.Interface
}

func NewComplaintHandler(submitUseCase *usecases.SubmitComplaintUseCase, log logger.Interface) *ComplaintHandler {
	return &ComplaintHandler{
		submitUseCase: submitUseCase,
		logger:        log,
	}
}

// Submit accepts an anonymous complaint as a multipart form with an
// optional attachment. The attachment size is rejected here, before the
// blob store sees a single byte.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	cmd := usecases.SubmitComplaintCommand{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Body:    c.PostForm("complaint"),
	}

	fileHeader, err := c.FormFile("attachment")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > constants.MaxAttachmentSize {
			utils.ErrorResponse(c, http.StatusBadRequest, "File size exceeds the 5MB limit")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read attachment")
			return
		}
		defer file.Close()

		cmd.Attachment = &usecases.AttachmentUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		}
	}

	result, err := h.submitUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.ComplaintID,
		"created_at": result.CreatedAt,
	}, "Complaint submitted successfully")
}
