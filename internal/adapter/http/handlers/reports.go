package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) GetUserTaskReport(c *gin.Context) {
	managerID, ok := pathID(c, "managerUserId")
	if !ok {
		return
	}

	reports, err := h.reportService.GetUserTaskReport(c.Request.Context(), managerID)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailReport, "failed to build user task report", zap.Uint64("manager_id", managerID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserTaskReportItems(reports))
}
