package controllers

import (
	"PulmoCare/handlers"
	"PulmoCare/middlewares"

	"github.com/gin-gonic/gin"
)

// APIHandlers bundles the handlers registered under /api.
type APIHandlers struct {
	Dashboard    *handlers.DashboardHandler
	Ward         *handlers.WardHandler
	Patient      *handlers.PatientHandler
	Transfer     *handlers.TransferHandler
	Report       *handlers.ReportHandler
	Equipment    *handlers.EquipmentHandler
	Procedure    *handlers.ProcedureHandler
	Notification *handlers.NotificationHandler
	Message      *handlers.MessageHandler
	Cme          *handlers.CmeHandler
	Journal      *handlers.JournalHandler
}

// SetupAPIRoutes registers the department API behind token authentication.
func SetupAPIRoutes(router *gin.Engine, h *APIHandlers) {
	api := router.Group("/api")
	api.Use(middlewares.TokenAuthMiddleware())

	api.GET("/dashboard/stats", h.Dashboard.GetStats)

	api.GET("/wards", h.Ward.GetWards)
	api.POST("/wards", h.Ward.CreateWard)
	api.GET("/wards/:ward_id", h.Ward.GetWard)
	api.GET("/wards/:ward_id/patients", h.Ward.GetWardPatients)
	api.GET("/wards/:ward_id/equipment", h.Equipment.GetWardEquipment)
	api.PUT("/wards/:ward_id/occupancy", h.Ward.UpdateWardOccupancy)

	api.GET("/patients", h.Patient.GetPatients)
	api.POST("/patients", h.Patient.CreatePatient)
	api.GET("/patients/:patient_id", h.Patient.GetPatient)
	api.PUT("/patients/:patient_id", h.Patient.UpdatePatient)
	api.GET("/patients/:patient_id/reports", h.Report.GetPatientReports)
	api.GET("/patients/:patient_id/procedures", h.Procedure.GetPatientProcedures)

	api.GET("/transfers", h.Transfer.GetTransfers)
	api.GET("/transfers/recent", h.Transfer.GetRecentTransfers)
	api.POST("/transfers", h.Transfer.RequestTransfer)
	api.GET("/transfers/:transfer_id", h.Transfer.GetTransfer)
	api.PUT("/transfers/:transfer_id", h.Transfer.UpdateTransferStatus)

	api.GET("/reports", h.Report.GetReports)
	api.GET("/reports/pending", h.Report.GetPendingReports)
	api.POST("/reports", h.Report.UploadReport)
	api.GET("/reports/:report_id", h.Report.GetReport)
	api.PUT("/reports/:report_id/review", h.Report.ReviewReport)
	api.GET("/reports/:report_id/comments", h.Report.GetReportComments)
	api.POST("/reports/:report_id/comments", h.Report.AddReportComment)

	api.GET("/equipment", h.Equipment.GetEquipment)
	api.POST("/equipment", h.Equipment.CreateEquipment)
	api.PUT("/equipment/:equipment_id", h.Equipment.UpdateEquipment)

	api.GET("/procedures", h.Procedure.GetProcedures)
	api.GET("/procedures/today", h.Procedure.GetTodayProcedures)
	api.POST("/procedures", h.Procedure.CreateProcedure)
	api.PUT("/procedures/:procedure_id", h.Procedure.UpdateProcedure)

	api.GET("/notifications", h.Notification.GetNotifications)
	api.GET("/notifications/unread", h.Notification.GetUnreadNotifications)
	api.POST("/notifications", h.Notification.CreateNotification)
	api.PUT("/notifications/read-all", h.Notification.MarkAllNotificationsRead)
	api.PUT("/notifications/:notification_id/read", h.Notification.MarkNotificationRead)

	api.GET("/messages", h.Message.GetMessages)
	api.POST("/messages", h.Message.SendMessage)
	api.GET("/messages/conversation/:user_id", h.Message.GetConversation)
	api.PUT("/messages/:message_id/read", h.Message.MarkMessageRead)

	api.GET("/cme/events", h.Cme.GetCmeEvents)
	api.POST("/cme/events", h.Cme.CreateCmeEvent)
	api.GET("/cme/events/:event_id", h.Cme.GetCmeEvent)
	api.GET("/cme/events/:event_id/votes", h.Cme.GetCmeVotes)
	api.POST("/cme/events/:event_id/vote", h.Cme.VoteCmeEvent)

	api.GET("/journal/articles", h.Journal.GetJournalArticles)
	api.POST("/journal/articles", h.Journal.CreateJournalArticle)
	api.GET("/journal/articles/:article_id", h.Journal.GetJournalArticle)
}
