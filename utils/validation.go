package utils

import (
	"PulmoCare/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

// ValidateTransferInput validates a transfer insertion payload.
func ValidateTransferInput(transfer models.PatientTransfer) error {
	return validation.ValidateStruct(&transfer,
		validation.Field(&transfer.PatientID, validation.Required),
		validation.Field(&transfer.ToWardID, validation.Required),
		validation.Field(&transfer.Reason, validation.Length(0, 2000)),
	)
}

// ValidateWardInput validates a ward insertion payload.
func ValidateWardInput(ward models.Ward) error {
	return validation.ValidateStruct(&ward,
		validation.Field(&ward.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&ward.Type, validation.Required, validation.In(
			models.WardTypeICU, models.WardTypeNonICU, models.WardTypeTBWing, models.WardTypeBackside)),
		validation.Field(&ward.TotalBeds, validation.Required, validation.Min(1)),
	)
}

// ValidatePatientInput validates a patient insertion payload.
func ValidatePatientInput(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.PatientID, validation.Required, validation.Length(1, 50)),
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&patient.Age, validation.Min(0), validation.Max(150)),
	)
}

// ValidateReportInput validates a medical report insertion payload.
func ValidateReportInput(report models.MedicalReport) error {
	return validation.ValidateStruct(&report,
		validation.Field(&report.PatientID, validation.Required),
		validation.Field(&report.ReportType, validation.Required),
		validation.Field(&report.Title, validation.Required, validation.Length(1, 255)),
	)
}

// ValidateCommentInput validates a report comment insertion payload.
func ValidateCommentInput(comment models.ReportComment) error {
	return validation.ValidateStruct(&comment,
		validation.Field(&comment.ReportID, validation.Required),
		validation.Field(&comment.Comment, validation.Required, validation.Length(1, 5000)),
	)
}

// ValidateProcedureInput validates a procedure insertion payload.
func ValidateProcedureInput(procedure models.Procedure) error {
	return validation.ValidateStruct(&procedure,
		validation.Field(&procedure.PatientID, validation.Required),
		validation.Field(&procedure.ProcedureType, validation.Required),
		validation.Field(&procedure.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&procedure.ScheduledDate, validation.Required),
	)
}

// ValidateNotificationInput validates a notification insertion payload.
func ValidateNotificationInput(notification models.Notification) error {
	return validation.ValidateStruct(&notification,
		validation.Field(&notification.UserID, validation.Required),
		validation.Field(&notification.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&notification.Message, validation.Required),
		validation.Field(&notification.Type, validation.Required, validation.In(
			models.NotificationTypeEmergency, models.NotificationTypeInfo,
			models.NotificationTypeWarning, models.NotificationTypeSuccess)),
	)
}

// ValidateMessageInput validates a message insertion payload. Direct messages
// need a recipient; group messages do not.
func ValidateMessageInput(message models.Message) error {
	err := validation.ValidateStruct(&message,
		validation.Field(&message.Content, validation.Required, validation.Length(1, 10000)),
		validation.Field(&message.Subject, validation.Length(0, 255)),
	)
	if err != nil {
		return err
	}
	if !message.IsGroupMessage && message.RecipientID == nil {
		return validation.Errors{"recipientId": errors.New("cannot be blank for a direct message")}
	}
	return nil
}

// ValidateCmeEventInput validates a CME event insertion payload.
func ValidateCmeEventInput(event models.CmeEvent) error {
	return validation.ValidateStruct(&event,
		validation.Field(&event.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&event.EventDate, validation.Required),
	)
}

// ValidateJournalArticleInput validates a journal article insertion payload.
func ValidateJournalArticleInput(article models.JournalArticle) error {
	return validation.ValidateStruct(&article,
		validation.Field(&article.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&article.FileURL, is.URL),
	)
}

// ValidateUserData validates user data before stand-in registration.
func ValidateUserData(user models.User) error {
	return validation.ValidateStruct(&user,
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
