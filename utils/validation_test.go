package utils

import (
	"PulmoCare/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransferInputRequiresPatientAndDestination(t *testing.T) {
	assert.Error(t, ValidateTransferInput(models.PatientTransfer{ToWardID: "ward-icu"}))
	assert.Error(t, ValidateTransferInput(models.PatientTransfer{PatientID: "p1"}))
	assert.NoError(t, ValidateTransferInput(models.PatientTransfer{PatientID: "p1", ToWardID: "ward-icu"}))
}

func TestValidateWardInputRejectsUnknownType(t *testing.T) {
	ward := models.Ward{Name: "New Wing", Type: "Cardiology", TotalBeds: 10}
	assert.Error(t, ValidateWardInput(ward))

	ward.Type = models.WardTypeTBWing
	assert.NoError(t, ValidateWardInput(ward))

	ward.TotalBeds = 0
	assert.Error(t, ValidateWardInput(ward))
}

func TestValidateMessageInputDirectMessageNeedsRecipient(t *testing.T) {
	direct := models.Message{Content: "Rounds at 9."}
	assert.Error(t, ValidateMessageInput(direct))

	recipient := "user-2"
	direct.RecipientID = &recipient
	assert.NoError(t, ValidateMessageInput(direct))

	group := models.Message{Content: "Rounds at 9.", IsGroupMessage: true}
	assert.NoError(t, ValidateMessageInput(group))
}

func TestValidateNotificationInputChecksType(t *testing.T) {
	notification := models.Notification{
		UserID:  "user-1",
		Title:   "Heads up",
		Message: "Something happened.",
		Type:    "urgent",
	}
	assert.Error(t, ValidateNotificationInput(notification))

	notification.Type = models.NotificationTypeWarning
	assert.NoError(t, ValidateNotificationInput(notification))
}

func TestValidatePasswordComplexity(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"short", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigitsHere!", false},
		{"NoSpecials123", false},
		{"Adequate1!", true},
	}
	for _, tc := range cases {
		err := validatePassword(tc.password)
		if tc.ok {
			assert.NoError(t, err, tc.password)
		} else {
			assert.Error(t, err, tc.password)
		}
	}
}
