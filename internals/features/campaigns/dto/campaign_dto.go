package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/campaigns/model"
)

type CampaignDTO struct {
	CampaignID       string     `json:"campaign_id"`
	CampaignSurveyID string     `json:"campaign_survey_id"`
	CampaignName     string     `json:"campaign_name"`
	CampaignChannel  string     `json:"campaign_channel"`
	CampaignStatus   string     `json:"campaign_status"`
	CampaignGroupID  *string    `json:"campaign_group_id,omitempty"`
	CampaignSubject  *string    `json:"campaign_subject,omitempty"`
	CampaignTemplate string     `json:"campaign_template"`
	LaunchedAt       *time.Time `json:"launched_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CampaignStatsDTO struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Sent      int64 `json:"sent"`
	Failed    int64 `json:"failed"`
	Responded int64 `json:"responded"`
}

type CreateCampaignRequest struct {
	CampaignSurveyID string   `json:"campaign_survey_id" validate:"required,uuid"`
	CampaignName     string   `json:"campaign_name" validate:"required,min=2,max=150"`
	CampaignChannel  string   `json:"campaign_channel" validate:"required,oneof=email sms whatsapp web"`
	CampaignGroupID  *string  `json:"campaign_group_id" validate:"omitempty,uuid"`
	ContactIDs       []string `json:"contact_ids" validate:"omitempty,dive,uuid"`
	CampaignSubject  *string  `json:"campaign_subject" validate:"omitempty,max=200"`
	CampaignTemplate string   `json:"campaign_template" validate:"required,min=2"`
}

type DeliveryDTO struct {
	DeliveryID      string     `json:"delivery_id"`
	ContactID       string     `json:"contact_id"`
	Token           string     `json:"token"`
	Channel         string     `json:"channel"`
	Status          string     `json:"status"`
	VendorMessageID *string    `json:"vendor_message_id,omitempty"`
	Error           *string    `json:"error,omitempty"`
	SentAt          *time.Time `json:"sent_at,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
}

func ToCampaignDTO(m model.CampaignModel) CampaignDTO {
	out := CampaignDTO{
		CampaignID:       m.CampaignID.String(),
		CampaignSurveyID: m.CampaignSurveyID.String(),
		CampaignName:     m.CampaignName,
		CampaignChannel:  string(m.CampaignChannel),
		CampaignStatus:   string(m.CampaignStatus),
		CampaignSubject:  m.CampaignSubject,
		CampaignTemplate: m.CampaignTemplate,
		LaunchedAt:       m.CampaignLaunchedAt,
		CreatedAt:        m.CampaignCreatedAt,
	}
	if m.CampaignGroupID != nil {
		s := m.CampaignGroupID.String()
		out.CampaignGroupID = &s
	}
	return out
}

func ToDeliveryDTO(m model.DeliveryModel) DeliveryDTO {
	return DeliveryDTO{
		DeliveryID:      m.DeliveryID.String(),
		ContactID:       m.DeliveryContactID.String(),
		Token:           m.DeliveryToken.String(),
		Channel:         string(m.DeliveryChannel),
		Status:          string(m.DeliveryStatus),
		VendorMessageID: m.DeliveryVendorMessageID,
		Error:           m.DeliveryError,
		SentAt:          m.DeliverySentAt,
		RespondedAt:     m.DeliveryRespondedAt,
	}
}

func ContactIDsJSON(ids []string) datatypes.JSON {
	if len(ids) == 0 {
		return nil
	}
	raw, _ := json.Marshal(ids)
	return datatypes.JSON(raw)
}
