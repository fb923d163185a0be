package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rayk_backend/internals/configs"
	"rayk_backend/internals/features/campaigns/model"
	contactModel "rayk_backend/internals/features/contacts/model"
)

// Dispatcher fans a launched campaign out into delivery rows and pushes
// them through the channel engine. One failed contact never aborts the run;
// the delivery row records the error and the loop moves on.
type Dispatcher struct {
	DB       *gorm.DB
	Email    ChannelEngine
	SMS      ChannelEngine
	WhatsApp ChannelEngine
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	return &Dispatcher{
		DB:       db,
		Email:    NewEmailEngine(),
		SMS:      NewSMSEngine(),
		WhatsApp: NewWhatsAppEngine(),
	}
}

// Addressable reports whether a contact can receive the campaign channel.
// Opted-out contacts are never addressable.
func Addressable(contact contactModel.ContactModel, channel model.CampaignChannel) bool {
	if contact.ContactOptedOut {
		return false
	}
	switch channel {
	case model.CampaignChannelEmail:
		return contact.ContactEmail != nil && *contact.ContactEmail != ""
	case model.CampaignChannelSMS, model.CampaignChannelWhatsApp:
		return contact.ContactPhone != nil && *contact.ContactPhone != ""
	case model.CampaignChannelWeb:
		return true
	default:
		return false
	}
}

// ResolveAudience loads the campaign's contacts: the group when set,
// otherwise the explicit ID list.
func (d *Dispatcher) ResolveAudience(campaign *model.CampaignModel) ([]contactModel.ContactModel, error) {
	var contacts []contactModel.ContactModel

	if campaign.CampaignGroupID != nil {
		err := d.DB.
			Joins("JOIN contact_group_members gm ON gm.contact_group_member_contact_id = contacts.contact_id").
			Where("gm.contact_group_member_group_id = ? AND contact_org_id = ?",
				*campaign.CampaignGroupID, campaign.CampaignOrgID).
			Find(&contacts).Error
		return contacts, err
	}

	var ids []string
	if len(campaign.CampaignContactIDs) > 0 {
		if err := json.Unmarshal(campaign.CampaignContactIDs, &ids); err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	err := d.DB.Where("contact_id IN ? AND contact_org_id = ?",
		ids, campaign.CampaignOrgID).Find(&contacts).Error
	return contacts, err
}

// Launch creates one pending delivery per addressable contact and returns
// them; the vendor sends happen in Run.
func (d *Dispatcher) Launch(campaign *model.CampaignModel) ([]model.DeliveryModel, error) {
	contacts, err := d.ResolveAudience(campaign)
	if err != nil {
		return nil, err
	}

	deliveries := make([]model.DeliveryModel, 0, len(contacts))
	for _, contact := range contacts {
		if !Addressable(contact, campaign.CampaignChannel) {
			continue
		}
		deliveries = append(deliveries, model.DeliveryModel{
			DeliveryOrgID:      campaign.CampaignOrgID,
			DeliveryCampaignID: campaign.CampaignID,
			DeliveryContactID:  contact.ContactID,
			DeliveryToken:      uuid.New(),
			DeliveryChannel:    campaign.CampaignChannel,
			DeliveryStatus:     model.DeliveryStatusPending,
		})
	}
	if len(deliveries) == 0 {
		return nil, nil
	}

	if err := d.DB.CreateInBatches(&deliveries, 200).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// Run sends every pending delivery of the campaign. Intended to run in a
// background goroutine after launch; it finishes by marking the campaign
// completed (or failed when not a single send went out).
func (d *Dispatcher) Run(campaign *model.CampaignModel, deliveries []model.DeliveryModel) {
	engine := d.EngineFor(campaign.CampaignChannel)

	// Contact lookup once, not per delivery.
	contactIDs := make([]uuid.UUID, 0, len(deliveries))
	for _, del := range deliveries {
		contactIDs = append(contactIDs, del.DeliveryContactID)
	}
	var contacts []contactModel.ContactModel
	if err := d.DB.Where("contact_id IN ?", contactIDs).Find(&contacts).Error; err != nil {
		log.Printf("[ERROR] dispatcher contact load: %v", err)
		return
	}
	byID := make(map[uuid.UUID]contactModel.ContactModel, len(contacts))
	for _, ct := range contacts {
		byID[ct.ContactID] = ct
	}

	subject := ""
	if campaign.CampaignSubject != nil {
		subject = *campaign.CampaignSubject
	}

	sent := 0
	for i := range deliveries {
		del := &deliveries[i]
		contact, ok := byID[del.DeliveryContactID]
		if !ok {
			d.markFailed(del, "contact vanished before send")
			continue
		}

		link := SurveyLink(configs.PublicBaseURL, del.DeliveryToken.String())
		body := RenderTemplate(campaign.CampaignTemplate, contact.ContactName, link)

		if campaign.CampaignChannel == model.CampaignChannelWeb {
			// Web channel has no vendor call; the delivery carries the link.
			d.markSent(del, nil)
			sent++
			continue
		}

		to := ""
		switch campaign.CampaignChannel {
		case model.CampaignChannelEmail:
			to = *contact.ContactEmail
		default:
			to = *contact.ContactPhone
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		vendorID, err := engine.Send(ctx, to, subject, body)
		cancel()
		if err != nil {
			d.markFailed(del, err.Error())
			continue
		}
		var vendorPtr *string
		if vendorID != "" {
			vendorPtr = &vendorID
		}
		d.markSent(del, vendorPtr)
		sent++
	}

	final := model.CampaignStatusCompleted
	if sent == 0 {
		final = model.CampaignStatusFailed
	}
	if err := d.DB.Model(campaign).Update("campaign_status", final).Error; err != nil {
		log.Printf("[ERROR] dispatcher final status: %v", err)
	}
}

func (d *Dispatcher) EngineFor(channel model.CampaignChannel) ChannelEngine {
	switch channel {
	case model.CampaignChannelEmail:
		return d.Email
	case model.CampaignChannelSMS:
		return d.SMS
	case model.CampaignChannelWhatsApp:
		return d.WhatsApp
	default:
		return nil
	}
}

func (d *Dispatcher) markSent(del *model.DeliveryModel, vendorID *string) {
	now := time.Now()
	updates := map[string]interface{}{
		"delivery_status":  model.DeliveryStatusSent,
		"delivery_sent_at": now,
	}
	if vendorID != nil {
		updates["delivery_vendor_message_id"] = *vendorID
	}
	if err := d.DB.Model(del).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mark delivery sent: %v", err)
	}
}

func (d *Dispatcher) markFailed(del *model.DeliveryModel, reason string) {
	if err := d.DB.Model(del).Updates(map[string]interface{}{
		"delivery_status": model.DeliveryStatusFailed,
		"delivery_error":  reason,
	}).Error; err != nil {
		log.Printf("[ERROR] mark delivery failed: %v", err)
	}
}
