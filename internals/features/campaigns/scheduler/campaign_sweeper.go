package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"rayk_backend/internals/features/campaigns/model"
)

// StartCampaignSweeper finalizes campaigns stuck in "sending" (for example
// after a crash mid-dispatch): once every delivery is terminal the campaign
// is marked completed, or failed when nothing went out.
func StartCampaignSweeper(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			sweep(db)
		}
	}()
}

func sweep(db *gorm.DB) {
	var campaigns []model.CampaignModel
	if err := db.Where("campaign_status = ?", model.CampaignStatusSending).
		Find(&campaigns).Error; err != nil {
		log.Printf("[ERROR] campaign sweep: %v", err)
		return
	}

	for i := range campaigns {
		campaign := &campaigns[i]

		var pending int64
		if err := db.Model(&model.DeliveryModel{}).
			Where("delivery_campaign_id = ? AND delivery_status = ?",
				campaign.CampaignID, model.DeliveryStatusPending).
			Count(&pending).Error; err != nil {
			log.Printf("[ERROR] campaign sweep count: %v", err)
			continue
		}
		if pending > 0 {
			continue
		}

		var sent int64
		if err := db.Model(&model.DeliveryModel{}).
			Where("delivery_campaign_id = ? AND delivery_status IN ?",
				campaign.CampaignID,
				[]model.DeliveryStatus{model.DeliveryStatusSent, model.DeliveryStatusResponded}).
			Count(&sent).Error; err != nil {
			continue
		}

		final := model.CampaignStatusCompleted
		if sent == 0 {
			final = model.CampaignStatusFailed
		}
		if err := db.Model(campaign).Update("campaign_status", final).Error; err != nil {
			log.Printf("[ERROR] campaign sweep update: %v", err)
		} else {
			log.Printf("[INFO] campaign %s swept to %s", campaign.CampaignID, final)
		}
	}
}
