package seeders

import (
	"log"

	"paquetes-elclub/models/rate"

	"gorm.io/gorm"
)

func SeedRates(db *gorm.DB) {
	log.Printf("🔍 Checking service rates data integrity...")

	rates := []rate.Rate{
		{Code: "reception", Description: "Recepción de paquete", AmountCOP: 2500, IsActive: true},
		{Code: "storage_daily", Description: "Almacenamiento por día", AmountCOP: 1000, IsActive: true},
		{Code: "storage_oversize", Description: "Almacenamiento paquete voluminoso por día", AmountCOP: 2000, IsActive: true},
		{Code: "home_delivery", Description: "Entrega a domicilio zona urbana", AmountCOP: 5000, IsActive: true},
		{Code: "sms_notification", Description: "Notificación SMS", AmountCOP: 150, IsActive: true},
	}

	var missing []rate.Rate
	for _, r := range rates {
		var count int64
		if err := db.Model(&rate.Rate{}).Where("code = ?", r.Code).Count(&count).Error; err != nil {
			log.Printf("❌ Failed to check rate %s: %v", r.Code, err)
			continue
		}
		if count == 0 {
			missing = append(missing, r)
		}
	}

	if len(missing) == 0 {
		log.Printf("✅ All service rates are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing service rates...", len(missing))

	successCount := 0
	failureCount := 0

	for _, r := range missing {
		if err := db.Create(&r).Error; err != nil {
			log.Printf("❌ Failed to seed rate %s: %v", r.Code, err)
			failureCount++
		} else {
			log.Printf("✅ Added rate: %s (%.0f COP)", r.Code, r.AmountCOP)
			successCount++
		}
	}

	log.Printf("🎉 Seeding completed! Successfully inserted %d rates, %d failures", successCount, failureCount)
}
