package products

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"unisize_backend/internals/features/products/model"
)

type ProductSeed struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Season   string `json:"season"`
	Gender   string `json:"gender"`
	Price    int64  `json:"price"`
	SchoolID *int64 `json:"school_id"`
}

// SeedProductsFromJSON은 교복 상품 카탈로그를 적재한다.
// 같은 이름+시즌+성별 조합이 이미 있으면 건너뛴다.
func SeedProductsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 상품 시드 파일 읽는 중:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ 시드 파일을 읽지 못했습니다: %v", err)
		return
	}

	var seeds []ProductSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ 시드 JSON 파싱 실패: %v", err)
		return
	}

	for _, p := range seeds {
		var existing model.ProductModel
		if err := db.Where("name = ? AND season = ? AND gender = ?", p.Name, p.Season, p.Gender).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ 상품 '%s'(%s)는 이미 있어 건너뜁니다", p.Name, p.Season)
			continue
		}

		row := model.ProductModel{
			SchoolID: p.SchoolID,
			Name:     p.Name,
			Category: p.Category,
			Season:   p.Season,
			Gender:   p.Gender,
			Price:    p.Price,
			IsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ 상품 '%s' 적재 실패: %v", p.Name, err)
		} else {
			log.Printf("✅ 상품 '%s' (%d원) 적재 완료", row.Name, row.Price)
		}
	}
}
