package schools

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"unisize_backend/internals/features/schools/model"
)

type SchoolSeed struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	Type   string `json:"type"`
}

// SeedSchoolsFromJSON은 협약 학교 목록을 적재한다. 이미 있는 학교는 건너뛴다.
func SeedSchoolsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 학교 시드 파일 읽는 중:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ 시드 파일을 읽지 못했습니다: %v", err)
		return
	}

	var seeds []SchoolSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ 시드 JSON 파싱 실패: %v", err)
		return
	}

	for _, s := range seeds {
		var existing model.SchoolModel
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ 학교 '%s'는 이미 있어 건너뜁니다", s.Name)
			continue
		}

		row := model.SchoolModel{
			Name:   s.Name,
			Region: s.Region,
			Type:   s.Type,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ 학교 '%s' 적재 실패: %v", s.Name, err)
		} else {
			log.Printf("✅ 학교 '%s' 적재 완료", row.Name)
		}
	}
}
