package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unisize_backend/internals/features/users/model"
)

type AdminSeed struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Password     string `json:"password"`
	Gender       string `json:"gender"`
	Role         string `json:"role"`
}

// SeedAdminsFromJSON은 부트스트랩 관리자 계정을 적재한다.
// 가입 승인 게이트를 거치지 않으므로 is_active=true로 바로 활성화한다.
func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 관리자 시드 파일 읽는 중:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ 시드 파일을 읽지 못했습니다: %v", err)
		return
	}

	var seeds []AdminSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ 시드 JSON 파싱 실패: %v", err)
		return
	}

	for _, a := range seeds {
		var existing model.UserModel
		if err := db.Where("employee_id = ?", a.EmployeeID).First(&existing).Error; err == nil {
			log.Printf("ℹ️ 사번 '%s'는 이미 있어 건너뜁니다", a.EmployeeID)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ 사번 '%s' 비밀번호 해시 실패: %v", a.EmployeeID, err)
			continue
		}

		row := model.UserModel{
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			Password:     string(hashed),
			Gender:       a.Gender,
			Role:         a.Role,
			IsActive:     true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ 관리자 '%s' 적재 실패: %v", a.EmployeeID, err)
		} else {
			log.Printf("✅ 관리자 '%s' 적재 완료", row.EmployeeID)
		}
	}
}
