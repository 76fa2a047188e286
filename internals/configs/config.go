package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var JWTSecret string

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env 파일이 없어 시스템 ENV를 사용합니다")
		} else {
			log.Println("✅ .env 파일 로드 완료")
		}
	} else {
		log.Println("🚀 Railway 환경, 시스템 ENV 사용")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET이 설정되지 않았습니다!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
