package seeds

import (
	"gorm.io/gorm"

	products "unisize_backend/internals/seeds/products"
	schools "unisize_backend/internals/seeds/schools"
	users "unisize_backend/internals/seeds/users"
)

// RunAllSeeds는 초기 운영 데이터를 적재한다. 각 시더는 멱등이라 재실행해도 안전하다.
func RunAllSeeds(db *gorm.DB) {
	//* 협약 학교
	schools.SeedSchoolsFromJSON(db, "internals/seeds/schools/data_schools.json")

	//* 교복 상품 카탈로그
	products.SeedProductsFromJSON(db, "internals/seeds/products/data_products.json")

	//* 부트스트랩 관리자
	users.SeedAdminsFromJSON(db, "internals/seeds/users/data_admins.json")
}
