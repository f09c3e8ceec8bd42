package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/academics/students/model"
)

type studentSeed struct {
	StudentCode string  `json:"student_code"`
	StudentName string  `json:"student_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] seeding students from:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] failed to read JSON file: %v", err)
	}

	var inputs []studentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.Where("student_code = ?", data.StudentCode).First(&existing).Error; err == nil {
			log.Printf("[INFO] student '%s' already exists, skipped", data.StudentCode)
			continue
		}

		row := model.StudentModel{
			StudentCode:    data.StudentCode,
			StudentName:    data.StudentName,
			StudentEmail:   data.Email,
			StudentPhone:   data.Phone,
			StudentAddress: data.Address,
			StudentGender:  data.Gender,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] failed to seed student '%s': %v", data.StudentCode, err)
		}
	}
}
