package seeds

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	batchModel "sekolahku_backend/internals/features/academics/batches/model"
	courseModel "sekolahku_backend/internals/features/academics/courses/model"
)

type courseSeed struct {
	CourseName  string  `json:"course_name"`
	CourseFee   float64 `json:"course_fee"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

type batchSeed struct {
	BatchName  string   `json:"batch_name"`
	CourseName string   `json:"course_name"`
	BatchYear  int      `json:"batch_year"`
	BatchDays  []string `json:"batch_days"`
}

func SeedCoursesFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] seeding courses from:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] failed to read JSON file: %v", err)
	}

	var inputs []courseSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing courseModel.CourseModel
		if err := db.Where("course_name = ?", data.CourseName).First(&existing).Error; err == nil {
			log.Printf("[INFO] course '%s' already exists, skipped", data.CourseName)
			continue
		}

		row := courseModel.CourseModel{
			CourseName:        data.CourseName,
			CourseFee:         data.CourseFee,
			CourseDuration:    data.Duration,
			CourseDescription: data.Description,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] failed to seed course '%s': %v", data.CourseName, err)
		}
	}
}

func SeedBatchesFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] seeding batches from:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] failed to read JSON file: %v", err)
	}

	var inputs []batchSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing batchModel.BatchModel
		if err := db.Where("batch_name = ? AND batch_year = ?", data.BatchName, data.BatchYear).
			First(&existing).Error; err == nil {
			log.Printf("[INFO] batch '%s' (%d) already exists, skipped", data.BatchName, data.BatchYear)
			continue
		}

		row := batchModel.BatchModel{
			BatchName: data.BatchName,
			BatchYear: data.BatchYear,
			BatchDays: pq.StringArray(data.BatchDays),
		}

		// Attach the course when the catalog has it; a missing course is not fatal.
		var course courseModel.CourseModel
		if err := db.Where("course_name = ?", data.CourseName).First(&course).Error; err == nil {
			row.BatchCourseID = &course.CourseID
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] failed to seed batch '%s': %v", data.BatchName, err)
		}
	}
}
